package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-gemini-client/gemini"
	"google.golang.org/genai"

	"github.com/shouni/gemini-outpaint-kit/pkg/domain"
	"github.com/shouni/gemini-outpaint-kit/pkg/imgutil"
)

// GeminiOutpaintAdapter は合成済みキャンバスを Gemini へ送り、拡張結果を受け取るアダプター層です。
// 1 リクエスト 1 レスポンスの単発呼び出しのみを行い、再試行もストリーミングも行いません。
type GeminiOutpaintAdapter struct {
	imgCore  ImageGeneratorCore     // 共通ロジック保持（コンポジション）
	aiClient gemini.GenerativeModel // 通信クライアント
	model    string                 // 使用するモデル名
}

// NewGeminiOutpaintAdapter は依存関係を注入してアダプターを初期化します。
func NewGeminiOutpaintAdapter(core ImageGeneratorCore, aiClient gemini.GenerativeModel, modelName string) (*GeminiOutpaintAdapter, error) {
	if core == nil {
		return nil, fmt.Errorf("core (ImageGeneratorCore) is required")
	}
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (gemini.GenerativeModel) is required")
	}

	return &GeminiOutpaintAdapter{
		imgCore:  core,
		aiClient: aiClient,
		model:    modelName,
	}, nil
}

// RequestExpansion は合成済みキャンバスとプロンプトから拡張画像を生成します。
// 固定のシステム指示と、プロンプトから導出した指示文、画像の生バイトを 1 回のリクエストで送り、
// 応答から最初の画像パーツを抽出して返します。
// 通信・サービス由来の失敗はラップしてそのまま伝播させ、ここでは解釈し直しません。
func (a *GeminiOutpaintAdapter) RequestExpansion(ctx context.Context, req OutpaintRequest) (*domain.ImageResponse, error) {
	// data URI で渡された場合もここで生バイトに剥がす
	raw, mimeType, err := imgutil.NormalizeImageBytes(req.Image)
	if err != nil {
		return nil, fmt.Errorf("キャンバスバイト列の正規化に失敗しました: %w", err)
	}

	imgPart := a.imgCore.ToPart(raw)
	if imgPart == nil {
		return nil, fmt.Errorf("キャンバスが画像として認識できませんでした (mime: %s)", mimeType)
	}

	parts := []*genai.Part{
		{Text: BuildUserInstruction(req.Prompt)},
		imgPart,
	}

	opts := gemini.GenerateOptions{
		SystemPrompt: outpaintSystemInstruction,
		Seed:         req.Seed,
	}

	slog.InfoContext(ctx, "Geminiに拡張生成をリクエストします",
		"model", a.model, "canvas_bytes", len(raw), "has_prompt", req.Prompt != "")

	resp, err := a.aiClient.GenerateWithParts(ctx, a.model, parts, opts)
	if err != nil {
		return nil, fmt.Errorf("Gemini拡張生成エラー: %w", err)
	}

	out, err := a.imgCore.ParseToResponse(resp)
	if err != nil {
		return nil, err
	}

	return &domain.ImageResponse{
		Data:     out.Data,
		MimeType: out.MimeType,
	}, nil
}
