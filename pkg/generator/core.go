package generator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"

	"github.com/shouni/gemini-outpaint-kit/pkg/domain"
)

// GeminiOutpaintCore はソース画像の取得と Gemini 応答の解析を担う基盤コンポーネントです。
type GeminiOutpaintCore struct {
	httpClient httpkit.Requester
	reader     remoteio.InputReader
	imageCache ImageCacher
	cacheTTL   time.Duration
}

// NewGeminiOutpaintCore は依存関係を注入して GeminiOutpaintCore を初期化します。
func NewGeminiOutpaintCore(httpClient httpkit.Requester, reader remoteio.InputReader, imageCache ImageCacher, cacheTTL time.Duration) (*GeminiOutpaintCore, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	// imageCache は nil を許容（キャッシュなし動作）

	return &GeminiOutpaintCore{
		httpClient: httpClient,
		reader:     reader,
		imageCache: imageCache,
		cacheTTL:   cacheTTL,
	}, nil
}

// FetchSourceImage は参照文字列からソース画像のバイト列を取得します。
// http/https は SSRF 検証を通した上で httpClient から、それ以外（ローカルパスや gs://）は
// reader から読み込みます。取得結果はキャッシュされます。
func (c *GeminiOutpaintCore) FetchSourceImage(ctx context.Context, ref string) ([]byte, error) {
	if c.imageCache != nil {
		if cached, found := c.imageCache.Get(cacheKeySource + ref); found {
			if data, ok := cached.([]byte); ok {
				return data, nil
			}
		}
	}

	data, err := c.readRef(ctx, ref)
	if err != nil {
		return nil, err
	}

	if c.imageCache != nil {
		c.imageCache.Set(cacheKeySource+ref, data, c.cacheTTL)
	}
	return data, nil
}

func (c *GeminiOutpaintCore) readRef(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		if safe, err := isSafeURL(ref); err != nil || !safe {
			return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
		}
		return c.httpClient.FetchBytes(ctx, ref)
	}

	rc, err := c.reader.Open(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("ソース画像 '%s' を開けませんでした: %w", ref, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ToPart はバイト列を genai.Part (InlineData) に変換します。
// 画像として認識できないデータの場合は nil を返します。
func (c *GeminiOutpaintCore) ToPart(data []byte) *genai.Part {
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil
	}
	return &genai.Part{
		InlineData: &genai.Blob{MIMEType: mimeType, Data: data},
	}
}

// ParseToResponse は Gemini の応答から最初の画像パーツを抽出します。
// 返ってきたコンテンツパーツを配列順に走査し、最初に見つかったインライン画像を採用します。
// 複数の画像パーツが返った場合も先頭のみを使用し、残りは破棄します。
// 画像パーツが 1 つも存在しない場合（テキストのみの応答等）は ErrNoImageReturned を返します。
func (c *GeminiOutpaintCore) ParseToResponse(resp *gemini.Response) (*ImageOutput, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, fmt.Errorf("Geminiからの有効な応答がありませんでした: %w", domain.ErrNoImageReturned)
	}

	for _, candidate := range resp.RawResponse.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = domain.DefaultMimeType
				}
				return &ImageOutput{
					Data:     part.InlineData.Data,
					MimeType: mimeType,
				}, nil
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	first := resp.RawResponse.Candidates[0]
	if first.FinishReason != genai.FinishReasonUnspecified && first.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("画像生成が異常終了しました (FinishReason: %s): %w", first.FinishReason, domain.ErrNoImageReturned)
	}

	return nil, domain.ErrNoImageReturned
}
