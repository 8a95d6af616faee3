package generator

import (
	"context"
	"time"

	"github.com/shouni/go-gemini-client/gemini"
	"google.golang.org/genai"

	"github.com/shouni/gemini-outpaint-kit/pkg/domain"
)

// OutpaintGenerator はビジネスロジック層が利用する拡張生成の窓口です。
type OutpaintGenerator interface {
	// RequestExpansion は合成済みキャンバスとプロンプトを外部モデルへ送り、生成結果を返します。
	RequestExpansion(ctx context.Context, req OutpaintRequest) (*domain.ImageResponse, error)
}

// ImageGeneratorCore は画像データの準備と応答解析のコアロジックを抽象化するインターフェースです。
type ImageGeneratorCore interface {
	// FetchSourceImage は、ローカルパス・gs://・http(s) のいずれかの参照からソース画像を取得します。
	FetchSourceImage(ctx context.Context, ref string) ([]byte, error)
	// ToPart は、バイト列を後続処理で利用する画像パーツに変換します。
	ToPart(data []byte) *genai.Part
	// ParseToResponse は、Gemini の応答から最初の画像パーツを抽出します。
	ParseToResponse(resp *gemini.Response) (*ImageOutput, error)
}

// ImageCacher は、取得済みソース画像をキャッシュするためのインターフェースです。
// patrickmn/go-cache の *cache.Cache がそのまま実装を満たします。
type ImageCacher interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, d time.Duration)
}
