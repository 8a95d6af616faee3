package domain

import (
	"encoding/base64"
	"fmt"
	"time"
)

// DefaultMimeType は、外部サービスが MIME タイプを省略した場合の既定値です。
// 合成キャンバスも常に PNG で出力するため、入出力ともにこの値に揃えます。
const DefaultMimeType = "image/png"

// ExpansionSettings は、元画像の各辺に追加する余白をパーセントで指定する値オブジェクトです。
// UI 側は慣例的に 0〜100 を 10 刻みで渡しますが、コアは非負であれば任意の値を受け入れます。
// 呼び出しのたびに作り直される前提で、内部状態は持ちません。
type ExpansionSettings struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Prompt string  `json:"prompt"`
}

// Validate は余白指定が非負であることを検証します。
func (s ExpansionSettings) Validate() error {
	if s.Top < 0 || s.Bottom < 0 || s.Left < 0 || s.Right < 0 {
		return fmt.Errorf("余白のパーセント値は非負である必要があります (top=%v, bottom=%v, left=%v, right=%v)",
			s.Top, s.Bottom, s.Left, s.Right)
	}
	return nil
}

// IsZero は 4 辺すべての余白がゼロかどうかを返します。
// すべてゼロの場合は拡張の意味がないため、呼び出し側は Requester を呼ぶ前に
// ErrNoExpansion として弾くことが推奨されます（Compositor 自体は拒否しません）。
func (s ExpansionSettings) IsZero() bool {
	return s.Top == 0 && s.Bottom == 0 && s.Left == 0 && s.Right == 0
}

// ImageResponse は生成された画像データとそのメタデータです。
type ImageResponse struct {
	Data     []byte
	MimeType string
}

// DataURI は画像データを data URI 形式の文字列に変換します。
// MIME タイプが未指定の場合は PNG として扱います。
func (r ImageResponse) DataURI() string {
	mime := r.MimeType
	if mime == "" {
		mime = DefaultMimeType
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(r.Data)
}

// GeneratedImage は 1 回の拡張生成の成果物です。
// 元画像への参照と生成結果、作成時刻を保持し、リセットまたは置き換えまで呼び出し側が保持します。
type GeneratedImage struct {
	SourceRef string
	Image     ImageResponse
	CreatedAt time.Time
}
