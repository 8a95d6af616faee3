// Package canvas は、アウトペインティングの前段となるキャンバス合成を担当します。
// パーセント指定の余白をピクセル座標に変換し、白地のキャンバスに元画像を
// 無加工で配置した PNG バッファを生成します。合成は呼び出しごとに独立しており、
// 常に元画像の寸法から計算し直すため、拡張結果を重ねても余白が複利的に増えることはありません。
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/shouni/gemini-outpaint-kit/pkg/domain"
	"github.com/shouni/gemini-outpaint-kit/pkg/imgutil"
)

// Layout は余白のパーセント指定をピクセル座標に解決した結果です。
type Layout struct {
	PadTop    int
	PadBottom int
	PadLeft   int
	PadRight  int
	Width     int // キャンバス全体の幅
	Height    int // キャンバス全体の高さ
	OffsetX   int // 元画像を配置する X オフセット（= PadLeft）
	OffsetY   int // 元画像を配置する Y オフセット（= PadTop）
}

// ComputeLayout は元画像の寸法と余白設定からキャンバスのジオメトリを計算します。
// 各余白は floor(寸法 × パーセント / 100) で求めます。
func ComputeLayout(w, h int, s domain.ExpansionSettings) Layout {
	padTop := padPixels(h, s.Top)
	padBottom := padPixels(h, s.Bottom)
	padLeft := padPixels(w, s.Left)
	padRight := padPixels(w, s.Right)

	return Layout{
		PadTop:    padTop,
		PadBottom: padBottom,
		PadLeft:   padLeft,
		PadRight:  padRight,
		Width:     w + padLeft + padRight,
		Height:    h + padTop + padBottom,
		OffsetX:   padLeft,
		OffsetY:   padTop,
	}
}

func padPixels(dim int, percent float64) int {
	return int(math.Floor(float64(dim) * percent / 100))
}

// Composite は元画像の周囲に白い余白を追加した PNG バッファを生成します。
// 元画像はオフセット位置に拡大縮小もブレンドもせずそのまま上書きコピーされ、
// それ以外の全ピクセルは不透明な純白になります。元画像は変更しません。
// 4 辺すべてゼロの場合も再エンコードした同寸のバッファを返します（パススルーではありません）。
func Composite(src image.Image, s domain.ExpansionSettings) ([]byte, error) {
	if src == nil {
		return nil, domain.ErrNotReady
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	layout := ComputeLayout(bounds.Dx(), bounds.Dy(), s)

	dst := imaging.New(layout.Width, layout.Height, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	dst = imaging.Paste(dst, src, image.Pt(layout.OffsetX, layout.OffsetY))

	return imgutil.EncodeToPNG(dst)
}

// CompositeBytes はエンコード済みのソースバイト列を受け取る Composite の補助形です。
// デコードできない入力は、デコード完了前に合成が要求されたものとして ErrNotReady を返します。
func CompositeBytes(data []byte, s domain.ExpansionSettings) ([]byte, error) {
	img, err := imgutil.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotReady, err)
	}
	return Composite(img, s)
}
