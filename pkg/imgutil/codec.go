package imgutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"strings"
)

// pngEncoder は合成キャンバスの唯一のエンコーダーです。
// 同一入力から常にバイト一致の出力を得るため、設定を固定した単一のインスタンスを共有します。
var pngEncoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// EncodeToPNG は画像をロスレスの PNG バイト列にエンコードします。
func EncodeToPNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := pngEncoder.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeImage はバイト列（PNG, JPEG, GIF）を画像にデコードします。
// image.Decode がサポートするフォーマットに対応しています。
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// NormalizeImageBytes は画像バイト列を外部送信用の生バイトに正規化します。
// data URI 形式（data:image/png;base64,...）で渡された場合はプレフィックスを取り除いて
// デコードし、生バイトの場合はそのまま MIME タイプを判定して返します。
func NormalizeImageBytes(data []byte) ([]byte, string, error) {
	if !bytes.HasPrefix(data, []byte("data:")) {
		return data, http.DetectContentType(data), nil
	}

	s := string(data)
	comma := strings.Index(s, ",")
	if comma < 0 {
		return nil, "", fmt.Errorf("data URIの形式が不正です")
	}

	meta := s[len("data:"):comma]
	payload := s[comma+1:]

	mime, _, _ := strings.Cut(meta, ";")
	if mime == "" {
		mime = "image/png"
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("data URIのbase64デコードに失敗しました: %w", err)
	}
	return raw, mime, nil
}
