package generator

const cacheKeySource = "source_image:"

// OutpaintRequest は 1 回の拡張生成要求です。
// Image には合成済みキャンバス（生の PNG バイト列または data URI）を渡します。
type OutpaintRequest struct {
	Image  []byte
	Prompt string
	Seed   *int64 // nil でランダム、値指定で固定
}

// ImageOutput は Core の内部解析結果
type ImageOutput struct {
	Data     []byte
	MimeType string
}
