package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultImageModel  = "gemini-3-pro-image-preview"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultOutputFile  = "output/expanded.png" // 拡張結果のデフォルト保存先なのだ

	// 文脈に忠実な低分散の補完を優先するため、サンプリング温度は低めに固定するのだ
	DefaultTemperature = float32(0.1)

	DefaultCacheTTL     = 5 * time.Minute
	DefaultCacheCleanup = 15 * time.Minute
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey     string
	GeminiImageModel string

	Options ExpandOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiImageModel: envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
	}
}

// ExpandOptions は CLI フラグから渡される実行時のパラメータなのだ。
type ExpandOptions struct {
	// ソース入力・出力関連
	Input      string // --input: ローカルパス、gs://、http(s) のいずれか
	OutputFile string // --output-file

	// 余白指定（元画像の寸法に対するパーセント）
	Top    float64 // --top
	Bottom float64 // --bottom
	Left   float64 // --left
	Right  float64 // --right

	// 生成ガイダンス
	Prompt string // --prompt: 空の場合は汎用の拡張指示になる
	Seed   int64  // --seed: 負の値でランダム

	// AI挙動・実行制御
	ImageModel  string        // --image-model
	HTTPTimeout time.Duration // --http-timeout
}
