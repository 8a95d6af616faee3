package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-outpaint-kit/internal/config"
	"github.com/shouni/gemini-outpaint-kit/internal/pipeline"
)

// expandCmd は、余白合成と拡張生成のフルフローを実行するサブコマンドなのだ。
var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "画像に余白を追加してGeminiにアウトペインティングさせるのだ。",
	Long: `入力画像の指定した辺に白い余白を合成し、Geminiの画像モデルに余白部分を
シームレスに描き足させて保存するのだ。元画像のピクセルはそのままの位置に保たれるのだ。`,
	RunE: expandCommand,
}

// expandCommand は、expand サブコマンドの実行ロジック本体なのだ。
func expandCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Input == "" {
		return fmt.Errorf("拡張する画像（--input）を指定してほしいのだ")
	}

	// 1. 環境変数から基本設定をロード
	cfg := config.LoadConfig()

	// 2. コマンドライン引数の値を反映
	cfg.Options = opts
	cfg.GeminiImageModel = opts.ImageModel

	slog.Info("アウトペインティングを起動するのだ！",
		"input", cfg.Options.Input,
		"output_file", cfg.Options.OutputFile,
		"image_model", cfg.GeminiImageModel)

	// 3. パイプライン実行
	return pipeline.ExecuteExpand(ctx, cfg)
}
