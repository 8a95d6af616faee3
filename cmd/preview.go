package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-outpaint-kit/internal/config"
	"github.com/shouni/gemini-outpaint-kit/internal/pipeline"
)

// previewCmd は、生成APIを呼ばずに合成キャンバスだけを書き出すサブコマンドなのだ。
// 余白のジオメトリを送信前に目で確認したい場合に便利なのだ。
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "白余白を合成したキャンバスだけを保存するのだ。",
	RunE:  previewCommand,
}

// previewCommand は、preview サブコマンドの実行ロジック本体なのだ。
func previewCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Input == "" {
		return fmt.Errorf("合成する画像（--input）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("プレビュー合成を実行するのだ",
		"input", cfg.Options.Input,
		"output_file", cfg.Options.OutputFile)

	return pipeline.ExecutePreview(ctx, cfg)
}
