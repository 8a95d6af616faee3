package cmd

import (
	"fmt"
	"os"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"

	"github.com/shouni/gemini-outpaint-kit/internal/config"
)

var opts config.ExpandOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力・出力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Input, "input", "f", "", "拡張する画像（ローカルパス、gs://、http(s)）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", config.DefaultOutputFile, "保存パス（ローカル or gs://...）なのだ。")

	// --- 余白指定（元画像の寸法に対するパーセント） ---
	rootCmd.PersistentFlags().Float64Var(&opts.Top, "top", 0, "上辺に追加する余白のパーセントなのだ。")
	rootCmd.PersistentFlags().Float64Var(&opts.Bottom, "bottom", 0, "下辺に追加する余白のパーセントなのだ。")
	rootCmd.PersistentFlags().Float64Var(&opts.Left, "left", 0, "左辺に追加する余白のパーセントなのだ。")
	rootCmd.PersistentFlags().Float64Var(&opts.Right, "right", 0, "右辺に追加する余白のパーセントなのだ。")

	// --- 生成ガイダンス ---
	rootCmd.PersistentFlags().StringVarP(&opts.Prompt, "prompt", "p", "", "余白の埋め方を導くテキストなのだ（空でも良い）。")
	rootCmd.PersistentFlags().Int64Var(&opts.Seed, "seed", -1, "シード値なのだ（負の値でランダム）。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// preview は外部APIを呼ばないのでキー無しでも動かせるのだ
	if cmd.Name() == "preview" {
		return nil
	}

	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"outpaint-go",
		addAppFlags,
		preRunAppE,
		expandCmd,
		previewCmd,
	)
}
