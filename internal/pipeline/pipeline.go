package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"

	"github.com/shouni/gemini-outpaint-kit/internal/config"
	"github.com/shouni/gemini-outpaint-kit/pkg/canvas"
	"github.com/shouni/gemini-outpaint-kit/pkg/domain"
	"github.com/shouni/gemini-outpaint-kit/pkg/generator"
)

// appContext は、1 回の実行に必要な共有コンポーネント一式なのだ。
type appContext struct {
	cfg     *config.Config
	core    generator.ImageGeneratorCore
	adapter generator.OutpaintGenerator
	writer  remoteio.OutputWriter
}

// ExecuteExpand は、入力画像に余白を合成して Gemini へ拡張生成を依頼し、
// 結果を保存先へ書き出す一連のフローを実行するのだ。
// 同時に走る拡張は 1 つだけという前提で、CLI が自然に直列化しているのだ。
func ExecuteExpand(ctx context.Context, cfg *config.Config) error {
	settings := toSettings(cfg.Options)

	// 全辺ゼロのまま Requester を呼んでも意味がないため、境界で弾くのだ
	if settings.IsZero() {
		return fmt.Errorf("%w: --top/--bottom/--left/--right のいずれかを指定してほしいのだ", domain.ErrNoExpansion)
	}

	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	canvasData, err := prepareCanvas(ctx, appCtx, settings)
	if err != nil {
		return err
	}

	slog.Info("拡張生成を開始するのだ", "model", cfg.GeminiImageModel, "canvas_bytes", len(canvasData))

	req := generator.OutpaintRequest{
		Image:  canvasData,
		Prompt: settings.Prompt,
		Seed:   seedOption(cfg.Options.Seed),
	}
	resp, err := appCtx.adapter.RequestExpansion(ctx, req)
	if err != nil {
		return fmt.Errorf("拡張生成に失敗したのだ: %w", err)
	}

	result := domain.GeneratedImage{
		SourceRef: cfg.Options.Input,
		Image:     *resp,
		CreatedAt: time.Now(),
	}

	outputPath := cfg.Options.OutputFile
	if err := appCtx.writer.Write(ctx, outputPath, bytes.NewReader(result.Image.Data), result.Image.MimeType); err != nil {
		return fmt.Errorf("拡張結果の保存に失敗したのだ: %w", err)
	}

	slog.Info("拡張画像が完成したのだ！",
		"path", outputPath,
		"mime_type", result.Image.MimeType,
		"created_at", result.CreatedAt.Format(time.RFC3339))
	return nil
}

// ExecutePreview は、外部モデルを呼ばずに白余白の合成キャンバスだけを書き出すのだ。
// 送信前のジオメトリ確認に使うのだ。
func ExecutePreview(ctx context.Context, cfg *config.Config) error {
	settings := toSettings(cfg.Options)

	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	canvasData, err := prepareCanvas(ctx, appCtx, settings)
	if err != nil {
		return err
	}

	outputPath := cfg.Options.OutputFile
	if err := appCtx.writer.Write(ctx, outputPath, bytes.NewReader(canvasData), domain.DefaultMimeType); err != nil {
		return fmt.Errorf("プレビューの保存に失敗したのだ: %w", err)
	}

	slog.Info("合成キャンバスを保存したのだ", "path", outputPath, "bytes", len(canvasData))
	return nil
}

// prepareCanvas はソース画像を取得して白余白付きキャンバスの PNG バイト列を作るのだ。
func prepareCanvas(ctx context.Context, appCtx *appContext, settings domain.ExpansionSettings) ([]byte, error) {
	srcData, err := appCtx.core.FetchSourceImage(ctx, appCtx.cfg.Options.Input)
	if err != nil {
		return nil, fmt.Errorf("ソース画像の取得に失敗したのだ: %w", err)
	}

	canvasData, err := canvas.CompositeBytes(srcData, settings)
	if err != nil {
		return nil, fmt.Errorf("キャンバス合成に失敗したのだ: %w", err)
	}
	return canvasData, nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、実行コンテキストを初期化するのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*appContext, error) {
	httpClient := httpkit.New(cfg.Options.HTTPTimeout)

	aiClient, err := initializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return nil, err
	}

	imageCache := gocache.New(config.DefaultCacheTTL, config.DefaultCacheCleanup)

	core, err := generator.NewGeminiOutpaintCore(httpClient, reader, imageCache, config.DefaultCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("コアの初期化に失敗したのだ: %w", err)
	}

	adapter, err := generator.NewGeminiOutpaintAdapter(core, aiClient, cfg.GeminiImageModel)
	if err != nil {
		return nil, fmt.Errorf("アダプターの初期化に失敗したのだ: %w", err)
	}

	return &appContext{
		cfg:     cfg,
		core:    core,
		adapter: adapter,
		writer:  writer,
	}, nil
}

// initializeAIClient は gemini クライアントを初期化します。
// サンプリング温度はここで低めに固定し、文脈に忠実な補完を優先します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(config.DefaultTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

func toSettings(opts config.ExpandOptions) domain.ExpansionSettings {
	return domain.ExpansionSettings{
		Top:    opts.Top,
		Bottom: opts.Bottom,
		Left:   opts.Left,
		Right:  opts.Right,
		Prompt: opts.Prompt,
	}
}

func seedOption(seed int64) *int64 {
	if seed < 0 {
		return nil
	}
	return &seed
}
