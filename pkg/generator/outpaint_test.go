package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-gemini-client/gemini"
	"google.golang.org/genai"

	"github.com/shouni/gemini-outpaint-kit/pkg/domain"
)

func TestGeminiOutpaintAdapter_RequestExpansion(t *testing.T) {
	ctx := context.Background()
	modelName := "gemini-3-pro-image-preview"

	t.Run("成功: 指示文と画像パーツとシステム指示がAIクライアントに渡されるのだ", func(t *testing.T) {
		req := OutpaintRequest{
			Image:  validPng,
			Prompt: "a sunset",
		}

		ai := &mockAIClient{
			generateFunc: func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
				if len(parts) != 2 {
					t.Errorf("expected 2 parts (text + image), got %d", len(parts))
				}
				if !strings.Contains(parts[0].Text, "a sunset") {
					t.Errorf("prompt missing from instruction: got %s", parts[0].Text)
				}
				if parts[1].InlineData == nil || len(parts[1].InlineData.Data) == 0 {
					t.Error("image part is missing inline data")
				}
				if opts.SystemPrompt != outpaintSystemInstruction {
					t.Errorf("system instruction mismatch: got %s", opts.SystemPrompt)
				}
				return &gemini.Response{RawResponse: &genai.GenerateContentResponse{}}, nil
			},
		}

		core := &mockImageCore{
			parseFunc: func(resp *gemini.Response) (*ImageOutput, error) {
				return &ImageOutput{Data: []byte{0, 0, 0}, MimeType: "image/png"}, nil
			},
		}

		adapter, _ := NewGeminiOutpaintAdapter(core, ai, modelName)
		resp, err := adapter.RequestExpansion(ctx, req)

		if err != nil {
			t.Fatalf("RequestExpansion should not return error: %v", err)
		}
		if got := resp.DataURI(); got != "data:image/png;base64,AAAA" {
			t.Errorf("unexpected data URI: %s", got)
		}
	})

	t.Run("成功: data URI入力はプレフィックスを剥がして送信されるのだ", func(t *testing.T) {
		uri := domain.ImageResponse{Data: validPng, MimeType: "image/png"}.DataURI()

		var sent []byte
		ai := &mockAIClient{
			generateFunc: func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
				sent = parts[1].InlineData.Data
				return &gemini.Response{RawResponse: &genai.GenerateContentResponse{}}, nil
			},
		}
		core := &mockImageCore{
			parseFunc: func(resp *gemini.Response) (*ImageOutput, error) {
				return &ImageOutput{Data: []byte("out")}, nil
			},
		}

		adapter, _ := NewGeminiOutpaintAdapter(core, ai, modelName)
		_, err := adapter.RequestExpansion(ctx, OutpaintRequest{Image: []byte(uri)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(sent) != string(validPng) {
			t.Error("data URI prefix was not stripped before sending")
		}
	})

	t.Run("失敗: AIクライアントのエラーはラップされてそのまま伝播するのだ", func(t *testing.T) {
		expectedErr := errors.New("quota exceeded")
		ai := &mockAIClient{
			generateFunc: func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
				return nil, expectedErr
			},
		}

		adapter, _ := NewGeminiOutpaintAdapter(&mockImageCore{}, ai, modelName)
		_, err := adapter.RequestExpansion(ctx, OutpaintRequest{Image: validPng})

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected wrapped service error, got %v", err)
		}
	})

	t.Run("失敗: 画像パーツが無い応答はErrNoImageReturnedなのだ", func(t *testing.T) {
		ai := &mockAIClient{
			generateFunc: func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
				return &gemini.Response{RawResponse: &genai.GenerateContentResponse{}}, nil
			},
		}
		core := &mockImageCore{
			parseFunc: func(resp *gemini.Response) (*ImageOutput, error) {
				return nil, domain.ErrNoImageReturned
			},
		}

		adapter, _ := NewGeminiOutpaintAdapter(core, ai, modelName)
		_, err := adapter.RequestExpansion(ctx, OutpaintRequest{Image: validPng})

		if !errors.Is(err, domain.ErrNoImageReturned) {
			t.Errorf("expected ErrNoImageReturned, got %v", err)
		}
	})

	t.Run("失敗: 画像として認識できない入力はエラーなのだ", func(t *testing.T) {
		core := &mockImageCore{
			toPartFunc: func(data []byte) *genai.Part { return nil },
		}
		adapter, _ := NewGeminiOutpaintAdapter(core, &mockAIClient{}, modelName)

		_, err := adapter.RequestExpansion(ctx, OutpaintRequest{Image: []byte("not an image")})
		if err == nil {
			t.Error("expected error for non-image payload")
		}
	})
}

func TestNewGeminiOutpaintAdapter(t *testing.T) {
	t.Run("nilチェック: 依存関係が足りない場合はエラーを返すのだ", func(t *testing.T) {
		if _, err := NewGeminiOutpaintAdapter(nil, &mockAIClient{}, "model"); err == nil {
			t.Error("expected error for nil core")
		}
		if _, err := NewGeminiOutpaintAdapter(&mockImageCore{}, nil, "model"); err == nil {
			t.Error("expected error for nil aiClient")
		}
	})
}
