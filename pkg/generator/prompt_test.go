package generator

import (
	"strings"
	"testing"
)

func TestBuildUserInstruction(t *testing.T) {
	t.Run("プロンプトがあれば固定サフィックスを連結するのだ", func(t *testing.T) {
		got := BuildUserInstruction("a sunset")
		want := "a sunset" + guidanceSuffix
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("空のプロンプトには汎用のフォールバック指示を使うのだ", func(t *testing.T) {
		if got := BuildUserInstruction(""); got != fallbackInstruction {
			t.Errorf("got %q, want fallback", got)
		}
	})

	t.Run("空白のみのプロンプトも空として扱うのだ", func(t *testing.T) {
		if got := BuildUserInstruction("   "); got != fallbackInstruction {
			t.Errorf("got %q, want fallback", got)
		}
	})

	t.Run("システム指示はアウトペインティングのタスクを固定で記述しているのだ", func(t *testing.T) {
		for _, phrase := range []string{"Fill the blank regions", "preserve the central content", "blend the edges"} {
			if !strings.Contains(outpaintSystemInstruction, phrase) {
				t.Errorf("system instruction missing %q", phrase)
			}
		}
	})
}
