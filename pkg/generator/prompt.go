package generator

import "strings"

// outpaintSystemInstruction はアウトペインティングのタスクを確立するシステム指示です。
// 呼び出し側の入力に関わらず常にこの固定文を送ります。
const outpaintSystemInstruction = "You are an expert photo retoucher performing outpainting. " +
	"The provided image contains blank white regions around the original content. " +
	"Fill the blank regions seamlessly, preserve the central content exactly as it is, " +
	"and blend the edges so the result reads as a single continuous picture."

const (
	// guidanceSuffix はユーザープロンプトの末尾に連結する固定の拡張指示です。
	guidanceSuffix = " Use this description to guide how the blank regions are extended."

	// fallbackInstruction はプロンプトが空の場合に使う汎用指示です。
	fallbackInstruction = "Extend the scene naturally beyond the original borders, " +
		"continuing the existing content into every blank region."
)

// BuildUserInstruction は、ユーザーのガイダンス文字列から送信用の指示文を組み立てます。
// プロンプトが空でなければ固定サフィックスを連結し、空なら汎用のフォールバック指示を返します。
func BuildUserInstruction(prompt string) string {
	if strings.TrimSpace(prompt) == "" {
		return fallbackInstruction
	}
	return prompt + guidanceSuffix
}
