package recognition

import "strings"

// IsRefusal reports whether the vision service declined to transcribe the
// image instead of answering. Refusals are terminal for the capture and must
// not be retried.
func IsRefusal(content string) bool {
	if strings.Contains(content, "申し訳ありませんが") &&
		strings.Contains(content, "画像のテキストを読み取ることはできません") {
		return true
	}
	if strings.Contains(content, "申し訳ありません") &&
		strings.Contains(content, "読み取ることはできません") {
		return true
	}
	return strings.Contains(content, "画像を読み取ることができません")
}
