package normalize

import "strings"

// CorrectReceiptClient enforces the receipt invariant that the client is a
// ブルボン plant. When the extracted name lacks the token, the transcription
// is scanned for a line naming the plant; failing that, the original value
// stands rather than inventing one.
func CorrectReceiptClient(clientName, rawText string) string {
	if clientName == "" || strings.Contains(clientName, "ブルボン") {
		return clientName
	}

	for _, line := range strings.Split(rawText, "\n") {
		if strings.Contains(line, "ブルボン") &&
			(strings.Contains(line, "上越工場") || strings.Contains(line, "柏崎工場")) {
			return strings.TrimSpace(line)
		}
	}
	return clientName
}
