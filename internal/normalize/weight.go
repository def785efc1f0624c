package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// weightCeiling is the largest net weight a single load can plausibly be,
// in kg. Readings above it usually mean the gross column was read instead.
const weightCeiling = 5000

var (
	netRescanRe = regexp.MustCompile(`正味.*?(\d+[,，]?\d*\.?\d*)`)
	kgSuffixRe  = regexp.MustCompile(`(?i)kg`)
)

// CleanWeight strips the separators and units OCR carries along: half and
// full width commas, kg suffixes, spaces.
func CleanWeight(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "，", "")
	s = kgSuffixRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.TrimSpace(s)
}

// CorrectWeight guards against the gross-weight misread on receipts: when
// the cleaned value exceeds the ceiling, the transcription is re-scanned
// near 正味 and a smaller candidate replaces it. The original value stands
// if nothing smaller turns up.
func CorrectWeight(weight, rawText string) string {
	if weight == "" {
		return ""
	}
	value, err := strconv.ParseFloat(weight, 64)
	if err != nil || value <= weightCeiling {
		return weight
	}

	if m := netRescanRe.FindStringSubmatch(rawText); m != nil {
		candidate := strings.ReplaceAll(strings.ReplaceAll(m[1], ",", ""), "，", "")
		if cv, cerr := strconv.ParseFloat(candidate, 64); cerr == nil && cv < value {
			return candidate
		}
	}
	return weight
}
