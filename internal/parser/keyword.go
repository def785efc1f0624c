package parser

import (
	"regexp"
	"strings"
)

// Third tier: keyword sweep. Works on any text, including malformed JSON
// where only the quoted values survived.

var (
	quotedKeyRes = map[string]*regexp.Regexp{
		"date":           regexp.MustCompile(`"date"\s*:\s*"([^"]*)"`),
		"clientName":     regexp.MustCompile(`"clientName"\s*:\s*"([^"]*)"`),
		"itemName":       regexp.MustCompile(`"itemName"\s*:\s*"([^"]*)"`),
		"netWeight":      regexp.MustCompile(`"netWeight"\s*:\s*"([^"]*)"`),
		"manifestNumber": regexp.MustCompile(`"manifestNumber"\s*:\s*"([^"]*)"`),
	}

	clientKeywordRes = []*regexp.Regexp{
		regexp.MustCompile(`得意先[名]?[：:]\s*(.+)`),
		regexp.MustCompile(`現場[名]?[：:]\s*(.+)`),
		regexp.MustCompile(`会社名[：:]\s*(.+)`),
	}
	manifestRe = regexp.MustCompile(`マニフェスト[番号]*[：:]?\s*(\d{4,})`)
)

func quotedValue(content, key string) string {
	if m := quotedKeyRes[key].FindStringSubmatch(content); m != nil {
		v := strings.TrimSpace(m[1])
		if strings.EqualFold(v, "null") {
			return ""
		}
		return v
	}
	return ""
}

func (p *Parser) parseKeywords(content string) partial {
	out := partial{
		date:           quotedValue(content, "date"),
		clientName:     quotedValue(content, "clientName"),
		itemName:       quotedValue(content, "itemName"),
		netWeight:      quotedValue(content, "netWeight"),
		manifestNumber: quotedValue(content, "manifestNumber"),
	}

	if out.date == "" {
		out.date = extractDate(content)
	}
	if out.clientName == "" {
		for _, re := range clientKeywordRes {
			if m := re.FindStringSubmatch(content); m != nil {
				out.clientName = strings.TrimSpace(m[1])
				break
			}
		}
	}
	if out.itemName == "" {
		for _, waste := range wasteItemNames {
			if strings.Contains(content, waste) {
				out.itemName = cleanItemName(waste)
				break
			}
		}
	}
	if out.netWeight == "" {
		out.netWeight = extractTicketWeight(content)
	}
	if out.manifestNumber == "" {
		if m := manifestRe.FindStringSubmatch(content); m != nil {
			digits := m[1]
			if len(digits) > 4 {
				digits = digits[len(digits)-4:]
			}
			out.manifestNumber = digits
		}
	}
	return out
}
