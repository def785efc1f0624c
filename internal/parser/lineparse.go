package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/wastetrack/slips-tracker/constants"
)

// Second tier: layout-aware line scanning over a free-text transcription.
// Each layout has its own anchors, ported from how the slips are actually
// printed; values to the right of an anchor sometimes wrap to the next line.

var (
	dateFullRe   = regexp.MustCompile(`(\d{4})[年/](\d{1,2})[月/](\d{1,2})日?`)
	dateReiwaRe  = regexp.MustCompile(`令和(\d+)年(\d{1,2})月(\d{1,2})日`)
	dateShortRe  = regexp.MustCompile(`(\d{2})[年/](\d{1,2})[月/](\d{1,2})日?`)
	dateDottedRe = regexp.MustCompile(`(\d{2})\.(\d{1,2})\.(\d{1,2})`)

	codeValueRe    = regexp.MustCompile(`(\d{4})\s*(.+)`)
	leadingDashRe  = regexp.MustCompile(`^[-－ー―_\s]+`)
	trailingDashRe = regexp.MustCompile(`[-－ー―_\s]+$`)
	doubleDashRe   = regexp.MustCompile(`[-－ー―]{2,}`)
	leadingJunkRe  = regexp.MustCompile(`^[^\p{Han}\p{Hiragana}\p{Katakana}a-zA-Z0-9]+`)

	netWeightRowRe   = regexp.MustCompile(`正味重量[:\s]*\D*([\d,]+\.?\d*)`)
	numberRe         = regexp.MustCompile(`[\d,]+\.?\d*`)
	inspectWeightRes = []*regexp.Regexp{
		regexp.MustCompile(`正\s*味[^0-9]*(\d+)\s*[kK][gG]`),
		regexp.MustCompile(`正\s*味[^0-9]*(\d+)`),
		regexp.MustCompile(`(\d{4,5})\s*[kK][gG]`),
		regexp.MustCompile(`(\d{4,5})`),
	}
	inspectClientRowRe  = regexp.MustCompile(`^4[.．]?\s`)
	inspectClientTrimRe = regexp.MustCompile(`^4[.．]?\s*`)
	returnTripRe        = regexp.MustCompile(`([^\s]+(?:帰り|戻り)便)`)
	itemLabelRowRe      = regexp.MustCompile(`(\d{3,4})\s+([^\s]+)`)
	nextLineWeightRe    = regexp.MustCompile(`(\d{4,5})\s*[kK]?[gG]?`)
	siteLabelRe         = regexp.MustCompile(`現場[：:]`)

	ticketItemRes = []*regexp.Regexp{
		regexp.MustCompile(`品目[：:]\s*(.+)`),
		regexp.MustCompile(`品名[：:]\s*(.+)`),
		regexp.MustCompile(`廃棄物[：:]\s*(.+)`),
	}
	ticketWeightRes = []*regexp.Regexp{
		regexp.MustCompile(`正味[：:重量]*\s*([\d,]+\.?\d*)\s*[kK][gG]`),
		regexp.MustCompile(`NET[：:]*\s*([\d,]+\.?\d*)\s*[kK][gG]`),
		regexp.MustCompile(`([\d,]+\.?\d*)\s*[kK][gG]`),
	}
)

var wasteItemNames = []string{
	"有機性汚泥", "無機性汚泥", "廃プラスチック", "汚泥", "廃プラ",
	"廃油", "木くず", "金属くず", "ガラスくず", "がれき類", "混合廃棄物",
}

func (p *Parser) parseLines(content string, slipType constants.SlipType) partial {
	switch slipType {
	case constants.SlipTypeWeighing:
		return partial{
			date:       extractDate(content),
			clientName: extractCode1Client(content),
			itemName:   extractCode2Item(content),
			netWeight:  extractCorrectedWeight(content),
		}
	case constants.SlipTypeInspection:
		return partial{
			date:       extractInspectionDate(content),
			clientName: extractInspectionClient(content),
			itemName:   extractInspectionItem(content),
			netWeight:  extractInspectionWeight(content),
		}
	case constants.SlipTypeTicket:
		return partial{
			date:       extractDate(content),
			clientName: extractTicketClient(content),
			itemName:   extractTicketItem(content),
			netWeight:  extractTicketWeight(content),
		}
	default:
		// The receipt layout answers structured JSON; line scanning has no
		// anchors for it beyond the generic keyword tier.
		return partial{}
	}
}

// extractDate finds the first date in any of the common notations and
// returns it as YYYY-MM-DD.
func extractDate(text string) string {
	if m := dateFullRe.FindStringSubmatch(text); m != nil {
		return isoDate(m[1], m[2], m[3])
	}
	if m := dateReiwaRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		return isoDate(strconv.Itoa(year+2018), m[2], m[3])
	}
	if m := dateShortRe.FindStringSubmatch(text); m != nil {
		return isoDate("20"+m[1], m[2], m[3])
	}
	return ""
}

func isoDate(year, month, day string) string {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, m, d)
}

// extractCode1Client reads the client name from the コード1 row, falling
// back to the following line when the name wrapped.
func extractCode1Client(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "コード1") && !strings.Contains(line, "コード１") {
			continue
		}
		name := codeRowValue(line)
		if name == "" && i+1 < len(lines) {
			name = codeRowValue(lines[i+1])
		}
		if name == "" {
			continue
		}
		name = leadingDashRe.ReplaceAllString(name, "")
		if strings.Contains(name, "妙高") || strings.Contains(name, "アクア") ||
			strings.Contains(name, "クリーン") || strings.Contains(name, "センター") {
			return "妙高アクアクリーンセンター"
		}
		return strings.TrimSpace(name)
	}
	return ""
}

func codeRowValue(line string) string {
	if m := codeValueRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[2])
	}
	return ""
}

// extractCode2Item looks for a known waste item near the コード2 row,
// scanning up to two lines below the anchor.
func extractCode2Item(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "コード2") && !strings.Contains(line, "コード２") &&
			!strings.Contains(line, "コード 2") {
			continue
		}
		searchText := line
		if i+1 < len(lines) {
			searchText += "\n" + lines[i+1]
		}
		if i+2 < len(lines) {
			searchText += "\n" + lines[i+2]
		}
		for _, item := range wasteItemNames {
			if strings.Contains(searchText, item) {
				return cleanItemName(item)
			}
		}
	}
	return ""
}

// extractCorrectedWeight reads the net weight from the 正味重量 row, then
// from the 補正C correction row (last number wins there).
func extractCorrectedWeight(text string) string {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if strings.Contains(line, "正味重量") {
			if m := netWeightRowRe.FindStringSubmatch(line); m != nil {
				return strings.ReplaceAll(m[1], ",", "")
			}
		}
	}
	for _, line := range lines {
		if strings.Contains(line, "補正C") || strings.Contains(line, "補正Ｃ") {
			nums := numberRe.FindAllString(line, -1)
			if len(nums) > 0 {
				return strings.ReplaceAll(nums[len(nums)-1], ",", "")
			}
		}
	}
	return ""
}

func extractInspectionDate(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "日付") && !strings.Contains(line, "日 付") {
			continue
		}
		if m := dateDottedRe.FindStringSubmatch(line); m != nil {
			return isoDate("20"+m[1], m[2], m[3])
		}
		if m := dateFullRe.FindStringSubmatch(line); m != nil {
			return isoDate(m[1], m[2], m[3])
		}
		if m := dateShortRe.FindStringSubmatch(line); m != nil {
			return isoDate("20"+m[1], m[2], m[3])
		}
	}
	return ""
}

// extractInspectionClient reads the handwritten client from the row
// labeled 4, preferring values that look like a haulage run (○○便).
func extractInspectionClient(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inspectClientRowRe.MatchString(trimmed) || trimmed == "4" {
			client := strings.TrimSpace(inspectClientTrimRe.ReplaceAllString(trimmed, ""))
			if strings.Contains(client, "便") {
				return client
			}
			if client == "" && i+1 < len(lines) {
				client = strings.TrimSpace(lines[i+1])
				if strings.Contains(client, "便") {
					return client
				}
			}
			if client != "" {
				return client
			}
		}

		if strings.Contains(line, "便") &&
			(strings.Contains(line, "帰り") || strings.Contains(line, "戻り")) {
			if m := returnTripRe.FindStringSubmatch(line); m != nil {
				return m[1]
			}
		}
	}
	return ""
}

func extractInspectionItem(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "銘柄") && !strings.Contains(line, "銘 柄") {
			continue
		}
		if m := itemLabelRowRe.FindStringSubmatch(line); m != nil {
			item := strings.TrimSpace(m[2])
			if strings.Contains(item, "汚泥") || strings.Contains(item, "泥") {
				return "汚泥"
			}
			return item
		}
		if i+1 < len(lines) && strings.Contains(lines[i+1], "汚泥") {
			return "汚泥"
		}
	}
	if strings.Contains(text, "汚泥") {
		return "汚泥"
	}
	return ""
}

func extractInspectionWeight(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "正味") {
			continue
		}
		for _, re := range inspectWeightRes {
			if m := re.FindStringSubmatch(line); m != nil {
				return m[1]
			}
		}
		if i+1 < len(lines) {
			if m := nextLineWeightRe.FindStringSubmatch(lines[i+1]); m != nil {
				return m[1]
			}
		}
	}
	return ""
}

// extractTicketClient reads the site name after 現場：, joining a wrapped
// second line when it is not another labeled row.
func extractTicketClient(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "現場：") && !strings.Contains(line, "現場:") {
			continue
		}
		clientText := strings.TrimSpace(siteLabelRe.ReplaceAllString(line, ""))
		if clientText != "" && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && !strings.ContainsAny(next, "：:") &&
				!strings.Contains(next, "品名") && !strings.Contains(next, "正味") {
				clientText += " " + next
			}
		}
		if canonical := canonicalSite(clientText); canonical != "" {
			return canonical
		}
		return strings.TrimSpace(clientText)
	}
	return canonicalSite(text)
}

// canonicalSite collapses the well-known delivery sites to their short names.
func canonicalSite(text string) string {
	if strings.Contains(text, "上越マテリアル") || strings.Contains(text, "バイオマス") {
		return "バイオマス"
	}
	if strings.Contains(text, "上越市") && strings.Contains(text, "下水道") && strings.Contains(text, "センター") {
		return "上越市下水道センター"
	}
	return ""
}

func extractTicketItem(text string) string {
	for _, re := range ticketItemRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	for _, waste := range wasteItemNames {
		if strings.Contains(text, waste) {
			return cleanItemName(waste)
		}
	}
	return ""
}

func extractTicketWeight(text string) string {
	for _, re := range ticketWeightRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.ReplaceAll(m[1], ",", "")
		}
	}
	return ""
}

// cleanItemName strips the dashes and stray symbols OCR tends to glue onto
// item names.
func cleanItemName(itemName string) string {
	itemName = leadingDashRe.ReplaceAllString(itemName, "")
	itemName = trailingDashRe.ReplaceAllString(itemName, "")
	itemName = doubleDashRe.ReplaceAllString(itemName, "-")
	itemName = leadingJunkRe.ReplaceAllString(itemName, "")
	return strings.TrimSpace(itemName)
}
