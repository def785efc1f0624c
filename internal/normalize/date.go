package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoRe    = regexp.MustCompile(`^(\d{2,4})-(\d{1,2})-(\d{1,2})$`)
	dottedRe = regexp.MustCompile(`^(\d{2})\.(\d{1,2})\.(\d{1,2})$`)
	reiwaRe  = regexp.MustCompile(`令和(\d+)年(\d{1,2})月(\d{1,2})日?`)
)

// NormalizeDate converts the date notations that appear on slips to
// YYYY-MM-DD. Returns empty when the input cannot be read as a date.
// Already-normalized input passes through unchanged.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if m := reiwaRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		return formatISO(strconv.Itoa(year+2018), m[2], m[3])
	}

	// 2025年6月27日 and 2025/6/27 reduce to dash separated.
	s = strings.NewReplacer("年", "-", "月", "-", "日", "", " ", "", "/", "-").Replace(s)

	if m := dottedRe.FindStringSubmatch(s); m != nil {
		return formatISO("20"+m[1], m[2], m[3])
	}
	if m := isoRe.FindStringSubmatch(s); m != nil {
		year := m[1]
		if len(year) == 2 {
			year = "20" + year
		}
		return formatISO(year, m[2], m[3])
	}
	return ""
}

func formatISO(year, month, day string) string {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return ""
	}
	return fmt.Sprintf("%s-%02d-%02d", year, m, d)
}

// DefaultDate is the substitute when no date could be read: the day the
// slip was processed, which in practice is usually the weighing day.
func DefaultDate(now time.Time) string {
	return now.Format("2006-01-02")
}
