package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/entity"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already ISO", "2025-06-27", "2025-06-27"},
		{"slashes", "2025/6/27", "2025-06-27"},
		{"kanji", "2025年6月27日", "2025-06-27"},
		{"kanji with space", "2025年 6月27日", "2025-06-27"},
		{"reiwa", "令和7年6月27日", "2025-06-27"},
		{"dotted short year", "25.01.10", "2025-01-10"},
		{"two digit year", "25/6/27", "2025-06-27"},
		{"unpadded ISO", "2025-6-7", "2025-06-07"},
		{"empty", "", ""},
		{"garbage", "不明", ""},
		{"impossible month", "2025/13/40", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

func TestCleanWeight(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comma", "1,260.0", "1260.0"},
		{"full width comma", "1，260", "1260"},
		{"kg suffix", "9290kg", "9290"},
		{"kg upper", "9290KG", "9290"},
		{"spaces", " 1 260 kg ", "1260"},
		{"clean passthrough", "1260.0", "1260.0"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanWeight(tt.in))
		})
	}
}

func TestCorrectWeightRescansGrossMisread(t *testing.T) {
	rawText := "総重量 空車 正味\n合計 8,340 7,080 1,260.0"

	// 8340 exceeds the ceiling; the 正味 neighborhood holds the real value.
	got := CorrectWeight("8340", "正味 1,260.0 の行\n"+rawText)
	assert.Equal(t, "1260.0", got)
}

func TestCorrectWeightKeepsPlausibleValue(t *testing.T) {
	assert.Equal(t, "1260.0", CorrectWeight("1260.0", "whatever"))
}

func TestCorrectWeightKeepsValueWhenNoSmallerCandidate(t *testing.T) {
	assert.Equal(t, "9999999", CorrectWeight("9999999", "no anchors here"))
}

func TestCorrectReceiptClient(t *testing.T) {
	rawText := "現場 （株）ブルボン　上越工場\n新潟環境開発株式会社"

	got := CorrectReceiptClient("新潟環境開発株式会社", rawText)
	assert.Equal(t, "現場 （株）ブルボン　上越工場", got)
}

func TestCorrectReceiptClientKeepsBourbon(t *testing.T) {
	got := CorrectReceiptClient("（株）ブルボン　柏崎工場", "anything")
	assert.Equal(t, "（株）ブルボン　柏崎工場", got)
}

func TestCorrectReceiptClientNoCorrectionFound(t *testing.T) {
	got := CorrectReceiptClient("どこかの会社", "工場の記載なし")
	assert.Equal(t, "どこかの会社", got)
}

func TestNormalizeConfidenceScores(t *testing.T) {
	now := time.Date(2025, 6, 27, 12, 0, 0, 0, time.UTC)
	fields := entity.ExtractedFields{
		Date:       "2025/6/27",
		ClientName: "バイオマス",
		ItemName:   "汚泥",
		NetWeight:  "1,480kg",
	}

	out, conf := Normalize(fields, "raw", constants.SlipTypeTicket, now)

	assert.Equal(t, "2025-06-27", out.Date)
	assert.Equal(t, "1480", out.NetWeight)
	assert.Equal(t, 80, conf["date"].Score)
	assert.Equal(t, constants.ConfidenceGood, conf["date"].Level)
	assert.Equal(t, 100, conf["netWeight"].Score)
	assert.Equal(t, 80, conf["clientName"].Score)
	assert.Equal(t, 0, conf["manifestNumber"].Score)
	assert.Equal(t, constants.ConfidenceMissing, conf["manifestNumber"].Level)
}

func TestNormalizeDefaultsMissingDate(t *testing.T) {
	now := time.Date(2025, 6, 27, 12, 0, 0, 0, time.UTC)

	out, conf := Normalize(entity.ExtractedFields{}, "", constants.SlipTypeWeighing, now)

	assert.Equal(t, "2025-06-27", out.Date)
	assert.Equal(t, constants.ConfidenceDefault, conf["date"].Level)
	assert.Equal(t, 50, conf["date"].Score)
	assert.Equal(t, 0, conf["netWeight"].Score)
}

func TestNormalizeReceiptCorrections(t *testing.T) {
	now := time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)
	rawText := "現場 （株）ブルボン　上越工場\n合計 正味 1,260.0"
	fields := entity.ExtractedFields{
		Date:       "2025/06/27",
		ClientName: "新潟環境開発株式会社",
		ItemName:   "廃プラスチック類",
		NetWeight:  "8340",
	}

	out, _ := Normalize(fields, rawText, constants.SlipTypeReceipt, now)

	assert.Equal(t, "現場 （株）ブルボン　上越工場", out.ClientName)
	assert.Equal(t, "1260.0", out.NetWeight)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)
	fields := entity.ExtractedFields{
		Date:           "令和7年6月27日",
		ClientName:     " バイオマス ",
		ItemName:       "汚泥",
		NetWeight:      "1,480 kg",
		ManifestNumber: "3456",
	}

	once, _ := Normalize(fields, "raw", constants.SlipTypeTicket, now)
	twice, _ := Normalize(once, "raw", constants.SlipTypeTicket, now)

	assert.Equal(t, once, twice)
}
