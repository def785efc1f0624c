package parser

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wastetrack/slips-tracker/constants"
)

func newTestParser() *Parser {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParseStructuredWithChatter(t *testing.T) {
	p := newTestParser()
	content := "以下が抽出結果です：\n" +
		`{"date":"2025-06-27","clientName":"（株）ブルボン　上越工場","itemName":"廃プラスチック類","netWeight":"1260.0","manifestNumber":null,"rawText":"総重量 空車 正味..."}` +
		"\nご確認ください。"

	fields, rawText := p.Parse(content, constants.SlipTypeReceipt)

	assert.Equal(t, "2025-06-27", fields.Date)
	assert.Equal(t, "（株）ブルボン　上越工場", fields.ClientName)
	assert.Equal(t, "廃プラスチック類", fields.ItemName)
	assert.Equal(t, "1260.0", fields.NetWeight)
	assert.Empty(t, fields.ManifestNumber)
	assert.Equal(t, "総重量 空車 正味...", rawText)
}

func TestParseStructuredAliasedKeys(t *testing.T) {
	p := newTestParser()
	content := `{"日付":"2025-06-27","得意先名":"バイオマス","品名":"汚泥","net_weight":9290}`

	fields, _ := p.Parse(content, constants.SlipTypeReceipt)

	assert.Equal(t, "2025-06-27", fields.Date)
	assert.Equal(t, "バイオマス", fields.ClientName)
	assert.Equal(t, "汚泥", fields.ItemName)
	assert.Equal(t, "9290", fields.NetWeight)
}

func TestParseWeighingSlipLines(t *testing.T) {
	p := newTestParser()
	content := `計量伝票
2025年6月27日
コード1 1234 妙高アクアクリーン
コード2 5678
有機性汚泥
補正C 120 3,450
正味重量 2,110 kg`

	fields, rawText := p.Parse(content, constants.SlipTypeWeighing)

	assert.Equal(t, "2025-06-27", fields.Date)
	assert.Equal(t, "妙高アクアクリーンセンター", fields.ClientName)
	assert.Equal(t, "有機性汚泥", fields.ItemName)
	assert.Equal(t, "2110", fields.NetWeight)
	assert.Equal(t, content, rawText)
}

func TestParseWeighingCorrectionRowFallback(t *testing.T) {
	p := newTestParser()
	content := "コード1 1234 妙高アクアクリーンセンター\n補正C 120 3,450"

	fields, _ := p.Parse(content, constants.SlipTypeWeighing)

	// Last number on the correction row wins when no 正味重量 row exists.
	assert.Equal(t, "3450", fields.NetWeight)
}

func TestParseWeighingClientOnNextLine(t *testing.T) {
	p := newTestParser()
	content := "コード1\n9012 アクアセンター"

	fields, _ := p.Parse(content, constants.SlipTypeWeighing)

	assert.Equal(t, "妙高アクアクリーンセンター", fields.ClientName)
}

func TestParseInspectionSlipLines(t *testing.T) {
	p := newTestParser()
	content := `検量書
0日付 25.01.10
1銘柄 106 汚泥
4. アース帰り便
正味 9290kg`

	fields, _ := p.Parse(content, constants.SlipTypeInspection)

	assert.Equal(t, "2025-01-10", fields.Date)
	assert.Equal(t, "汚泥", fields.ItemName)
	assert.Equal(t, "アース帰り便", fields.ClientName)
	assert.Equal(t, "9290", fields.NetWeight)
}

func TestParseInspectionReturnTripAnywhere(t *testing.T) {
	p := newTestParser()
	content := "得意先 アース帰り便 です\n正味 8120"

	fields, _ := p.Parse(content, constants.SlipTypeInspection)

	assert.Equal(t, "アース帰り便", fields.ClientName)
	assert.Equal(t, "8120", fields.NetWeight)
}

func TestParseTicketLines(t *testing.T) {
	p := newTestParser()
	content := `計量票
令和7年6月27日
現場： 上越市
下水道 センター
品名： 汚泥
正味 1,480 kg`

	fields, _ := p.Parse(content, constants.SlipTypeTicket)

	assert.Equal(t, "2025-06-27", fields.Date)
	assert.Equal(t, "上越市下水道センター", fields.ClientName)
	assert.Equal(t, "汚泥", fields.ItemName)
	assert.Equal(t, "1480", fields.NetWeight)
}

func TestParseTicketCanonicalBiomassSite(t *testing.T) {
	p := newTestParser()
	content := "現場： 上越マテリアル バイオマス発電所\n品名： 木くず\n正味 980 kg"

	fields, _ := p.Parse(content, constants.SlipTypeTicket)

	assert.Equal(t, "バイオマス", fields.ClientName)
	assert.Equal(t, "木くず", fields.ItemName)
}

func TestParseKeywordFallbackOnBrokenJSON(t *testing.T) {
	p := newTestParser()
	// Truncated JSON cannot be decoded, but quoted pairs survive.
	content := `{"date":"2025-06-27","clientName":"バイオマス","itemName":"汚泥","netWeight":"1480","manifestNumber":"12345678"`

	fields, _ := p.Parse(content, constants.SlipTypeTicket)

	assert.Equal(t, "2025-06-27", fields.Date)
	assert.Equal(t, "バイオマス", fields.ClientName)
	assert.Equal(t, "1480", fields.NetWeight)
	assert.Equal(t, "12345678", fields.ManifestNumber)
}

func TestParseManifestKeywordLastFour(t *testing.T) {
	p := newTestParser()
	content := "マニフェスト番号: 00123456\n正味 1200 kg"

	fields, _ := p.Parse(content, constants.SlipTypeTicket)

	assert.Equal(t, "3456", fields.ManifestNumber)
}

func TestParseDateNotations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"slash", "2025/6/27", "2025-06-27"},
		{"kanji", "2025年6月27日", "2025-06-27"},
		{"reiwa", "令和7年6月27日", "2025-06-27"},
		{"two digit", "25/06/27", "2025-06-27"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDate(tt.content))
		})
	}
}

func TestParseNeverFails(t *testing.T) {
	p := newTestParser()
	content := "completely unrelated text with no anchors"

	fields, rawText := p.Parse(content, constants.SlipTypeWeighing)

	assert.Empty(t, fields.Date)
	assert.Empty(t, fields.ClientName)
	assert.Empty(t, fields.NetWeight)
	assert.Equal(t, content, rawText)
}
