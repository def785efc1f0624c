package recognition

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wastetrack/slips-tracker/constants"
)

func TestStrategyForReceiptIsStructured(t *testing.T) {
	strat := StrategyFor(constants.SlipTypeReceipt)

	assert.Equal(t, constants.ModeStructured, strat.Mode)
	assert.NotEmpty(t, strat.SystemPrompt)
	assert.Contains(t, strat.UserPrompt, "JSON")
	assert.Contains(t, strat.UserPrompt, "正味")
}

func TestStrategyForFreeTextLayouts(t *testing.T) {
	for _, st := range []constants.SlipType{
		constants.SlipTypeInspection,
		constants.SlipTypeWeighing,
		constants.SlipTypeTicket,
	} {
		strat := StrategyFor(st)
		assert.Equal(t, constants.ModeFreeText, strat.Mode, st.String())
		assert.Empty(t, strat.SystemPrompt, st.String())
		assert.Equal(t, "high", strat.Detail, st.String())
		assert.False(t, strings.Contains(strat.UserPrompt, "JSON"), st.String())
	}
}

func TestStrategyForWeighingMentionsCodeRows(t *testing.T) {
	strat := StrategyFor(constants.SlipTypeWeighing)

	assert.Contains(t, strat.UserPrompt, "コード1")
	assert.Contains(t, strat.UserPrompt, "コード2")
	assert.Contains(t, strat.UserPrompt, "補正C")
}

func TestStrategyForUnknownFallsBack(t *testing.T) {
	strat := StrategyFor(constants.SlipType("納品書"))

	assert.Equal(t, constants.ModeStructured, strat.Mode)
	assert.NotEmpty(t, strat.UserPrompt)
}

func TestIsRefusal(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "polite refusal",
			content: "申し訳ありませんが、この画像のテキストを読み取ることはできません。",
			want:    true,
		},
		{
			name:    "short refusal",
			content: "申し訳ありません、読み取ることはできません。",
			want:    true,
		},
		{
			name:    "cannot read image",
			content: "この画像を読み取ることができません",
			want:    true,
		},
		{
			name:    "normal transcription",
			content: "日付 2025/06/27\nコード1 1234 妙高アクアクリーンセンター",
			want:    false,
		},
		{
			name:    "apology inside transcription only",
			content: "備考: 申し訳ありませんが再計量をお願いします",
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRefusal(tt.content))
		})
	}
}
