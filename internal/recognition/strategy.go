package recognition

import "github.com/wastetrack/slips-tracker/constants"

// StrategyFor picks the recognition strategy for a layout.
//
// Only the printed receipt responds well to a structured JSON ask; the
// handwritten and weighbridge layouts get a plain transcription prompt and
// are parsed locally, which proved far more reliable on faint print.
func StrategyFor(slipType constants.SlipType) Strategy {
	switch slipType {
	case constants.SlipTypeReceipt:
		return Strategy{
			SlipType:     slipType,
			Mode:         constants.ModeStructured,
			SystemPrompt: systemPromptStructured,
			UserPrompt:   promptReceipt + jsonFormatInstruction,
			Detail:       "low",
			MaxTokens:    1000,
		}
	case constants.SlipTypeInspection:
		return Strategy{
			SlipType:   slipType,
			Mode:       constants.ModeFreeText,
			UserPrompt: promptInspection,
			Detail:     "high",
			MaxTokens:  2000,
		}
	case constants.SlipTypeWeighing:
		return Strategy{
			SlipType:   slipType,
			Mode:       constants.ModeFreeText,
			UserPrompt: promptWeighing,
			Detail:     "high",
			MaxTokens:  4000,
		}
	case constants.SlipTypeTicket:
		return Strategy{
			SlipType:   slipType,
			Mode:       constants.ModeFreeText,
			UserPrompt: promptTicket,
			Detail:     "high",
			MaxTokens:  2000,
		}
	default:
		return Strategy{
			SlipType:     slipType,
			Mode:         constants.ModeStructured,
			SystemPrompt: systemPromptStructured,
			UserPrompt:   promptGeneric + jsonFormatInstruction,
			Detail:       "low",
			MaxTokens:    1000,
		}
	}
}
