package recognition

import (
	"context"

	"github.com/wastetrack/slips-tracker/constants"
)

// Strategy describes how a slip layout should be presented to the vision
// service: the prompt pair, the response mode, and the image detail level.
type Strategy struct {
	SlipType     constants.SlipType
	Mode         constants.RecognitionMode
	SystemPrompt string
	UserPrompt   string
	Detail       string
	MaxTokens    int
}

// Result is a single successful vision-service response.
type Result struct {
	Content string
	Model   string
}

// Recognizer is the interface the pipeline depends on.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, strat Strategy) (Result, error)
}
