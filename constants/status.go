package constants

// ConfidenceLevel describes how a field value was obtained.
type ConfidenceLevel string

const (
	// ConfidenceGood means the value was read from the document.
	ConfidenceGood ConfidenceLevel = "good"
	// ConfidenceDefault means the value was substituted (e.g. today's date).
	ConfidenceDefault ConfidenceLevel = "default"
	// ConfidenceMissing means nothing usable was found.
	ConfidenceMissing ConfidenceLevel = "missing"
)

// RecognitionMode selects how the vision response is expected to come back.
type RecognitionMode string

const (
	// ModeStructured asks the service for a JSON object.
	ModeStructured RecognitionMode = "structured"
	// ModeFreeText asks for a plain transcription to be line-parsed locally.
	ModeFreeText RecognitionMode = "free_text"
)
