package models

// ChatResponse is the fixed two-field payload of the assistant endpoint.
// Both fields are always present; Transcript is empty when no audio was
// processed or when transcription produced nothing usable.
type ChatResponse struct {
	Transcript string `json:"transcript"`
	Answer     string `json:"answer"`
}
