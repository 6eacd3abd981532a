package groq

import "fmt"

// Op identifies which provider capability failed.
type Op string

const (
	OpTranscribe Op = "transcribe"
	OpGenerate   Op = "generate"
)

// ProviderError is the typed failure returned at the provider boundary.
// Callers branch on it instead of inspecting raw transport errors; the
// full detail stays server-side.
type ProviderError struct {
	Op         Op
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("groq %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("groq %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
