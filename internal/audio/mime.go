package audio

import "strings"

// DefaultToken is used when the upload carries no usable content type.
const DefaultToken = "wav"

// Known upload content types and their canonical tokens. The token doubles
// as the file extension sent to the speech endpoint.
var mimeTokens = map[string]string{
	"audio/wav":   "wav",
	"audio/x-wav": "wav",
	"audio/wave":  "wav",
	"audio/mp3":   "mp3",
	"audio/mpeg":  "mp3", // common upload type for mp3
	"audio/aiff":  "aiff",
	"audio/aac":   "aac",
	"audio/ogg":   "ogg",
	"audio/flac":  "flac",
}

// NormalizeMime maps an upload content type to a canonical codec token.
// Blank and unknown values fall back to DefaultToken, so the transcription
// path always receives a token it can handle.
func NormalizeMime(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if mime == "" {
		return DefaultToken
	}
	if token, ok := mimeTokens[mime]; ok {
		return token
	}
	return DefaultToken
}
