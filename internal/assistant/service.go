package assistant

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/audio"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/localization"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/models"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/sensorctx"
)

// Provider is the external AI capability the orchestrator depends on.
// The deployed implementation transcribes speech and generates text in two
// separate calls; a single multi-modal implementation could replace it
// behind the same interface.
type Provider interface {
	Transcribe(ctx context.Context, data []byte, token string, language localization.Language) (string, error)
	Generate(ctx context.Context, system, user string) (string, error)
}

// Request aggregates everything the chat endpoint accepts.
type Request struct {
	UserQuery  string
	DeviceData string
	Audio      []byte
	AudioMime  string
	HasAudio   bool
	Language   localization.Language
}

// Service decides the effective query text, assembles the localized system
// instruction around the sensor context, and shapes the provider's output
// into the fixed two-field response.
type Service struct {
	provider      Provider
	maxAudioBytes int64
	log           *zap.Logger
}

// NewService creates the assistant orchestrator. maxAudioBytes is the
// provider-specific upload ceiling.
func NewService(provider Provider, maxAudioBytes int64, log *zap.Logger) *Service {
	return &Service{
		provider:      provider,
		maxAudioBytes: maxAudioBytes,
		log:           log,
	}
}

// Answer runs the full chat pipeline. It fails only with models.APIError
// values the controller can map to status codes; everything recoverable
// degrades inside the pipeline.
func (s *Service) Answer(ctx context.Context, req Request) (models.ChatResponse, error) {
	loc := localization.For(req.Language)
	contextBlock := sensorctx.Build(req.DeviceData, loc)

	if req.UserQuery == "" && !req.HasAudio {
		return models.ChatResponse{}, models.NewAPIError(models.ErrorCodeMissingInput,
			"send either user_query or audio_file", nil, http.StatusBadRequest)
	}

	transcript := ""
	if req.HasAudio {
		if len(req.Audio) == 0 {
			return models.ChatResponse{}, models.NewAPIError(models.ErrorCodeEmptyAudio,
				"audio_file is empty", nil, http.StatusBadRequest)
		}
		if int64(len(req.Audio)) > s.maxAudioBytes {
			return models.ChatResponse{}, models.NewAPIError(models.ErrorCodeAudioTooLarge,
				fmt.Sprintf("audio_file exceeds the %d byte limit; send a smaller clip", s.maxAudioBytes),
				nil, http.StatusRequestEntityTooLarge)
		}
		transcript = s.transcribe(ctx, req, loc)
	}

	// Prefer what the user said over what they typed; the marker means the
	// audio carried no usable speech.
	effective := req.UserQuery
	if transcript != "" && transcript != loc.UnableToTranscribe {
		effective = transcript
	}

	if effective == "" {
		// Audio was accepted but unintelligible and there is no typed
		// fallback. Not an error: ask the user to repeat.
		return models.ChatResponse{Transcript: "", Answer: loc.RetryPrompt}, nil
	}

	system := fmt.Sprintf(loc.SystemTemplate, contextBlock)
	answer, err := s.provider.Generate(ctx, system, effective)
	if err != nil {
		s.log.Error("generation failed", zap.Error(err))
		return models.ChatResponse{}, models.NewAPIError(models.ErrorCodeInternalServerError,
			loc.ServerError, nil, http.StatusInternalServerError)
	}

	return models.ChatResponse{
		Transcript: responseTranscript(transcript, loc),
		Answer:     answer,
	}, nil
}

// transcribe is best-effort: provider failures and empty results both
// collapse to the localized marker so the pipeline can fall back to the
// typed query.
func (s *Service) transcribe(ctx context.Context, req Request, loc localization.Locale) string {
	token := audio.NormalizeMime(req.AudioMime)

	text, err := s.provider.Transcribe(ctx, req.Audio, token, req.Language)
	if err != nil {
		s.log.Warn("transcription failed, substituting marker", zap.Error(err))
		return loc.UnableToTranscribe
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return loc.UnableToTranscribe
	}
	return text
}

// responseTranscript keeps the marker out of the response payload: the
// transcript field is either real speech or empty.
func responseTranscript(transcript string, loc localization.Locale) string {
	if transcript == loc.UnableToTranscribe {
		return ""
	}
	return transcript
}
