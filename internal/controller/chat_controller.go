package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/assistant"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/localization"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/models"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/utils"
)

// multipart memory threshold; larger uploads spool to temp files that the
// stdlib removes when the request ends.
const maxMultipartMemory = 32 << 20

// ChatController handles the assistant endpoint.
type ChatController struct {
	assistant *assistant.Service
	log       *zap.Logger
}

// NewChatController creates a new ChatController.
func NewChatController(assistant *assistant.Service, log *zap.Logger) *ChatController {
	return &ChatController{
		assistant: assistant,
		log:       log,
	}
}

// HandleChat accepts a multipart form with user_query, device_data,
// audio_file and language fields and returns {transcript, answer}.
func (c *ChatController) HandleChat(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		apiErr := models.NewAPIError(models.ErrorCodeBadRequest, fmt.Sprintf("error parsing multipart form: %v", err), nil, http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}

	req := assistant.Request{
		UserQuery:  r.FormValue("user_query"),
		DeviceData: r.FormValue("device_data"),
		Language:   localization.Parse(r.FormValue("language")),
	}

	file, header, err := r.FormFile("audio_file")
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			apiErr := models.NewAPIError(models.ErrorCodeBadRequest, fmt.Sprintf("error reading audio_file: %v", readErr), nil, http.StatusBadRequest)
			utils.RespondWithError(w, apiErr)
			return
		}
		req.HasAudio = true
		req.Audio = data
		req.AudioMime = header.Header.Get("Content-Type")
	case errors.Is(err, http.ErrMissingFile):
		// audio is optional
	default:
		apiErr := models.NewAPIError(models.ErrorCodeBadRequest, fmt.Sprintf("error reading audio_file: %v", err), nil, http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}

	c.log.Info("chat request",
		zap.String("request_id", requestID),
		zap.String("language", string(req.Language)),
		zap.Bool("has_audio", req.HasAudio),
		zap.Bool("has_query", req.UserQuery != ""),
		zap.Int("audio_bytes", len(req.Audio)))

	resp, err := c.assistant.Answer(r.Context(), req)
	if err != nil {
		var apiErr models.APIError
		if errors.As(err, &apiErr) {
			utils.RespondWithError(w, apiErr)
			return
		}
		c.log.Error("chat request failed", zap.String("request_id", requestID), zap.Error(err))
		utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeInternalServerError, "error processing chat request", nil, http.StatusInternalServerError))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}
