package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/models"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/service"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/utils"
)

// WeatherController handles HTTP requests for sensor data.
type WeatherController struct {
	service *service.WeatherService
	log     *zap.Logger
}

// NewWeatherController creates a new WeatherController.
func NewWeatherController(service *service.WeatherService, log *zap.Logger) *WeatherController {
	return &WeatherController{
		service: service,
		log:     log,
	}
}

// HandleForecast returns the last `minutes` of the measurement as wide,
// time-ordered points. minutes defaults to 60.
func (c *WeatherController) HandleForecast(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	minutes := 60
	if raw := query.Get("minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apiErr := models.NewAPIError(models.ErrorCodeInvalidFormat, "minutes must be an integer", nil, http.StatusBadRequest)
			utils.RespondWithError(w, apiErr)
			return
		}
		minutes = parsed
	}

	points, err := c.service.Forecast(r.Context(), service.ForecastQuery{
		Minutes:     minutes,
		Measurement: query.Get("measurement"),
	})
	if err != nil {
		c.respondServiceError(w, err, "error fetching forecast data")
		return
	}

	// An empty range still returns a JSON array, not null.
	if points == nil {
		points = []models.WeatherPoint{}
	}
	utils.RespondWithJSON(w, http.StatusOK, points)
}

// HandleIngest accepts a JSON array of device readings and writes them to
// the time-series store.
func (c *WeatherController) HandleIngest(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var readings []models.SensorReading
	if err := json.NewDecoder(r.Body).Decode(&readings); err != nil {
		apiErr := models.NewAPIError(models.ErrorCodeBadRequest, fmt.Sprintf("error unmarshalling JSON: %v", err), nil, http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}

	if err := c.service.Ingest(r.Context(), readings); err != nil {
		c.respondServiceError(w, err, "error processing readings")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"message": "readings written"})
}

func (c *WeatherController) respondServiceError(w http.ResponseWriter, err error, msg string) {
	var apiErr models.APIError
	if errors.As(err, &apiErr) {
		utils.RespondWithError(w, apiErr)
		return
	}
	c.log.Error(msg, zap.Error(err))
	utils.RespondWithError(w, models.NewAPIError(models.ErrorCodeInternalServerError, msg, nil, http.StatusInternalServerError))
}
