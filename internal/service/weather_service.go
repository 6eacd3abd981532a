package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/models"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/repository"
)

var validate = validator.New()

// ForecastQuery holds the validated parameters of a forecast request.
// Minutes is capped at seven days of history.
type ForecastQuery struct {
	Minutes     int    `validate:"min=1,max=10080"`
	Measurement string `validate:"required"`
}

// WeatherService handles the business logic for sensor data queries and
// ingestion.
type WeatherService struct {
	repo               repository.Repository
	defaultMeasurement string
}

// NewWeatherService creates a new WeatherService.
func NewWeatherService(repo repository.Repository, defaultMeasurement string) *WeatherService {
	return &WeatherService{
		repo:               repo,
		defaultMeasurement: defaultMeasurement,
	}
}

// Forecast queries the last q.Minutes of the measurement and reshapes the
// tall samples into wide, time-ordered points.
func (s *WeatherService) Forecast(ctx context.Context, q ForecastQuery) ([]models.WeatherPoint, error) {
	if q.Measurement == "" {
		q.Measurement = s.defaultMeasurement
	}
	if err := validate.Struct(q); err != nil {
		return nil, models.NewAPIError(models.ErrorCodeValidationFailed, err.Error(), nil, http.StatusBadRequest)
	}

	samples, err := s.repo.QueryRange(ctx, q.Minutes, q.Measurement)
	if err != nil {
		return nil, fmt.Errorf("error querying data: %w", err)
	}
	return repository.ReshapeWide(samples), nil
}

// Ingest validates and stores a batch of device readings.
func (s *WeatherService) Ingest(ctx context.Context, readings []models.SensorReading) error {
	for _, reading := range readings {
		if reading.DeviceID == "" {
			return models.NewAPIError(models.ErrorCodeMissingParameter, "device_id is required", nil, http.StatusBadRequest)
		}
		if reading.Field == "" {
			return models.NewAPIError(models.ErrorCodeMissingParameter, "field is required", nil, http.StatusBadRequest)
		}
	}
	return s.repo.WriteReadings(ctx, readings)
}
