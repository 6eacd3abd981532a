package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/models"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/repository"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/service"
)

type stubRepo struct {
	samples []repository.FieldSample
	written []models.SensorReading
}

func (s *stubRepo) QueryRange(context.Context, int, string) ([]repository.FieldSample, error) {
	return s.samples, nil
}

func (s *stubRepo) WriteReadings(_ context.Context, readings []models.SensorReading) error {
	s.written = append(s.written, readings...)
	return nil
}

func newWeatherController(repo repository.Repository) *WeatherController {
	return NewWeatherController(service.NewWeatherService(repo, "sensor_data"), zap.NewNop())
}

func TestHandleForecastReturnsWidePoints(t *testing.T) {
	t1 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	ctrl := newWeatherController(&stubRepo{samples: []repository.FieldSample{
		{Time: t1, Field: "temperature", Value: float64(20)},
		{Time: t1, Field: "humidity", Value: float64(50)},
	}})

	rec := httptest.NewRecorder()
	ctrl.HandleForecast(rec, httptest.NewRequest(http.MethodGet, "/api/weather/forecast?minutes=30", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var points []models.WeatherPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 1)
	assert.Equal(t, 20.0, *points[0].Temperature)
	assert.Equal(t, 50.0, *points[0].Humidity)
}

func TestHandleForecastEmptyRangeIsEmptyArray(t *testing.T) {
	ctrl := newWeatherController(&stubRepo{})

	rec := httptest.NewRecorder()
	ctrl.HandleForecast(rec, httptest.NewRequest(http.MethodGet, "/api/weather/forecast", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandleForecastRejectsBadMinutes(t *testing.T) {
	ctrl := newWeatherController(&stubRepo{})

	for _, q := range []string{"minutes=abc", "minutes=0", "minutes=99999"} {
		rec := httptest.NewRecorder()
		ctrl.HandleForecast(rec, httptest.NewRequest(http.MethodGet, "/api/weather/forecast?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestHandleIngest(t *testing.T) {
	repo := &stubRepo{}
	ctrl := newWeatherController(repo)

	body := `[{"device_id":"Z1","field":"temperature","value":21.3}]`
	rec := httptest.NewRecorder()
	ctrl.HandleIngest(rec, httptest.NewRequest(http.MethodPost, "/api/weather/readings", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.written, 1)
	assert.Equal(t, "Z1", repo.written[0].DeviceID)
}

func TestHandleIngestRejectsMalformedJSON(t *testing.T) {
	ctrl := newWeatherController(&stubRepo{})

	rec := httptest.NewRecorder()
	ctrl.HandleIngest(rec, httptest.NewRequest(http.MethodPost, "/api/weather/readings", strings.NewReader("{oops")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
