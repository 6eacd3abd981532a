package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/models"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/repository"
)

type fakeRepo struct {
	samples     []repository.FieldSample
	written     []models.SensorReading
	lastMinutes int
	lastMeas    string
}

func (f *fakeRepo) QueryRange(_ context.Context, minutes int, measurement string) ([]repository.FieldSample, error) {
	f.lastMinutes = minutes
	f.lastMeas = measurement
	return f.samples, nil
}

func (f *fakeRepo) WriteReadings(_ context.Context, readings []models.SensorReading) error {
	f.written = append(f.written, readings...)
	return nil
}

func TestForecastDefaultsMeasurement(t *testing.T) {
	t1 := time.Now().UTC().Truncate(time.Second)
	repo := &fakeRepo{samples: []repository.FieldSample{
		{Time: t1, Field: "temperature", Value: float64(19.5)},
	}}
	svc := NewWeatherService(repo, "weather")

	points, err := svc.Forecast(context.Background(), ForecastQuery{Minutes: 60})

	require.NoError(t, err)
	assert.Equal(t, "weather", repo.lastMeas)
	assert.Equal(t, 60, repo.lastMinutes)
	require.Len(t, points, 1)
	assert.Equal(t, 19.5, *points[0].Temperature)
}

func TestForecastRejectsOutOfRangeMinutes(t *testing.T) {
	svc := NewWeatherService(&fakeRepo{}, "weather")

	for _, minutes := range []int{0, -5, 10081} {
		_, err := svc.Forecast(context.Background(), ForecastQuery{Minutes: minutes})
		var apiErr models.APIError
		require.ErrorAs(t, err, &apiErr, "minutes=%d", minutes)
		assert.Equal(t, models.ErrorCodeValidationFailed, apiErr.Code)
	}
}

func TestIngestRequiresDeviceIDAndField(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewWeatherService(repo, "weather")

	err := svc.Ingest(context.Background(), []models.SensorReading{{Field: "temperature", Value: 20}})
	var apiErr models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, models.ErrorCodeMissingParameter, apiErr.Code)
	assert.Empty(t, repo.written)

	err = svc.Ingest(context.Background(), []models.SensorReading{
		{DeviceID: "Z1", Field: "temperature", Value: 20},
	})
	require.NoError(t, err)
	assert.Len(t, repo.written, 1)
}
