package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"go.uber.org/zap"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/models"
)

// FieldSample is one tall record from the time-series store: a single
// (timestamp, field, value) triple.
type FieldSample struct {
	Time  time.Time
	Field string
	Value interface{}
}

// Repository Interface
type Repository interface {
	QueryRange(ctx context.Context, minutes int, measurement string) ([]FieldSample, error)
	WriteReadings(ctx context.Context, readings []models.SensorReading) error
}

// InfluxRepository reads and writes sensor data in InfluxDB. The client is
// created once and shared; it is safe for concurrent use.
type InfluxRepository struct {
	client influxdb2.Client
	org    string
	bucket string
	log    *zap.Logger
}

// NewInfluxRepository creates a new InfluxRepository.
func NewInfluxRepository(url, token, org, bucket string, log *zap.Logger) *InfluxRepository {
	client := influxdb2.NewClient(url, token)
	return &InfluxRepository{
		client: client,
		org:    org,
		bucket: bucket,
		log:    log,
	}
}

// Close releases the underlying client.
func (r *InfluxRepository) Close() {
	r.client.Close()
}

// QueryRange returns every (time, field, value) sample of a measurement
// over the last `minutes` minutes.
func (r *InfluxRepository) QueryRange(ctx context.Context, minutes int, measurement string) ([]FieldSample, error) {
	queryAPI := r.client.QueryAPI(r.org)

	flux := fmt.Sprintf(`
from(bucket: "%s")
  |> range(start: -%dm)
  |> filter(fn: (r) => r._measurement == "%s")
  |> keep(columns: ["_time","_field","_value"])
`, r.bucket, minutes, measurement)

	result, err := queryAPI.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("error querying InfluxDB: %w", err)
	}

	var samples []FieldSample
	for result.Next() {
		record := result.Record()
		samples = append(samples, FieldSample{
			Time:  record.Time(),
			Field: record.Field(),
			Value: record.Value(),
		})
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("error iterating query result: %w", result.Err())
	}

	return samples, nil
}

// WriteReadings writes one point per reading, tagged with the device id.
// A reading with an unparseable timestamp falls back to server time.
func (r *InfluxRepository) WriteReadings(ctx context.Context, readings []models.SensorReading) error {
	writeAPI := r.client.WriteAPIBlocking(r.org, r.bucket)

	for _, reading := range readings {
		ts := time.Now()
		if reading.Timestamp != "" {
			parsed, err := time.Parse(time.RFC3339, reading.Timestamp)
			if err != nil {
				r.log.Warn("unparseable reading timestamp, using server time",
					zap.String("timestamp", reading.Timestamp),
					zap.String("device_id", reading.DeviceID))
			} else {
				ts = parsed
			}
		}

		var p *write.Point = influxdb2.NewPoint(
			"sensor_data",
			map[string]string{"device_id": reading.DeviceID},
			map[string]interface{}{reading.Field: reading.Value},
			ts,
		)
		if err := writeAPI.WritePoint(ctx, p); err != nil {
			return fmt.Errorf("error writing to InfluxDB: %w", err)
		}
	}
	return nil
}

// ReshapeWide converts tall samples into one WeatherPoint per timestamp,
// sorted ascending by time.
func ReshapeWide(samples []FieldSample) []models.WeatherPoint {
	byTime := make(map[int64]*models.WeatherPoint)

	for _, sample := range samples {
		key := sample.Time.UnixNano()
		point, ok := byTime[key]
		if !ok {
			ts := sample.Time
			point = &models.WeatherPoint{Time: &ts}
			byTime[key] = point
		}
		point.SetField(sample.Field, sample.Value)
	}

	points := make([]models.WeatherPoint, 0, len(byTime))
	for _, point := range byTime {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Time.Before(*points[j].Time)
	})
	return points
}
