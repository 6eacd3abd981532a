package sensorctx

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/localization"
)

// Build turns the raw device_data form field into the grounding-data text
// block embedded in the assistant's system instruction. It never fails:
// malformed telemetry degrades to a localized placeholder so the assistant
// stays responsive, and the problem is only logged.
func Build(deviceData string, loc localization.Locale) string {
	if strings.TrimSpace(deviceData) == "" {
		return placeholder(loc, loc.NoData)
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(deviceData), &parsed); err != nil {
		zap.L().Warn("device_data is not valid JSON", zap.Error(err))
		return placeholder(loc, loc.ParseError)
	}

	list, ok := parsed.([]interface{})
	if !ok {
		zap.L().Warn("device_data is not a JSON array")
		return placeholder(loc, loc.InvalidFormat)
	}
	if len(list) == 0 {
		return placeholder(loc, loc.NoReadings)
	}

	var blocks []string
	for _, elem := range list {
		reading, ok := elem.(map[string]interface{})
		if !ok {
			continue
		}
		blocks = append(blocks, formatReading(reading, loc))
	}
	if len(blocks) == 0 {
		return placeholder(loc, loc.NoReadings)
	}

	return loc.DataHeader + "\n" + strings.Join(blocks, "\n\n")
}

func placeholder(loc localization.Locale, text string) string {
	return loc.DataHeader + "\n" + text
}

// formatReading renders one device block: a device-id line followed by one
// line per reported field. Absent fields are omitted entirely.
func formatReading(r map[string]interface{}, loc localization.Locale) string {
	lines := []string{fmt.Sprintf(loc.DeviceLabel, r["device_id"])}

	if v, ok := number(r, "temperature"); ok {
		lines = append(lines, fmt.Sprintf(loc.TemperatureLine, v))
	}
	if v, ok := number(r, "humidity"); ok {
		lines = append(lines, fmt.Sprintf(loc.HumidityLine, v))
	}
	if v, ok := number(r, "pressure"); ok {
		lines = append(lines, fmt.Sprintf(loc.PressureLine, v))
	}
	if v, ok := number(r, "light"); ok {
		lines = append(lines, fmt.Sprintf(loc.LightLine, v))
	}
	if v, ok := number(r, "noise"); ok {
		lines = append(lines, fmt.Sprintf(loc.NoiseLine, v))
	}
	if v, ok := number(r, "tof"); ok {
		lines = append(lines, fmt.Sprintf(loc.TofLine, v))
	}
	lat, hasLat := number(r, "latitude")
	lon, hasLon := number(r, "longitude")
	if hasLat && hasLon {
		lines = append(lines, fmt.Sprintf(loc.PositionLine, lat, lon))
	}
	if ts, ok := r["time"]; ok && ts != nil {
		lines = append(lines, fmt.Sprintf(loc.TimeLine, ts))
	}

	return strings.Join(lines, "\n")
}

func number(r map[string]interface{}, key string) (float64, bool) {
	v, ok := r[key].(float64)
	return v, ok
}
