package models

import "time"

// WeatherPoint is one wide record of the forecast response: a single
// timestamp with every sensor field that was reported at that instant.
// All fields are optional; a nil pointer means the sensor did not report.
type WeatherPoint struct {
	Time        *time.Time `json:"time,omitempty"`
	DeviceID    *string    `json:"device_id,omitempty"`
	Temperature *float64   `json:"temperature,omitempty"`
	Humidity    *float64   `json:"humidity,omitempty"`
	Pressure    *float64   `json:"pressure,omitempty"`
	Light       *float64   `json:"light,omitempty"`
	Noise       *float64   `json:"noise,omitempty"`
	Tof         *float64   `json:"tof,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	// Forecast label written by the offline model. The wire name matches
	// the field the firmware and frontend already use.
	Forecast *string `json:"forcast,omitempty"`
}

// SetField assigns a tall-record field value to the matching struct field.
// Unknown field names and unexpected value types are ignored.
func (p *WeatherPoint) SetField(name string, value interface{}) {
	if s, ok := value.(string); ok {
		switch name {
		case "device_id":
			p.DeviceID = &s
		case "forcast":
			p.Forecast = &s
		}
		return
	}

	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case int64:
		f = float64(v)
	default:
		return
	}

	switch name {
	case "temperature":
		p.Temperature = &f
	case "humidity":
		p.Humidity = &f
	case "pressure":
		p.Pressure = &f
	case "light":
		p.Light = &f
	case "noise":
		p.Noise = &f
	case "tof":
		p.Tof = &f
	case "latitude":
		p.Latitude = &f
	case "longitude":
		p.Longitude = &f
	}
}
