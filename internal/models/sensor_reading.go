package models

// SensorReading is a single field sample pushed by a device. Devices send
// one reading per field; the repository turns each into an InfluxDB point
// tagged with the device id.
type SensorReading struct {
	DeviceID  string  `json:"device_id"`
	Field     string  `json:"field"`
	Value     float64 `json:"value"`
	Timestamp string  `json:"timestamp,omitempty"` // RFC3339; server time when empty
}
