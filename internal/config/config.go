package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration.
type Config struct {
	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string
	Measurement    string

	GroqAPIKey   string
	ChatModel    string
	WhisperModel string

	// MaxAudioBytes is the upload ceiling for the chat endpoint; the
	// provider's dedicated speech endpoint accepts up to 25 MiB.
	MaxAudioBytes int64

	Port           string
	AllowedOrigins []string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}

	cfg := Config{
		InfluxDBURL:    os.Getenv("INFLUXDB_URL"),
		InfluxDBToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxDBOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxDBBucket: os.Getenv("INFLUXDB_BUCKET"),
		Measurement:    getenvDefault("INFLUXDB_MEASUREMENT", "sensor_data"),

		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		ChatModel:    getenvDefault("GROQ_CHAT_MODEL", "llama-3.3-70b-versatile"),
		WhisperModel: getenvDefault("GROQ_WHISPER_MODEL", "whisper-large-v3"),

		MaxAudioBytes: getenvInt64("MAX_AUDIO_BYTES", 25<<20),

		Port:           getenvDefault("PORT", "8000"),
		AllowedOrigins: splitOrigins(getenvDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
	}

	required := []struct {
		name  string
		value string
	}{
		{"INFLUXDB_URL", cfg.InfluxDBURL},
		{"INFLUXDB_TOKEN", cfg.InfluxDBToken},
		{"INFLUXDB_ORG", cfg.InfluxDBOrg},
		{"INFLUXDB_BUCKET", cfg.InfluxDBBucket},
		{"GROQ_API_KEY", cfg.GroqAPIKey},
	}
	var missing []string
	for _, req := range required {
		if req.value == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil && n > 0 {
			return n
		}
		log.Printf("Invalid %s value %q, using default %d", key, v, def)
	}
	return def
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
