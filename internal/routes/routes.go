package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/controller"
)

// RegisterRoutes registers all application routes.
func RegisterRoutes(router *mux.Router, weather *controller.WeatherController, chat *controller.ChatController) {
	api := router.PathPrefix("/api").Subrouter()

	// Sensor data
	api.HandleFunc("/weather/forecast", weather.HandleForecast).Methods(http.MethodGet)
	api.HandleFunc("/weather/readings", weather.HandleIngest).Methods(http.MethodPost)

	// AI assistant
	api.HandleFunc("/rag/chat", chat.HandleChat).Methods(http.MethodPost)

	// Health check (GET only)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods(http.MethodGet)
}
