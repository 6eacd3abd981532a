package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/assistant"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/config"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/controller"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/middleware"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/provider/groq"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/repository"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/routes"
	"github.com/yonasyifter/IoT-ProjectWeatherForcast/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// External providers, created once and shared across requests
	groqClient, err := groq.NewClient(groq.Config{
		APIKey:       cfg.GroqAPIKey,
		ChatModel:    cfg.ChatModel,
		WhisperModel: cfg.WhisperModel,
	}, logger)
	if err != nil {
		logger.Fatal("error creating Groq client", zap.Error(err))
	}

	// Initialize repository, services, and controllers
	repo := repository.NewInfluxRepository(cfg.InfluxDBURL, cfg.InfluxDBToken, cfg.InfluxDBOrg, cfg.InfluxDBBucket, logger)
	defer repo.Close()

	weatherService := service.NewWeatherService(repo, cfg.Measurement)
	assistantService := assistant.NewService(groqClient, cfg.MaxAudioBytes, logger)

	weatherController := controller.NewWeatherController(weatherService, logger)
	chatController := controller.NewChatController(assistantService, logger)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, weatherController, chatController)
	router.Use(middleware.RequestLogger(logger))

	// CORS setup
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(router)

	serverAddress := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server listening", zap.String("address", serverAddress))
	if err := http.ListenAndServe(serverAddress, handler); err != nil {
		logger.Fatal("error starting server", zap.Error(err))
	}
}
