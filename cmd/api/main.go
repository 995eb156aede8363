package main

import (
	"net/http"

	"survey-enrichment/internal/config"
	"survey-enrichment/internal/geocoder"
	"survey-enrichment/internal/handler"
	"survey-enrichment/internal/logger"
	"survey-enrichment/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	logger, err := logger.Setup(config.LogLevel, config.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up logger")
	}

	// Initialize layers
	client := geocoder.NewClient(geocoder.ClientConfig{
		BaseURL: config.GeocodeBaseURL,
		APIKey:  config.GoogleMapsAPIKey,
		Timeout: config.GeocodeTimeout,
	}, logger)

	enrichmentService := service.NewEnrichmentService(client, service.NewPacer(config.PacingMode, config.RequestDelay), logger)

	geocodeHandler := handler.NewGeocodeHandler(client)
	enrichHandler := handler.NewEnrichHandler(enrichmentService)

	r := newRouter(geocodeHandler, enrichHandler)

	logger.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newRouter(geocodeHandler *handler.GeocodeHandler, enrichHandler *handler.EnrichHandler) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/geocode", geocodeHandler.Geocode)
	r.POST("/enrich", enrichHandler.Enrich)

	return r
}
