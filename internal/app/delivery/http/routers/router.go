package routers

import (
	"strings"

	"docplanner-gateway/internal/app/config"
	"docplanner-gateway/internal/app/delivery/http/controllers"
	"docplanner-gateway/internal/app/delivery/http/middlewares"
	"docplanner-gateway/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	slotController *controllers.SlotController,
	healthController *controllers.HealthController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderWWWAuthenticate},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())
	router.Use(middlewares.ErrorHandler)

	attachHealthRoutes(router, healthController)

	endpointPrefix := "/" + strings.Trim(internalConfig.App.EndpointPrefix, "/")
	if endpointPrefix == "/" {
		attachSlotRoutes(router, middlewares, slotController)
		return
	}

	router.Route(endpointPrefix, func(r chi.Router) {
		attachSlotRoutes(r, middlewares, slotController)
	})
}
