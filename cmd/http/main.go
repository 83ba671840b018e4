package main

import (
	"context"
	"docplanner-gateway/internal/app/config"
	"docplanner-gateway/internal/app/delivery/http/controllers"
	"docplanner-gateway/internal/app/delivery/http/middlewares"
	"docplanner-gateway/internal/app/delivery/http/routers"
	"docplanner-gateway/internal/app/drivers/logger"
	"docplanner-gateway/internal/app/services/core/auth"
	"docplanner-gateway/internal/app/services/core/slots"
	"docplanner-gateway/internal/app/services/shared/forwarding"
	"docplanner-gateway/internal/app/services/shared/resilience"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	internalConfig, driverConfig, err := config.Load(config.NewViper())
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	chiRouter := chi.NewRouter()
	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("port", internalConfig.App.Port),
			zap.String("upstream", internalConfig.SlotServiceApi.BaseUrl),
			zap.String("auth_mode", internalConfig.SlotServiceApi.AuthMode),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig

	// Auth
	credentialStore := auth.NewCredentialStore(internalConfig.UserCredentials)
	authUsecase := auth.NewAuthUsecase(credentialStore, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, internalConfig)

	// Resilience
	breaker := resilience.NewBreaker(
		internalConfig.Resilience.BreakerFailureThreshold,
		internalConfig.Resilience.BreakerCooldown(),
		nil,
	)
	policy := resilience.NewPolicy(
		internalConfig.Resilience.RetryDelays(),
		breaker,
		resilience.NewLimiter(internalConfig.SlotServiceApi.MaxRequestsPerSecond),
		bootstrap.Logger,
	)

	// Slot service
	clientFactory, err := forwarding.NewClientFactory(internalConfig.SlotServiceApi, nil)
	if err != nil {
		return err
	}
	slotUsecase := slots.NewSlotUsecase(clientFactory, policy, bootstrap.Logger)
	slotController := controllers.NewSlotController(slotUsecase, bootstrap.Logger)

	// Health
	healthController := controllers.NewHealthController(policy)

	routers.SetupRoutes(bootstrap.Router, internalConfig, bootstrap.Logger, middlewares, slotController, healthController)
	return nil
}
