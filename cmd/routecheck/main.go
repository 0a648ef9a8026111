package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/config"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/database"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/health"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/logger"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/middleware"
	natspkg "github.com/phantomdigital/truckcheck-sub001/internal/pkg/nats"
	nrpkg "github.com/phantomdigital/truckcheck-sub001/internal/pkg/newrelic"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/server"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck/gateway"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck/handler"
	httpHandler "github.com/phantomdigital/truckcheck-sub001/services/routecheck/handler/http"
	wsHandler "github.com/phantomdigital/truckcheck-sub001/services/routecheck/handler/websocket"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck/repository"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "routecheck-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	routeRepo := repository.NewRouteCheckRepo(configs, postgresClient.GetDB(), redisClient)
	routeGW := gateway.NewRouteCheckGW(natsClient, configs.Geocoding, configs.Routing)
	routeUC := usecase.NewRouteCheckUC(configs, routeRepo, routeGW)

	sessionHandler := httpHandler.NewSessionHandler(routeUC)
	calcHandler := httpHandler.NewCalcHandler(routeUC)
	shareHandler := httpHandler.NewShareHandler(routeUC)
	historyHandler := httpHandler.NewHistoryHandler(routeUC)
	geocodeWS := wsHandler.NewGeocodeWSHandler(routeUC)

	h := handler.NewHandler(sessionHandler, calcHandler, shareHandler, historyHandler, geocodeWS, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
