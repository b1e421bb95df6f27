package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/farmchain/backend/internal/pkg/config"
	"github.com/farmchain/backend/internal/pkg/database"
	"github.com/farmchain/backend/internal/pkg/health"
	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/middleware"
	"github.com/farmchain/backend/internal/pkg/models"
	nsqpkg "github.com/farmchain/backend/internal/pkg/nsq"
	"github.com/farmchain/backend/internal/pkg/server"
	"github.com/farmchain/backend/internal/utils"

	adminHandler "github.com/farmchain/backend/services/admin/handler"
	adminHTTP "github.com/farmchain/backend/services/admin/handler/http"
	adminRepo "github.com/farmchain/backend/services/admin/repository"
	adminUsecase "github.com/farmchain/backend/services/admin/usecase"
	announcementHandler "github.com/farmchain/backend/services/announcements/handler"
	announcementHTTP "github.com/farmchain/backend/services/announcements/handler/http"
	announcementRepo "github.com/farmchain/backend/services/announcements/repository"
	announcementUsecase "github.com/farmchain/backend/services/announcements/usecase"
	"github.com/farmchain/backend/services/auth"
	authGateway "github.com/farmchain/backend/services/auth/gateway"
	authHandler "github.com/farmchain/backend/services/auth/handler"
	authHTTP "github.com/farmchain/backend/services/auth/handler/http"
	authRepo "github.com/farmchain/backend/services/auth/repository"
	authUsecase "github.com/farmchain/backend/services/auth/usecase"
	landHandler "github.com/farmchain/backend/services/lands/handler"
	landHTTP "github.com/farmchain/backend/services/lands/handler/http"
	landRepo "github.com/farmchain/backend/services/lands/repository"
	landUsecase "github.com/farmchain/backend/services/lands/usecase"
	messageHandler "github.com/farmchain/backend/services/messages/handler"
	messageHTTP "github.com/farmchain/backend/services/messages/handler/http"
	messageRepo "github.com/farmchain/backend/services/messages/repository"
	messageUsecase "github.com/farmchain/backend/services/messages/usecase"
	productHandler "github.com/farmchain/backend/services/products/handler"
	productHTTP "github.com/farmchain/backend/services/products/handler/http"
	productRepo "github.com/farmchain/backend/services/products/repository"
	productUsecase "github.com/farmchain/backend/services/products/usecase"
	schemeHandler "github.com/farmchain/backend/services/schemes/handler"
	schemeHTTP "github.com/farmchain/backend/services/schemes/handler/http"
	schemeRepo "github.com/farmchain/backend/services/schemes/repository"
	schemeUsecase "github.com/farmchain/backend/services/schemes/usecase"
	placementHandler "github.com/farmchain/backend/services/sponsored/handler"
	placementHTTP "github.com/farmchain/backend/services/sponsored/handler/http"
	placementRepo "github.com/farmchain/backend/services/sponsored/repository"
	placementUsecase "github.com/farmchain/backend/services/sponsored/usecase"
	userHandler "github.com/farmchain/backend/services/users/handler"
	userHTTP "github.com/farmchain/backend/services/users/handler/http"
	userRepo "github.com/farmchain/backend/services/users/repository"
	userUsecase "github.com/farmchain/backend/services/users/usecase"
)

func main() {
	appName := "farmchain-api"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	if configs.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	shutdownMgr := server.NewShutdownManager(zapLogger)

	// Mongo holds the role-partitioned identities and all marketplace data
	mongoClient, err := database.NewMongoClient(configs.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", logger.Err(err))
	}
	shutdownMgr.Register(mongoClient.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Mongo.Timeout)*time.Second)
	if err := mongoClient.EnsureIndexes(ctx); err != nil {
		logger.Fatal("Failed to ensure indexes", logger.Err(err))
	}
	cancel()

	// OTP state lives in Redis when configured so replicas share it,
	// otherwise it stays in-process
	var otpCache auth.OTPCache
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdownMgr.Register(func(context.Context) error { return redisClient.Close() })
		otpCache = authRepo.NewRedisOTPCache(redisClient, configs.OTP)
	} else {
		logger.Warn("Redis not configured, OTP state is in-process only")
		otpCache = authRepo.NewMemoryOTPCache(configs.OTP)
	}

	// Domain events are best-effort; without NSQ they are dropped
	var eventsGW auth.EventsGW
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to create NSQ producer", logger.Err(err))
		}
		shutdownMgr.Register(func(context.Context) error {
			producer.Stop()
			return nil
		})
		eventsGW = authGateway.NewNSQEventsGW(producer)
	} else {
		eventsGW = authGateway.NewNoopEventsGW()
	}

	var smsGW auth.SMSGW
	if configs.SMS.ProviderURL != "" {
		smsGW = authGateway.NewHTTPSMSGW(configs.SMS)
	} else {
		logger.Warn("SMS provider not configured, codes are logged instead")
		smsGW = authGateway.NewDevSMSGW()
	}

	// Repositories
	usersRepo := userRepo.NewUserRepo(mongoClient)
	productsRepo := productRepo.NewProductRepo(mongoClient)
	landsRepo := landRepo.NewLandRepo(mongoClient)
	announcementsRepo := announcementRepo.NewAnnouncementRepo(mongoClient)
	messagesRepo := messageRepo.NewMessageRepo(mongoClient)
	placementsRepo := placementRepo.NewPlacementRepo(mongoClient)
	schemesRepo := schemeRepo.NewSchemeRepo(mongoClient)
	dashboardRepo := adminRepo.NewDashboardRepo(mongoClient)

	// Usecases
	authUC := authUsecase.NewAuthUC(otpCache, usersRepo, smsGW, eventsGW, configs)
	userUC := userUsecase.NewUserUC(usersRepo)
	productUC := productUsecase.NewProductUC(productsRepo, eventsGW)
	landUC := landUsecase.NewLandUC(landsRepo, eventsGW)
	announcementUC := announcementUsecase.NewAnnouncementUC(announcementsRepo, eventsGW)
	messageUC := messageUsecase.NewMessageUC(messagesRepo, usersRepo)
	placementUC := placementUsecase.NewPlacementUC(placementsRepo)
	schemeUC := schemeUsecase.NewSchemeUC(schemesRepo)
	adminUC := adminUsecase.NewAdminUC(dashboardRepo)

	// Router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator()
	e.Use(echomw.Recover())
	e.Use(logger.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("mongodb", health.NewMongoHealthChecker(mongoClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Role guards re-resolve the user from its partition on every request
	authGuard := middleware.AuthMiddleware(usersRepo, configs.JWT)
	farmerGuard := middleware.AuthMiddleware(usersRepo, configs.JWT, models.RoleFarmer)
	supplierGuard := middleware.AuthMiddleware(usersRepo, configs.JWT, models.RoleSupplier)
	adminGuard := middleware.AuthMiddleware(usersRepo, configs.JWT, models.RoleAdmin)

	g := e.Group("/api/v1")
	authHandler.NewHandler(authHTTP.NewAuthHandler(authUC)).RegisterRoutes(g)
	userHandler.NewHandler(userHTTP.NewUserHandler(userUC)).RegisterRoutes(g, authGuard)
	productHandler.NewHandler(productHTTP.NewProductHandler(productUC)).RegisterRoutes(g, supplierGuard, adminGuard)
	landHandler.NewHandler(landHTTP.NewLandHandler(landUC)).RegisterRoutes(g, farmerGuard, adminGuard)
	announcementHandler.NewHandler(announcementHTTP.NewAnnouncementHandler(announcementUC)).RegisterRoutes(g, authGuard, adminGuard)
	messageHandler.NewHandler(messageHTTP.NewMessageHandler(messageUC)).RegisterRoutes(g, authGuard)
	placementHandler.NewHandler(placementHTTP.NewPlacementHandler(placementUC)).RegisterRoutes(g, supplierGuard)
	schemeHandler.NewHandler(schemeHTTP.NewSchemeHandler(schemeUC)).RegisterRoutes(g, adminGuard)
	adminHandler.NewHandler(adminHTTP.NewDashboardHandler(adminUC)).RegisterRoutes(g, adminGuard)

	// Start blocks until SIGINT/SIGTERM and drains in-flight requests
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := shutdownMgr.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down dependencies cleanly", logger.Err(err))
	}
}
