package main

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/delivery/http/controllers"
	"chaipoint-service/internal/app/delivery/http/middlewares"
	"chaipoint-service/internal/app/delivery/http/routers"
	"chaipoint-service/internal/app/drivers/database"
	"chaipoint-service/internal/app/drivers/logger"
	"chaipoint-service/internal/app/drivers/messaging"
	"chaipoint-service/internal/app/drivers/storage"
	"chaipoint-service/internal/app/services/core/auth"
	"chaipoint-service/internal/app/services/core/dashboard"
	"chaipoint-service/internal/app/services/core/menu"
	"chaipoint-service/internal/app/services/core/orders"
	"chaipoint-service/internal/app/services/core/schedule"
	"chaipoint-service/internal/app/services/core/users"
	"chaipoint-service/internal/app/services/shared/notifier"
	"chaipoint-service/internal/app/services/shared/redis"
	"chaipoint-service/internal/app/services/shared/session"
	minioStorage "chaipoint-service/internal/app/services/shared/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrusLogger.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrusLogger.Printf("Error closing connections: %v", err)
	}

	logrusLogger.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	orderNotifier, err := notifier.NewOrderNotifier(bootstrap.RabbitMQ, bootstrap.InternalConfig.Ordering.NotificationsQueue)
	if err != nil {
		log.Fatalf("Failed to initialize order notifier: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, redisRepository, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Menu
	menuMongoRepository := menu.NewMenuMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	menuUsecase := menu.NewMenuUsecase(menuMongoRepository, objectStorage, bootstrap.InternalConfig, bootstrap.DriverConfig, bootstrap.Logger)
	menuController := controllers.NewMenuController(bootstrap.Logger, menuUsecase)

	// Schedule
	scheduleUsecase := schedule.NewScheduleUsecase(bootstrap.InternalConfig, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Orders
	orderMongoRepository := orders.NewOrderMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	orderUsecase := orders.NewOrderUsecase(orderMongoRepository, menuMongoRepository, orderNotifier, bootstrap.InternalConfig, bootstrap.Logger)
	orderController := controllers.NewOrderController(bootstrap.Logger, orderUsecase)

	// Admin dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(orderMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		menuController,
		scheduleController,
		orderController,
		dashboardController,
	)
}
