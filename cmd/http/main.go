package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"salonflow-service/internal/app/config"
	"salonflow-service/internal/app/delivery/http/controllers"
	"salonflow-service/internal/app/delivery/http/middlewares"
	"salonflow-service/internal/app/delivery/http/routers"
	"salonflow-service/internal/app/drivers/database"
	"salonflow-service/internal/app/drivers/logger"
	"salonflow-service/internal/app/drivers/messaging"
	"salonflow-service/internal/app/services/core/audit"
	"salonflow-service/internal/app/services/core/schedule"
	"salonflow-service/internal/app/services/core/session"
	"salonflow-service/internal/app/services/salonapi"
	"salonflow-service/internal/app/services/shared/redis"
	"salonflow-service/internal/app/services/shared/schedulequeue"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapTheApp(bootstrap); err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

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

	logrus.Println("Waiting for pending requests already received by the server to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) error {
	storeTimeout := time.Second * time.Duration(bootstrap.InternalConfig.SalonAPI.TimeoutInSeconds)
	baseUrl := bootstrap.InternalConfig.SalonAPI.BaseUrl

	// Salon API store clients
	workRuleClient := salonapi.NewWorkRuleClient(baseUrl, storeTimeout)
	exceptionClient := salonapi.NewExceptionClient(baseUrl, storeTimeout)
	blockClient := salonapi.NewBlockClient(baseUrl, storeTimeout)

	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	auditRepository := audit.NewScheduleAuditMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	schedulePublisher, err := schedulequeue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.ScheduleUpdatedQueue,
	)
	if err != nil {
		return err
	}

	// Schedule
	scheduleUsecase := schedule.NewScheduleUsecase(
		workRuleClient,
		exceptionClient,
		blockClient,
		redisRepository,
		auditRepository,
		schedulePublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Middlewares + routes
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)
	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, scheduleController)

	return nil
}
