package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ayuraksha-service/internal/app/config"
	"ayuraksha-service/internal/app/delivery/http/controllers"
	"ayuraksha-service/internal/app/delivery/http/middlewares"
	"ayuraksha-service/internal/app/delivery/http/routers"
	"ayuraksha-service/internal/app/drivers/database"
	"ayuraksha-service/internal/app/drivers/logger"
	"ayuraksha-service/internal/app/services/assistant"
	"ayuraksha-service/internal/app/services/auth"
	"ayuraksha-service/internal/app/services/backend"
	"ayuraksha-service/internal/app/services/doctors"
	"ayuraksha-service/internal/app/services/identity"
	"ayuraksha-service/internal/app/services/patients"
	"ayuraksha-service/internal/app/services/shared/appstate"
	"ayuraksha-service/internal/app/services/shared/metrics"
	redisrepo "ayuraksha-service/internal/app/services/shared/redis"
	"ayuraksha-service/internal/app/services/shared/session"
	"ayuraksha-service/internal/app/services/uploader"
	"ayuraksha-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

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

	log.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)

	// Metrics
	m := metrics.New()

	// Client state store
	clientStateStore := appstate.NewRedisClientStateStore(redisRepository, constvars.CookieMaxAgeDays)
	appStateService := appstate.NewAppStateService(clientStateStore)

	// Sessions
	sessionService := session.NewSessionService(
		redisRepository,
		bootstrap.InternalConfig.JWT.Secret,
		bootstrap.InternalConfig.App.SessionExpiredTimeInHours,
	)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Identity provider
	identityClient := identity.NewIdentityClient(
		bootstrap.InternalConfig.Identity.BaseUrl,
		bootstrap.InternalConfig.Identity.ApiKey,
		bootstrap.InternalConfig.Identity.RequestTimeoutInSeconds,
		bootstrap.Logger,
	)

	// Record backend
	backendClient := backend.NewBackendClient(
		bootstrap.InternalConfig.Backend.BaseUrl,
		bootstrap.InternalConfig.Backend.RequestTimeoutInSeconds,
		bootstrap.Logger,
		m,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(identityClient, backendClient, sessionService, appStateService, redisRepository, bootstrap.Logger, m)
	authController := controllers.NewAuthController(
		bootstrap.Logger,
		authUsecase,
		bootstrap.InternalConfig.App.SessionExpiredTimeInHours,
		bootstrap.InternalConfig.App.Env == "production",
	)

	// Patient portal
	patientUsecase := patients.NewPatientUsecase(backendClient, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(backendClient, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, doctorUsecase)

	// Doctor portal
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Uploader portal
	uploaderUsecase := uploader.NewUploaderUsecase(backendClient, bootstrap.Logger, m, bootstrap.InternalConfig.App.UploadMaxSizeInMB)
	uploaderController := controllers.NewUploaderController(bootstrap.Logger, uploaderUsecase, bootstrap.InternalConfig.App.UploadMaxSizeInMB)

	// Assistant
	assistantUsecase := assistant.NewAssistantUsecase(appStateService, bootstrap.Logger, bootstrap.InternalConfig.App.AssistantReplyDelayInMs)
	assistantController := controllers.NewAssistantController(bootstrap.Logger, assistantUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		patientController,
		doctorController,
		uploaderController,
		assistantController,
	)
}
