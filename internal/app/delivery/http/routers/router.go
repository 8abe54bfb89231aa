package routers

import (
	"fmt"
	"net/http"
	"time"

	"ayuraksha-service/internal/app/config"
	"ayuraksha-service/internal/app/delivery/http/controllers"
	"ayuraksha-service/internal/app/delivery/http/middlewares"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	doctorController *controllers.DoctorController,
	uploaderController *controllers.UploaderController,
	assistantController *controllers.AssistantController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.ErrorHandler)
	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.DeviceIDMiddleware)
	router.Use(mw.Logging(mw.Log))

	authRateLimiter := middlewares.NewRateLimiter(
		internalConfig.App.AuthRateLimitPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.AuthRateLimitBlockMinutes)*time.Minute,
		mw.Log,
	)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, map[string]string{
			"version": internalConfig.App.Version,
		})
	})
	router.Handle("/metrics", promhttp.Handler())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, mw, authRateLimiter, authController)
			})

			r.Route("/patient", func(r chi.Router) {
				attachPatientRoutes(r, mw, patientController)
			})

			r.Route("/doctor", func(r chi.Router) {
				attachDoctorRoutes(r, mw, doctorController)
			})

			r.Route("/uploader", func(r chi.Router) {
				attachUploaderRoutes(r, mw, uploaderController)
			})

			r.Route("/assistant", func(r chi.Router) {
				attachAssistantRoutes(r, mw, assistantController)
			})

			r.Route("/preferences", func(r chi.Router) {
				attachPreferenceRoutes(r, mw, assistantController)
			})
		})
	})
}
