package routers

import (
	"ayuraksha-service/internal/app/delivery/http/controllers"
	"ayuraksha-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, mw *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.With(mw.SessionRequired).Get("/dashboard", patientController.Dashboard)
	router.With(mw.SessionRequired).Get("/records", patientController.ListRecords)
	router.With(mw.SessionRequired).Get("/records/{recordID}", patientController.GetRecord)
	router.With(mw.SessionRequired).Post("/records/sync", patientController.SyncRecords)
	router.With(mw.SessionRequired).Get("/timeline", patientController.Timeline)
	router.With(mw.SessionRequired).Get("/alerts", patientController.ListAlerts)
	router.With(mw.SessionRequired).Get("/doctors", patientController.ListDoctors)
	router.With(mw.SessionRequired).Get("/doctors/{doctorID}", patientController.GetDoctor)
}

func attachDoctorRoutes(router chi.Router, mw *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.With(mw.SessionRequired).Get("/dashboard", doctorController.Dashboard)
}

func attachUploaderRoutes(router chi.Router, mw *middlewares.Middlewares, uploaderController *controllers.UploaderController) {
	router.With(mw.SessionRequired).Post("/verify", uploaderController.VerifyPatient)
	router.With(mw.SessionRequired).Post("/upload", uploaderController.Upload)
	router.With(mw.SessionRequired).Get("/history", uploaderController.History)
}

func attachAssistantRoutes(router chi.Router, mw *middlewares.Middlewares, assistantController *controllers.AssistantController) {
	router.With(mw.SessionOptional).Post("/chat", assistantController.Chat)
}

func attachPreferenceRoutes(router chi.Router, mw *middlewares.Middlewares, assistantController *controllers.AssistantController) {
	router.Get("/", assistantController.GetPreferences)
	router.Put("/language", assistantController.SetLanguage)
}
