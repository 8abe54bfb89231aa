package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/delivery/http/middlewares"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	DoctorUsecase  contracts.DoctorUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, doctorUsecase contracts.DoctorUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		DoctorUsecase:  doctorUsecase,
	}
}

func (ctrl *PatientController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.Dashboard(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardSuccess, response)
}

func (ctrl *PatientController) ListRecords(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	query := r.URL.Query()
	request := &requests.ListRecords{
		Type:   query.Get("type"),
		Status: query.Get("status"),
		Sort:   query.Get("sort"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.ListRecords(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordsSuccess, response)
}

func (ctrl *PatientController) GetRecord(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}
	recordID := chi.URLParam(r, "recordID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetRecord(ctx, session, recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordsSuccess, response)
}

func (ctrl *PatientController) Timeline(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.Timeline(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TimelineSuccess, response)
}

func (ctrl *PatientController) ListAlerts(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}
	language := r.URL.Query().Get("language")
	if language == "" {
		language = constvars.DefaultLanguage
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.ListAlerts(ctx, session, language)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AlertsSuccess, response)
}

func (ctrl *PatientController) SyncRecords(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.SyncRecords(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordsSyncSuccess, response)
}

func (ctrl *PatientController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	ctrl.withSession(w, r, func(ctx context.Context, session *models.Session) {
		response, err := ctrl.DoctorUsecase.ListDoctors(ctx, session)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsSuccess, response)
	})
}

func (ctrl *PatientController) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")
	ctrl.withSession(w, r, func(ctx context.Context, session *models.Session) {
		response, err := ctrl.DoctorUsecase.GetDoctor(ctx, session, doctorID)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsSuccess, response)
	})
}

func (ctrl *PatientController) withSession(w http.ResponseWriter, r *http.Request, handle func(context.Context, *models.Session)) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	handle(ctx, session)
}
