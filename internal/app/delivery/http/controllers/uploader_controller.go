package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/delivery/http/middlewares"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UploaderController struct {
	Log             *zap.Logger
	UploaderUsecase contracts.UploaderUsecase
	MaxUploadSizeMB int
}

func NewUploaderController(logger *zap.Logger, uploaderUsecase contracts.UploaderUsecase, maxUploadSizeMB int) *UploaderController {
	return &UploaderController{
		Log:             logger,
		UploaderUsecase: uploaderUsecase,
		MaxUploadSizeMB: maxUploadSizeMB,
	}
}

func (ctrl *UploaderController) VerifyPatient(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	request := new(requests.VerifyPatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeVerifyPatientRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UploaderUsecase.VerifyPatient(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientVerifySuccess, response)
}

func (ctrl *UploaderController) Upload(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	// Parse slightly above the document limit so an oversized file fails
	// the size check instead of the form parse.
	maxMemory := int64(ctrl.MaxUploadSizeMB+2) * 1024 * 1024
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	request := &requests.UploadDocument{
		PatientCode:  r.FormValue("patient_code"),
		DocumentType: r.FormValue("document_type"),
		File:         file,
		FileHeader:   fileHeader,
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.UploaderUsecase.Upload(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadSuccess, response)
}

func (ctrl *UploaderController) History(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UploaderUsecase.History(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HistorySuccess, response)
}
