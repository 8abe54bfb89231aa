package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/delivery/http/middlewares"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.Dashboard(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardSuccess, response)
}
