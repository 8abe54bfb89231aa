package controllers

import (
	"context"
	"net/http"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AssistantController struct {
	Log              *zap.Logger
	AssistantUsecase contracts.AssistantUsecase
}

func NewAssistantController(logger *zap.Logger, assistantUsecase contracts.AssistantUsecase) *AssistantController {
	return &AssistantController{
		Log:              logger,
		AssistantUsecase: assistantUsecase,
	}
}

func (ctrl *AssistantController) Chat(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChatMessage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeChatMessageRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.AssistantUsecase.Chat(ctx, deviceIDFrom(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatSuccess, response)
}

func (ctrl *AssistantController) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.AssistantUsecase.GetPreferences(ctx, deviceIDFrom(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, response)
}

func (ctrl *AssistantController) SetLanguage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetLanguage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.AssistantUsecase.SetLanguage(ctx, deviceIDFrom(r), request.Language)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PreferenceSuccess, response)
}
