package assistant

import (
	"context"
	"strings"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/dto/responses"
	"ayuraksha-service/internal/pkg/i18n"

	"go.uber.org/zap"
)

const senderAssistant = "ai"

type assistantUsecase struct {
	AppStateService contracts.AppStateService
	Log             *zap.Logger
	ReplyDelayInMs  int
}

func NewAssistantUsecase(appStateService contracts.AppStateService, logger *zap.Logger, replyDelayInMs int) contracts.AssistantUsecase {
	return &assistantUsecase{
		AppStateService: appStateService,
		Log:             logger,
		ReplyDelayInMs:  replyDelayInMs,
	}
}

// Chat routes the message to a canned reply by keyword. The assistant has
// no model behind it; the delay hint tells the client how long to show the
// typing indicator.
func (uc *assistantUsecase) Chat(ctx context.Context, deviceID string, request *requests.ChatMessage) (*responses.ChatReply, error) {
	language := request.Language
	if !i18n.IsSupported(language) {
		state, err := uc.AppStateService.Load(ctx, deviceID)
		if err != nil {
			return nil, err
		}
		language = state.SelectedLanguage
	}

	reply := i18n.Resolve(replyKey(request.Message), language, "")
	return &responses.ChatReply{
		Reply:     reply,
		Sender:    senderAssistant,
		DelayInMs: uc.ReplyDelayInMs,
	}, nil
}

func (uc *assistantUsecase) GetPreferences(ctx context.Context, deviceID string) (*responses.Preferences, error) {
	state, err := uc.AppStateService.Load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	return &responses.Preferences{
		SelectedLanguage: state.SelectedLanguage,
		Languages:        i18n.Languages(),
	}, nil
}

func (uc *assistantUsecase) SetLanguage(ctx context.Context, deviceID, language string) (*responses.Preferences, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assistantUsecase.SetLanguage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("language", language),
	)

	state, err := uc.AppStateService.SetLanguage(ctx, deviceID, language)
	if err != nil {
		return nil, err
	}
	return &responses.Preferences{
		SelectedLanguage: state.SelectedLanguage,
		Languages:        i18n.Languages(),
	}, nil
}

func replyKey(message string) string {
	lowered := strings.ToLower(message)
	switch {
	case containsAny(lowered, "hello", "hi ", "namaste"), lowered == "hi":
		return "aiWelcome"
	case containsAny(lowered, "record", "report"):
		return "aiRecordsReply"
	case containsAny(lowered, "alert", "warning"):
		return "aiAlertsReply"
	case containsAny(lowered, "upload", "document", "file"):
		return "aiUploadReply"
	default:
		return "aiDefaultReply"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
