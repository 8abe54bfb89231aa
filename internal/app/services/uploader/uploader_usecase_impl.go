package uploader

import (
	"context"
	"fmt"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/app/services/shared/metrics"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/dto/responses"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/mockdata"
	"ayuraksha-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var allowedUploadTypes = map[string]bool{
	constvars.MIMEImageJPEG:      true,
	constvars.MIMEImageJPG:       true,
	constvars.MIMEImagePNG:       true,
	constvars.MIMEApplicationPDF: true,
}

type uploaderUsecase struct {
	BackendClient   contracts.BackendClient
	Log             *zap.Logger
	Metrics         *metrics.Metrics
	MaxUploadSizeMB int
}

func NewUploaderUsecase(backendClient contracts.BackendClient, logger *zap.Logger, m *metrics.Metrics, maxUploadSizeMB int) contracts.UploaderUsecase {
	return &uploaderUsecase{
		BackendClient:   backendClient,
		Log:             logger,
		Metrics:         m,
		MaxUploadSizeMB: maxUploadSizeMB,
	}
}

func (uc *uploaderUsecase) VerifyPatient(ctx context.Context, session *models.Session, request *requests.VerifyPatient) (*responses.VerifyPatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("uploaderUsecase.VerifyPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !utils.IsValidPatientCode(request.PatientCode) {
		return nil, exceptions.ErrInvalidPatientCode(fmt.Errorf("patient code must be %d-%d digits", constvars.PatientCodeMinDigits, constvars.PatientCodeMaxDigits))
	}

	summary, err := uc.BackendClient.FindPatientByCode(ctx, session.Token, request.PatientCode)
	if err != nil {
		return nil, err
	}

	age := summary.Age
	if age == 0 && summary.DateOfBirth != "" {
		age = utils.CalculateAge(summary.DateOfBirth)
	}
	sex := summary.Gender
	if sex == "" {
		sex = "Unknown"
	}
	return &responses.VerifyPatient{Name: summary.Name, Age: age, Sex: sex}, nil
}

func (uc *uploaderUsecase) Upload(ctx context.Context, session *models.Session, request *requests.UploadDocument) (*responses.Upload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("uploaderUsecase.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("document_type", request.DocumentType),
	)

	if !utils.IsValidPatientCode(request.PatientCode) {
		return nil, exceptions.ErrInvalidPatientCode(fmt.Errorf("patient code must be %d-%d digits", constvars.PatientCodeMinDigits, constvars.PatientCodeMaxDigits))
	}

	contentType := request.FileHeader.Header.Get(constvars.HeaderContentType)
	if !allowedUploadTypes[contentType] {
		return nil, exceptions.ErrUploadInvalidFileType(fmt.Errorf("content type %q is not accepted", contentType))
	}
	maxSize := int64(uc.MaxUploadSizeMB) * 1024 * 1024
	if request.FileHeader.Size > maxSize {
		return nil, exceptions.ErrUploadFileTooLarge(fmt.Errorf("file is %d bytes, limit is %d", request.FileHeader.Size, maxSize))
	}

	receipt, err := uc.BackendClient.UploadDocument(ctx, session.Token, &contracts.UploadDocumentInput{
		PatientCode:  request.PatientCode,
		DocumentType: request.DocumentType,
		Filename:     request.FileHeader.Filename,
		ContentType:  contentType,
		Size:         request.FileHeader.Size,
		File:         request.File,
	})
	if err != nil {
		return nil, err
	}

	uc.Metrics.IncrementUpload(request.DocumentType)
	uc.Log.Info("uploaderUsecase.Upload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("receipt_id", receipt.ID),
	)
	return &responses.Upload{Receipt: receipt}, nil
}

func (uc *uploaderUsecase) History(ctx context.Context, session *models.Session) (*responses.UploadHistory, error) {
	uploads, err := uc.BackendClient.ListUploads(ctx, session.Token)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindNetwork) {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Warn("uploaderUsecase.History falling back to sample history",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			uploads = mockdata.Uploads()
		} else {
			return nil, err
		}
	}
	return &responses.UploadHistory{Uploads: uploads, Total: len(uploads)}, nil
}
