package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/app/services/shared/metrics"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	backendClientInstance contracts.BackendClient
	onceBackendClient     sync.Once
)

type backendClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
	Metrics    *metrics.Metrics
}

func NewBackendClient(baseUrl string, timeoutInSeconds int, logger *zap.Logger, m *metrics.Metrics) contracts.BackendClient {
	onceBackendClient.Do(func() {
		backendClientInstance = &backendClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
			Log:        logger,
			Metrics:    m,
		}
	})
	return backendClientInstance
}

func (c *backendClient) Login(ctx context.Context, email, password, portal string) (*contracts.BackendAuthResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("backendClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPortalKey, portal),
	)

	body, err := c.do(ctx, "login", constvars.MethodPost, "/auth/login", "", nil, map[string]interface{}{
		"email":    email,
		"password": password,
		"portal":   portal,
	})
	if err != nil {
		return nil, err
	}
	return normalizeAuth(body)
}

func (c *backendClient) Signup(ctx context.Context, payload map[string]interface{}) (*contracts.BackendAuthResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("backendClient.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.do(ctx, "signup", constvars.MethodPost, "/auth/signup", "", nil, payload)
	if err != nil {
		return nil, err
	}
	return normalizeAuth(body)
}

// SyncSession trades the identity provider's credential pair for a backend
// user and token. The access token rides as bearer and again in a dedicated
// header so the backend can verify it against the provider; the provider's
// profile hints let the backend provision a first-time account.
func (c *backendClient) SyncSession(ctx context.Context, tokens *contracts.IdentityTokens, portal string, profile *contracts.IdentityUser) (*contracts.BackendAuthResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("backendClient.SyncSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPortalKey, portal),
	)

	payload := map[string]interface{}{
		"portal":        portal,
		"refresh_token": tokens.RefreshToken,
	}
	if profile != nil {
		payload["email"] = profile.Email
		if name := profile.DisplayName(); name != "" {
			payload["name"] = name
		}
	}

	headers := map[string]string{constvars.HeaderIdentityToken: tokens.AccessToken}
	body, err := c.do(ctx, "sync_session", constvars.MethodPost, "/auth/sync", tokens.AccessToken, headers, payload)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.Kind == exceptions.KindNetwork {
			return nil, exceptions.ErrBackendSync(err)
		}
		return nil, err
	}
	return normalizeAuth(body)
}

func (c *backendClient) GetMe(ctx context.Context, token string) (*models.User, error) {
	body, err := c.do(ctx, "get_me", constvars.MethodGet, "/auth/me", token, nil, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		User *models.User `json:"user"`
	}
	if err := decodePayload(body, &payload); err != nil {
		return nil, err
	}
	if payload.User == nil {
		return nil, exceptions.ErrBackendMalformed(fmt.Errorf("me reply carries no user"))
	}
	return payload.User, nil
}

func (c *backendClient) GetDashboard(ctx context.Context, token, patientCode string) (*contracts.DashboardSummary, error) {
	body, err := c.do(ctx, "get_dashboard", constvars.MethodGet, "/patients/"+patientCode+"/dashboard", token, nil, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Dashboard *contracts.DashboardSummary `json:"dashboard"`
	}
	if err := decodePayload(body, &payload); err != nil {
		return nil, err
	}
	if payload.Dashboard == nil {
		flat := new(contracts.DashboardSummary)
		if err := decodePayload(body, flat); err != nil {
			return nil, err
		}
		return flat, nil
	}
	return payload.Dashboard, nil
}

func (c *backendClient) FindPatientByCode(ctx context.Context, token, patientCode string) (*contracts.PatientSummary, error) {
	body, err := c.do(ctx, "find_patient", constvars.MethodGet, "/patients/"+patientCode, token, nil, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Patient *contracts.PatientSummary `json:"patient"`
	}
	if err := decodePayload(body, &payload); err != nil {
		return nil, err
	}
	if payload.Patient == nil {
		// Some backend versions reply with the summary at the top level.
		flat := new(contracts.PatientSummary)
		if err := decodePayload(body, flat); err == nil && flat.Name != "" {
			return flat, nil
		}
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("no patient for code %s", patientCode))
	}
	return payload.Patient, nil
}

func (c *backendClient) ListRecords(ctx context.Context, token, patientCode string) ([]models.MedicalRecord, error) {
	body, err := c.do(ctx, "list_records", constvars.MethodGet, "/records?patientCode="+patientCode, token, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecords(body)
}

func (c *backendClient) SyncRecords(ctx context.Context, token, patientCode string) ([]models.MedicalRecord, error) {
	body, err := c.do(ctx, "sync_records", constvars.MethodPost, "/records/sync", token, nil, map[string]interface{}{
		"patientCode": patientCode,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecords(body)
}

func (c *backendClient) ListAlerts(ctx context.Context, token, patientCode string) ([]models.Alert, error) {
	body, err := c.do(ctx, "list_alerts", constvars.MethodGet, "/alerts?patientCode="+patientCode, token, nil, nil)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Alerts []models.Alert `json:"alerts"`
	}{}
	if err := decodePayload(body, &payload); err != nil {
		return nil, err
	}
	return payload.Alerts, nil
}

func (c *backendClient) ListDoctors(ctx context.Context, token string) ([]models.DoctorProfile, error) {
	body, err := c.do(ctx, "list_doctors", constvars.MethodGet, "/doctors", token, nil, nil)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Doctors []models.DoctorProfile `json:"doctors"`
	}{}
	if err := decodePayload(body, &payload); err != nil {
		return nil, err
	}
	return payload.Doctors, nil
}

func (c *backendClient) UploadDocument(ctx context.Context, token string, input *contracts.UploadDocumentInput) (*models.UploadReceipt, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("backendClient.UploadDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("document_type", input.DocumentType),
	)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("patientCode", input.PatientCode); err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if err := writer.WriteField("documentType", input.DocumentType); err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	part, err := writer.CreateFormFile("file", input.Filename)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if _, err := io.Copy(part, input.File); err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if err := writer.Close(); err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/uploads", &buf)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

	body, err := c.send(req, "upload_document")
	if err != nil {
		return nil, err
	}

	payload := struct {
		Receipt *models.UploadReceipt `json:"receipt"`
	}{}
	if err := decodePayload(body, &payload); err != nil {
		return nil, err
	}
	if payload.Receipt == nil {
		return nil, exceptions.ErrBackendMalformed(fmt.Errorf("upload reply carries no receipt"))
	}
	return payload.Receipt, nil
}

func (c *backendClient) ListUploads(ctx context.Context, token string) ([]models.UploadReceipt, error) {
	body, err := c.do(ctx, "list_uploads", constvars.MethodGet, "/uploads", token, nil, nil)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Uploads []models.UploadReceipt `json:"uploads"`
	}{}
	if err := decodePayload(body, &payload); err != nil {
		return nil, err
	}
	return payload.Uploads, nil
}

func (c *backendClient) do(ctx context.Context, operation, method, path, token string, headers map[string]string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return c.send(req, operation)
}

func (c *backendClient) send(req *http.Request, operation string) ([]byte, error) {
	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	c.Metrics.ObserveBackendLatency(operation, time.Since(start))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "backend")
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		var env envelope
		message := ""
		if jsonErr := json.Unmarshal(body, &env); jsonErr == nil {
			message = env.Message
			if message == "" {
				message = env.Error
			}
		}
		return nil, exceptions.ErrBackendMessage(resp.StatusCode, message)
	}
	return body, nil
}

// decodeRecords accepts both the wrapped {"records":[...]} payload and a
// bare array.
func decodeRecords(body []byte) ([]models.MedicalRecord, error) {
	payload, err := unwrap(body)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []models.MedicalRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, exceptions.ErrBackendMalformed(err)
		}
		return records, nil
	}

	wrapped := struct {
		Records []models.MedicalRecord `json:"records"`
	}{}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, exceptions.ErrBackendMalformed(err)
	}
	return wrapped.Records, nil
}
