package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	identityClientInstance contracts.IdentityClient
	onceIdentityClient     sync.Once
)

type identityClient struct {
	BaseUrl    string
	ApiKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewIdentityClient(baseUrl, apiKey string, timeoutInSeconds int, logger *zap.Logger) contracts.IdentityClient {
	onceIdentityClient.Do(func() {
		identityClientInstance = &identityClient{
			BaseUrl:    baseUrl,
			ApiKey:     apiKey,
			HTTPClient: &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
			Log:        logger,
		}
	})
	return identityClientInstance
}

// tokenEnvelope is the provider's token grant response. The user comes back
// inline on password and signup grants.
type tokenEnvelope struct {
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token"`
	User         *contracts.IdentityUser `json:"user"`
}

type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e *providerError) text() string {
	switch {
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	default:
		return e.Error
	}
}

func (c *identityClient) SignIn(ctx context.Context, email, password string) (*contracts.IdentityTokens, *contracts.IdentityUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identityClient.SignIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	envelope, err := c.tokenGrant(ctx, "password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		c.Log.Error("identityClient.SignIn provider rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	return &contracts.IdentityTokens{AccessToken: envelope.AccessToken, RefreshToken: envelope.RefreshToken}, envelope.User, nil
}

func (c *identityClient) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*contracts.IdentityTokens, *contracts.IdentityUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identityClient.SignUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		body["data"] = metadata
	}

	envelope := new(tokenEnvelope)
	if err := c.post(ctx, c.BaseUrl+"/signup", "", body, envelope); err != nil {
		c.Log.Error("identityClient.SignUp failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	return &contracts.IdentityTokens{AccessToken: envelope.AccessToken, RefreshToken: envelope.RefreshToken}, envelope.User, nil
}

func (c *identityClient) ExchangeCode(ctx context.Context, code string) (*contracts.IdentityTokens, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identityClient.ExchangeCode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	envelope, err := c.tokenGrant(ctx, "authorization_code", map[string]string{
		"auth_code": code,
	})
	if err != nil {
		c.Log.Error("identityClient.ExchangeCode failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrIdentityExchangeCode(err)
	}
	return &contracts.IdentityTokens{AccessToken: envelope.AccessToken, RefreshToken: envelope.RefreshToken}, nil
}

// SetSession adopts a credential pair handed over by another surface. An
// expired access token is refreshed when a refresh token is present,
// otherwise the pair is rejected.
func (c *identityClient) SetSession(ctx context.Context, tokens *contracts.IdentityTokens) (*contracts.IdentityTokens, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identityClient.SetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if tokens == nil || tokens.AccessToken == "" {
		return nil, exceptions.ErrIdentitySetSession(fmt.Errorf("no access token to adopt"))
	}

	if !utils.IdentityTokenExpired(tokens.AccessToken, time.Now()) {
		return tokens, nil
	}
	if tokens.RefreshToken == "" {
		return nil, exceptions.ErrHandoffTokenExpired(fmt.Errorf("access token expired and no refresh token supplied"))
	}

	envelope, err := c.tokenGrant(ctx, "refresh_token", map[string]string{
		"refresh_token": tokens.RefreshToken,
	})
	if err != nil {
		c.Log.Error("identityClient.SetSession refresh failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrIdentitySetSession(err)
	}
	return &contracts.IdentityTokens{AccessToken: envelope.AccessToken, RefreshToken: envelope.RefreshToken}, nil
}

func (c *identityClient) GetUser(ctx context.Context, accessToken string) (*contracts.IdentityUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identityClient.GetUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/user", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("identityClient.GetUser error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrIdentityGetUser(c.decodeError(resp))
	}

	user := new(contracts.IdentityUser)
	if err := json.NewDecoder(resp.Body).Decode(user); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "identity user")
	}
	return user, nil
}

func (c *identityClient) SignOut(ctx context.Context, accessToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identityClient.SignOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/logout", nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	// A failed provider logout must not keep the local session alive, so
	// non-2xx replies are only logged.
	if resp.StatusCode >= constvars.StatusBadRequest {
		c.Log.Warn("identityClient.SignOut provider replied with error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
	}
	return nil
}

func (c *identityClient) tokenGrant(ctx context.Context, grantType string, body map[string]string) (*tokenEnvelope, error) {
	envelope := new(tokenEnvelope)
	url := fmt.Sprintf("%s/token?grant_type=%s", c.BaseUrl, grantType)
	if err := c.post(ctx, url, "", body, envelope); err != nil {
		return nil, err
	}
	return envelope, nil
}

func (c *identityClient) post(ctx context.Context, url, accessToken string, body, out interface{}) error {
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return c.decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrDecodeResponse(err, "identity provider")
	}
	return nil
}

func (c *identityClient) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderApiKey, c.ApiKey)
	if accessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+accessToken)
	}
}

func (c *identityClient) decodeError(resp *http.Response) error {
	outcome := new(providerError)
	if err := json.NewDecoder(resp.Body).Decode(outcome); err != nil {
		return exceptions.ErrIdentityProvider(fmt.Errorf("provider replied %d", resp.StatusCode), "")
	}
	return exceptions.ErrIdentityProvider(fmt.Errorf("provider replied %d: %s", resp.StatusCode, outcome.text()), outcome.text())
}
