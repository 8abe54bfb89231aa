package backend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/exceptions"
)

// envelope matches both reply shapes the backend is known to produce: the
// wrapped {"success":true,"data":{...}} form and the flat form where the
// payload fields sit at the top level.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// unwrap returns the payload bytes of a backend reply. A wrapped reply
// yields its data field; anything else is treated as a flat payload. A
// top-level array cannot be an envelope and passes through untouched.
func unwrap(body []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, exceptions.ErrBackendMalformed(err)
	}
	if env.Success != nil && !*env.Success {
		message := env.Message
		if message == "" {
			message = env.Error
		}
		return nil, exceptions.ErrBackendMalformed(fmt.Errorf("backend reported failure: %s", message))
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		return env.Data, nil
	}
	return body, nil
}

type authPayload struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// normalizeAuth turns either reply shape into the canonical auth result. A
// reply without a user is malformed regardless of shape.
func normalizeAuth(body []byte) (*contracts.BackendAuthResult, error) {
	payload, err := unwrap(body)
	if err != nil {
		return nil, err
	}

	var auth authPayload
	if err := json.Unmarshal(payload, &auth); err != nil {
		return nil, exceptions.ErrBackendMalformed(err)
	}
	if auth.User == nil {
		return nil, exceptions.ErrBackendMalformed(fmt.Errorf("auth reply carries no user"))
	}
	return &contracts.BackendAuthResult{User: auth.User, Token: auth.Token}, nil
}

// decodePayload unwraps a backend reply and decodes the payload into out.
func decodePayload(body []byte, out interface{}) error {
	payload, err := unwrap(body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return exceptions.ErrBackendMalformed(err)
	}
	return nil
}
