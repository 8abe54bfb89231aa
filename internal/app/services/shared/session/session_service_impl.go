package session

import (
	"context"
	"fmt"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	JWTSecret       string
	ExpiryInHours   int
}

func NewSessionService(redisRepository contracts.RedisRepository, jwtSecret string, expiryInHours int) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		JWTSecret:       jwtSecret,
		ExpiryInHours:   expiryInHours,
	}
}

func (svc *sessionService) Create(ctx context.Context, portal string, user *models.User, backendToken, identityToken string) (string, error) {
	session := &models.Session{
		ID:            utils.GenerateSessionID(),
		Portal:        portal,
		User:          user,
		Token:         backendToken,
		IdentityToken: identityToken,
		CreatedAt:     time.Now().Unix(),
	}

	expiry := time.Duration(svc.ExpiryInHours) * time.Hour
	if err := svc.RedisRepository.Set(ctx, sessionKey(session.ID), session, expiry); err != nil {
		return "", err
	}

	cookieToken, err := utils.GenerateSessionJWT(session.ID, svc.JWTSecret, svc.ExpiryInHours)
	if err != nil {
		svc.RedisRepository.Delete(ctx, sessionKey(session.ID))
		return "", err
	}
	return cookieToken, nil
}

func (svc *sessionService) Resolve(ctx context.Context, cookieToken string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(cookieToken, svc.JWTSecret)
	if err != nil {
		return nil, err
	}

	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("session %s not found", sessionID))
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) Destroy(ctx context.Context, cookieToken string) error {
	sessionID, err := utils.ParseSessionJWT(cookieToken, svc.JWTSecret)
	if err != nil {
		// An expired cookie still counts as logged out.
		return nil
	}
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return constvars.SessionRedisPrefix + sessionID
}
