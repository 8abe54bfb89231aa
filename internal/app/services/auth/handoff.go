package auth

import (
	"context"
	"fmt"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/dto/responses"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// CompleteHandoff adopts an identity-provider redirect and turns it into an
// application session. The pipeline is linear and fails terminally: there
// are no retries, and the state store's user is only committed once every
// step has succeeded. An explicit portal is remembered even when a later
// step fails, so the retry lands on the same portal.
func (uc *authUsecase) CompleteHandoff(ctx context.Context, request *requests.Handoff) (*responses.Handoff, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.CompleteHandoff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPortalKey, request.Portal),
		zap.String(constvars.LoggingDeviceIDKey, request.DeviceID),
	)

	portal, err := uc.resolvePortal(ctx, request)
	if err != nil {
		return nil, err
	}
	failure := &responses.Handoff{Portal: portal, RetryRoute: constvars.LoginRoutes[portal]}

	release, err := uc.lockHandoff(ctx, request.DeviceID)
	if err != nil {
		uc.Metrics.IncrementHandoff(portal, "duplicate")
		return failure, err
	}
	defer release()

	tokens, err := uc.acquireTokens(ctx, request)
	if err != nil {
		uc.Metrics.IncrementHandoff(portal, "missing_credential")
		return failure, err
	}

	tokens, err = uc.IdentityClient.SetSession(ctx, tokens)
	if err != nil {
		uc.Metrics.IncrementHandoff(portal, "set_session_failed")
		return failure, err
	}

	profile, err := uc.IdentityClient.GetUser(ctx, tokens.AccessToken)
	if err != nil {
		uc.Metrics.IncrementHandoff(portal, "get_user_failed")
		return failure, err
	}

	result, err := uc.BackendClient.SyncSession(ctx, tokens, portal, profile)
	if err != nil {
		uc.Metrics.IncrementHandoff(portal, "sync_failed")
		return failure, err
	}

	cookieToken, err := uc.SessionService.Create(ctx, portal, result.User, result.Token, tokens.AccessToken)
	if err != nil {
		uc.Metrics.IncrementHandoff(portal, "session_failed")
		return failure, err
	}

	if _, err := uc.AppStateService.SetUser(ctx, request.DeviceID, result.User); err != nil {
		uc.Metrics.IncrementHandoff(portal, "state_failed")
		return failure, err
	}

	uc.Metrics.IncrementHandoff(portal, "success")
	uc.Log.Info("authUsecase.CompleteHandoff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPortalKey, portal),
	)
	return &responses.Handoff{
		User:          result.User,
		Token:         cookieToken,
		Portal:        portal,
		RedirectRoute: constvars.DashboardRoutes[portal],
	}, nil
}

// resolvePortal picks the target portal: the explicit request value wins,
// then the device's stored lastPortal, then the patient portal. An explicit
// portal is persisted right away so a failed attempt still retries against
// the same portal.
func (uc *authUsecase) resolvePortal(ctx context.Context, request *requests.Handoff) (string, error) {
	state, err := uc.AppStateService.Load(ctx, request.DeviceID)
	if err != nil {
		return "", err
	}

	portal := request.Portal
	if !utils.IsKnownPortal(portal) {
		portal = ""
	}
	if portal == "" && utils.IsKnownPortal(state.LastPortal) {
		portal = state.LastPortal
	}
	if portal == "" {
		portal = constvars.PortalPatient
	}

	if utils.IsKnownPortal(request.Portal) {
		if _, err := uc.AppStateService.SetLastPortal(ctx, request.DeviceID, request.Portal); err != nil {
			return "", err
		}
	}
	return portal, nil
}

const handoffLockTTL = 30 * time.Second

// lockHandoff serializes hand-offs per device: two tabs replaying the same
// redirect must not interleave their session and state commits. The lock
// expires on its own should a release ever be lost.
func (uc *authUsecase) lockHandoff(ctx context.Context, deviceID string) (func(), error) {
	if uc.Locks == nil || deviceID == "" {
		return func() {}, nil
	}

	key := constvars.HandoffLockRedisPrefix + deviceID
	acquired, err := uc.Locks.TrySetNX(ctx, key, "1", handoffLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrHandoffInProgress(fmt.Errorf("hand-off already running for device %s", deviceID))
	}
	return func() {
		if err := uc.Locks.Delete(ctx, key); err != nil {
			uc.Log.Warn("authUsecase.CompleteHandoff lock release failed", zap.Error(err))
		}
	}, nil
}

// acquireTokens prefers tokens carried on the redirect itself and only
// falls back to exchanging an authorization code. The provider session
// needs the full pair, so an access token without its refresh token is as
// terminal as no credential at all.
func (uc *authUsecase) acquireTokens(ctx context.Context, request *requests.Handoff) (*contracts.IdentityTokens, error) {
	access, refresh := request.AccessToken, request.RefreshToken
	if access == "" && request.Code != "" {
		tokens, err := uc.IdentityClient.ExchangeCode(ctx, request.Code)
		if err != nil {
			return nil, err
		}
		access, refresh = tokens.AccessToken, tokens.RefreshToken
	}
	if access == "" || refresh == "" {
		return nil, exceptions.ErrHandoffMissingCredential(fmt.Errorf("redirect carried an incomplete credential set"))
	}
	return &contracts.IdentityTokens{AccessToken: access, RefreshToken: refresh}, nil
}
