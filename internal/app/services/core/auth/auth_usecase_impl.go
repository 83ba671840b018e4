package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"unicode/utf8"

	"docplanner-gateway/internal/app/contracts"
	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/exceptions"
	"docplanner-gateway/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	CredentialStore contracts.CredentialStore
	Log             *zap.Logger
}

func NewAuthUsecase(credentialStore contracts.CredentialStore, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		CredentialStore: credentialStore,
		Log:             logger,
	}
}

// AuthenticateBasic verifies an "Authorization: Basic <payload>" value.
// The password never reaches the logger.
func (uc *authUsecase) AuthenticateBasic(ctx context.Context, authorizationHeader string) (*contracts.Identity, error) {
	requestID := utils.GetRequestID(ctx)

	username, password, err := parseBasicAuthorization(authorizationHeader)
	if err != nil {
		uc.Log.Debug("authUsecase.AuthenticateBasic rejected header",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !uc.CredentialStore.Contains(username, password) {
		uc.Log.Debug("authUsecase.AuthenticateBasic unknown credential pair",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, username),
		)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	return &contracts.Identity{
		Username:            username,
		Password:            password,
		AuthorizationHeader: authorizationHeader,
	}, nil
}

func parseBasicAuthorization(header string) (string, string, error) {
	if strings.TrimSpace(header) == "" {
		return "", "", exceptions.ErrMalformedHeader(nil, constvars.ErrDevAuthHeaderMissing)
	}

	scheme, payload, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constvars.AuthSchemeBasic) {
		return "", "", exceptions.ErrMalformedHeader(nil, constvars.ErrDevAuthHeaderInvalidScheme)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return "", "", exceptions.ErrMalformedHeader(err, constvars.ErrDevAuthHeaderInvalidPayload)
	}
	if !utf8.Valid(decoded) {
		return "", "", exceptions.ErrMalformedHeader(errors.New("payload is not valid UTF-8"), constvars.ErrDevAuthHeaderInvalidPayload)
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", exceptions.ErrMalformedHeader(errors.New("payload has no colon separator"), constvars.ErrDevAuthHeaderInvalidPayload)
	}

	return username, password, nil
}
