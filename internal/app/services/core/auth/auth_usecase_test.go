package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"docplanner-gateway/internal/app/config"
	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func basicHeader(pair string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(pair))
}

func newTestUsecase(logger *zap.Logger) *authUsecase {
	store := NewCredentialStore([]config.AppCredential{{Username: "testuser", Password: "testpassword"}})
	return NewAuthUsecase(store, logger).(*authUsecase)
}

func TestAuthenticateBasic_Success(t *testing.T) {
	uc := newTestUsecase(zap.NewNop())
	header := basicHeader("testuser:testpassword")

	identity, err := uc.AuthenticateBasic(context.Background(), header)
	require.NoError(t, err)

	assert.Equal(t, "testuser", identity.Username)
	assert.Equal(t, "testpassword", identity.Password)
	assert.Equal(t, header, identity.AuthorizationHeader)
	assert.Equal(t, "testuser", identity.String())
}

func TestAuthenticateBasic_SchemeIsCaseInsensitive(t *testing.T) {
	uc := newTestUsecase(zap.NewNop())

	_, err := uc.AuthenticateBasic(context.Background(), "basic "+base64.StdEncoding.EncodeToString([]byte("testuser:testpassword")))
	assert.NoError(t, err)
}

func TestAuthenticateBasic_PasswordMayContainColon(t *testing.T) {
	store := NewCredentialStore([]config.AppCredential{{Username: "svc", Password: "a:b:c"}})
	uc := NewAuthUsecase(store, zap.NewNop())

	identity, err := uc.AuthenticateBasic(context.Background(), basicHeader("svc:a:b:c"))
	require.NoError(t, err)
	assert.Equal(t, "a:b:c", identity.Password)
}

func TestAuthenticateBasic_Malformed(t *testing.T) {
	uc := newTestUsecase(zap.NewNop())

	headers := map[string]string{
		"Empty header":    "",
		"Only scheme":     "Basic",
		"Bearer scheme":   "Bearer " + base64.StdEncoding.EncodeToString([]byte("testuser:testpassword")),
		"Not base64":      "Basic !!!not-base64!!!",
		"No colon":        basicHeader("testusertestpassword"),
		"Invalid UTF-8":   "Basic " + base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, ':', 'x'}),
		"Raw credentials": "Basic testuser:testpassword",
	}

	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			identity, err := uc.AuthenticateBasic(context.Background(), header)
			assert.Nil(t, identity)
			require.Error(t, err)
			assert.True(t, errors.Is(err, exceptions.ErrKindMalformedHeader))

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		})
	}
}

func TestAuthenticateBasic_InvalidCredentials(t *testing.T) {
	uc := newTestUsecase(zap.NewNop())

	for _, pair := range []string{"testuser:wrong", "TestUser:testpassword", ":", "testuser:"} {
		identity, err := uc.AuthenticateBasic(context.Background(), basicHeader(pair))
		assert.Nil(t, identity)
		assert.True(t, errors.Is(err, exceptions.ErrKindInvalidCredentials), pair)
	}
}

func TestAuthenticateBasic_NeverLogsPassword(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	uc := newTestUsecase(zap.New(core))

	_, err := uc.AuthenticateBasic(context.Background(), basicHeader("testuser:supersecret"))
	require.Error(t, err)

	require.NotEmpty(t, logs.All())
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, "supersecret")
		for _, value := range entry.ContextMap() {
			assert.NotContains(t, value, "supersecret")
		}
	}
}
