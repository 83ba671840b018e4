package contracts

import "context"

// Identity is the caller proven by the Basic-Auth gate for one request.
type Identity struct {
	Username string
	// Password is the verified cleartext password. It only lives for the
	// duration of the request.
	Password string
	// AuthorizationHeader is the inbound header value exactly as received.
	AuthorizationHeader string
}

// String omits the secret parts so an Identity is safe to log.
func (i *Identity) String() string {
	if i == nil {
		return "<anonymous>"
	}
	return i.Username
}

type CredentialStore interface {
	Contains(username, password string) bool
	Len() int
}

type AuthUsecase interface {
	AuthenticateBasic(ctx context.Context, authorizationHeader string) (*Identity, error)
}
