package contracts

import (
	"context"
	"net/http"
)

// UpstreamClient talks to the slot service on behalf of one caller.
// Returned responses are owned by the caller, who must close the body.
type UpstreamClient interface {
	Get(ctx context.Context, route string) (*http.Response, error)
	PostJSON(ctx context.Context, route string, body []byte) (*http.Response, error)
}

type UpstreamClientFactory interface {
	NewClient(identity *Identity) UpstreamClient
}

type UpstreamCall func(ctx context.Context) (*http.Response, error)

type ResiliencePolicy interface {
	Execute(ctx context.Context, route string, call UpstreamCall) (*http.Response, error)
	BreakerState() string
}
