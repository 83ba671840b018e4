package forwarding

import (
	"fmt"
	"net/http"
	"net/url"

	"docplanner-gateway/internal/app/config"
	"docplanner-gateway/internal/app/contracts"
	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/utils"
)

// ClientFactory hands out one UpstreamClient per inbound request. The
// connection pool is shared; the Authorization value is derived from the
// identity passed in and never kept between calls.
type ClientFactory struct {
	baseURL             *url.URL
	httpClient          *http.Client
	authMode            string
	staticAuthorization string
}

func NewClientFactory(cfg config.AppSlotServiceApi, httpClient *http.Client) (*ClientFactory, error) {
	baseURL, err := url.Parse(cfg.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse slot service base url: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("slot service base url %q must be absolute", cfg.BaseUrl)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}

	factory := &ClientFactory{
		baseURL:    baseURL,
		httpClient: httpClient,
		authMode:   cfg.AuthMode,
	}
	if cfg.AuthMode == constvars.UpstreamAuthModeStatic {
		factory.staticAuthorization = constvars.AuthSchemeBasic + " " + utils.EncodeBasicCredentials(cfg.Username, cfg.Password)
	}
	return factory, nil
}

func (f *ClientFactory) NewClient(identity *contracts.Identity) contracts.UpstreamClient {
	return &client{
		baseURL:       f.baseURL,
		httpClient:    f.httpClient,
		authorization: f.authorizationFor(identity),
	}
}

func (f *ClientFactory) authorizationFor(identity *contracts.Identity) string {
	if f.authMode == constvars.UpstreamAuthModeStatic {
		return f.staticAuthorization
	}
	if identity == nil {
		return ""
	}
	if identity.AuthorizationHeader != "" {
		return identity.AuthorizationHeader
	}
	if identity.Username != "" {
		return constvars.AuthSchemeBasic + " " + utils.EncodeBasicCredentials(identity.Username, identity.Password)
	}
	return ""
}
