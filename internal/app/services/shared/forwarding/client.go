package forwarding

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/exceptions"
	"docplanner-gateway/internal/pkg/utils"
)

type client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	authorization string
}

func (c *client) Get(ctx context.Context, route string) (*http.Response, error) {
	req, err := c.newRequest(ctx, constvars.MethodGet, route, nil)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

func (c *client) PostJSON(ctx context.Context, route string, body []byte) (*http.Response, error) {
	req, err := c.newRequest(ctx, constvars.MethodPost, route, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	return c.httpClient.Do(req)
}

func (c *client) newRequest(ctx context.Context, method, route string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(route).String(), body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if c.authorization != "" {
		req.Header.Set(constvars.HeaderAuthorization, c.authorization)
	}
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	return req, nil
}
