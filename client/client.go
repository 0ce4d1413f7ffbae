// Package client is the typed HTTP client for the incident-reports API.
// Every method maps to exactly one REST call. Failures are logged and
// collapsed to an empty or zero value: callers see "no data yet" and
// "fetch failed" identically and the caller's state stays usable.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/apdreports/incident-reports/client/session"
)

// Client calls the incident-reports API
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Manager
}

// New returns a client rooted at baseURL. The session supplies the bearer
// token once logged in; a nil session sends unauthenticated requests.
func New(baseURL string, sess *session.Manager) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: sess,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// doJSON performs one JSON round trip. in is marshaled as the request body
// when non-nil; the response body is unmarshaled into out when out is
// non-nil. Non-2xx statuses are errors.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s returned %s", method, path, resp.Status)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeBody(body io.Reader, out interface{}) error {
	return json.NewDecoder(body).Decode(out)
}

// logError records a collapsed failure. The operation continues with an
// empty default; nothing propagates to the caller.
func logError(op string, err error) {
	zap.S().Errorw("api call failed", "op", op, "error", err)
}
