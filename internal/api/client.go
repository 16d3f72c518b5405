// Package api wraps the remote booking backend. Every call attaches the
// stored bearer token, unwraps the {data,status,message} envelope and
// normalizes failures to *Error. A 401 clears the token and fires the
// unauthorized hook so the UI can drop to its login screen.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"busline/internal/pkg/token"
)

type TokenStore interface {
	Token() (string, error)
	ClearToken() error
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore

	// OnUnauthorized runs after a 401 cleared the stored token.
	OnUnauthorized func()

	loggerf func(format string, args ...interface{})
	now     func() time.Time
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenStore, loggerf func(format string, args ...interface{})) *Client {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		loggerf: loggerf,
		now:     time.Now,
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return payloadError("encode request: " + err.Error())
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return networkError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.attachToken(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.loggerf("level=error msg=request failed method=%s path=%s err=%v", method, path, err)
		return networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Code: CodeAPI, Message: extractMessage(raw)}
	}

	if out == nil {
		return nil
	}
	return decodePayload(raw, out)
}

func (c *Client) attachToken(req *http.Request) {
	if c.tokens == nil {
		return
	}
	tok, err := c.tokens.Token()
	if err != nil || tok == "" {
		return
	}
	if token.Expired(tok, c.now()) {
		c.loggerf("level=info msg=stored token expired, dropping")
		_ = c.tokens.ClearToken()
		return
	}
	req.Header.Set("Authorization", "Bearer "+tok)
}

func (c *Client) handleUnauthorized(method, path string) error {
	c.loggerf("level=warn msg=unauthorized response method=%s path=%s", method, path)
	if c.tokens != nil {
		_ = c.tokens.ClearToken()
	}
	if c.OnUnauthorized != nil {
		c.OnUnauthorized()
	}
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: "Session expired, please log in again"}
}

// decodePayload unwraps the {data,status,message} envelope when the payload
// sits under "data" and otherwise treats the whole body as the payload,
// which is what the backend sends for most endpoints.
func decodePayload(raw []byte, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err == nil {
			return nil
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return payloadError("decode response: " + err.Error())
	}
	return nil
}

func extractMessage(raw []byte) string {
	var withMessage struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &withMessage); err == nil {
		if withMessage.Message != "" {
			return withMessage.Message
		}
		if withMessage.Error.Message != "" {
			return withMessage.Error.Message
		}
	}
	return "An error occurred"
}
