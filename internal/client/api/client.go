// Package api is the transport layer: it builds authenticated HTTP requests
// against the fixed API root, parses JSON, and normalizes every failure into
// a single *Error. It owns no entity knowledge; the services layer supplies
// paths and payload types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"playcenter-console/internal/logging"
)

// TokenSource yields the current bearer credential, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Client is the transport surface the services layer consumes.
type Client interface {
	// Call sends a JSON request and decodes the JSON response into out
	// (out may be nil). body is serialized as JSON when non-nil.
	Call(ctx context.Context, method, path string, body, out any) error

	// Upload sends one file as a multipart form (no JSON content type) and
	// decodes the JSON response into out.
	Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error

	// Download streams a successful response body to w.
	Download(ctx context.Context, path string, w io.Writer) error
}

// HTTPClient is the production Client. It sets no timeout beyond the
// platform default, performs no retries, and never cancels a request once
// sent (beyond ctx).
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	log     logging.Logger
}

func New(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{},
		log:     log,
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

func (c *HTTPClient) Call(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errorOf(0, fmt.Sprintf("encode request: %v", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return errorOf(0, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *HTTPClient) Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return errorOf(0, err.Error())
	}
	if _, err := io.Copy(part, r); err != nil {
		return errorOf(0, err.Error())
	}
	if err := mw.Close(); err != nil {
		return errorOf(0, err.Error())
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return errorOf(0, err.Error())
	}
	// Multipart boundary header, deliberately not application/json.
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req, out)
}

func (c *HTTPClient) Download(ctx context.Context, path string, w io.Writer) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return errorOf(0, err.Error())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errorOf(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readError(resp)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return errorOf(0, err.Error())
	}
	return nil
}

// do executes the request and applies the uniform success/failure
// classification: any transport error or non-2xx status becomes an *Error.
func (c *HTTPClient) do(req *http.Request, out any) error {
	c.log.Debug(req.Context(), "api call",
		"method", req.Method, "path", req.URL.Path, "request_id", req.Header.Get("X-Request-Id"))

	resp, err := c.http.Do(req)
	if err != nil {
		return errorOf(0, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorOf(resp.StatusCode, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorOf(resp.StatusCode, serverMessage(data))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errorOf(resp.StatusCode, fmt.Sprintf("decode response: %v", err))
	}
	return nil
}

func readError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)
	return errorOf(resp.StatusCode, serverMessage(data))
}

// serverMessage extracts the error text the server embeds in failure bodies.
func serverMessage(data []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Error
}
