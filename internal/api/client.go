package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Doer round-trips a request. The session manager satisfies this; it
// attaches the bearer token and handles the 401 refresh-and-retry cycle.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the typed facade over the print-shop REST backend. It holds no
// business logic: each method builds a path, round-trips through the
// session transport, decodes the 2xx body and classifies failures.
type Client struct {
	baseURL string
	doer    Doer
	log     *zap.Logger
}

// New creates a facade for the API at baseURL (including the /api prefix).
func New(baseURL string, doer Doer, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		log:     log,
	}
}

// errorBody is the shape backend errors arrive in. Older endpoints use
// "error" instead of "message".
type errorBody struct {
	Message string `json:"message"`
	ErrMsg  string `json:"error"`
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, payload, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &Error{Op: op, Kind: KindProtocol, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &Error{Op: op, Kind: KindProtocol, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.doer.Do(req)
	if err != nil {
		c.log.Error("request failed", zap.String("op", op), zap.String("request_id", requestID), zap.Error(err))
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{
			Op:      op,
			Status:  resp.StatusCode,
			Kind:    classify(resp.StatusCode),
			Message: extractMessage(resp.Body),
		}
		c.log.Error("request rejected",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Kind: KindProtocol, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, payload, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, payload, out)
}

func (c *Client) put(ctx context.Context, op, path string, payload, out any) error {
	return c.do(ctx, op, http.MethodPut, path, nil, payload, out)
}

func (c *Client) delete(ctx context.Context, op, path string) error {
	return c.do(ctx, op, http.MethodDelete, path, nil, nil, nil)
}

func extractMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.ErrMsg
}
