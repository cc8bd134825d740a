package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CamiMaidana/FamilyMed/internal/session"
)

// APIError 服务端返回的非 2xx 响应
// Message is what screens render: the server's "message" field when the error
// body parses, otherwise "<status> <statusText>".
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client FamilyMed 服务 API 客户端
// Single choke point for every remote call: credential attachment, JSON
// encoding/decoding and uniform error translation all happen here. No retry,
// no backoff: a failed call surfaces once and the caller decides.
type Client struct {
	httpClient *resty.Client
	sessions   session.Store
	logger     *zap.Logger
}

// NewClient 创建 FamilyMed API 客户端
func NewClient(baseURL string, timeout time.Duration, sessions session.Store, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	c := &Client{
		httpClient: httpClient,
		sessions:   sessions,
		logger:     logger,
	}

	httpClient.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if token, ok := c.sessions.Get(); ok {
			r.SetHeader("Authorization", "Bearer "+token)
		}
		r.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return c
}

// do 执行请求并统一处理响应
// - body == nil: no request body at all
// - 2xx + empty body (204): success, out is left untouched
// - 2xx + body: JSON decode into out (when out != nil)
// - non-2xx: *APIError with the server message or "<status> <statusText>"
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	req := c.httpClient.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
		req.SetHeader("Content-Type", "application/json")
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("familymed api: %s %s: %w", method, path, err)
	}

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode()),
		zap.String("request_id", resp.Request.Header.Get("X-Request-Id")),
	)

	if !resp.IsSuccess() {
		msg := resp.Status()
		var errBody struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(resp.Body(), &errBody); jsonErr == nil && errBody.Message != "" {
			msg = errBody.Message
		}
		c.logger.Warn("API returned error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("message", msg),
		)
		return &APIError{Status: resp.StatusCode(), Message: msg}
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("familymed api: %s %s: decode response: %w", method, path, err)
	}
	return nil
}
