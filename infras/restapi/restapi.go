package restapi

//go:generate go run go.uber.org/mock/mockgen -source=./restapi.go -destination=./mocks/restapi_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"rimbest/config"
	"rimbest/infras/otel"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout      = 15 * time.Second
	maxErrorBodyBytes   = 64 << 10
	messageRejected     = "The request was rejected by the server."
	messageNotFound     = "The requested resource was not found."
	authorizationPrefix = "Bearer "
	otelAttributeMethod = "http.method"
	otelAttributePath   = "http.path"
	otelAttributeStatus = "http.status_code"
)

// Request describes one call to the remote API. Path is relative to the
// configured base URL.
type Request struct {
	Method string
	Path   string
	Token  string
	Query  url.Values
	Body   any
}

// Client calls the remote RimBest API and translates its failures into
// failure kinds. A nil out discards the response body.
type Client interface {
	Do(ctx context.Context, req Request, out any) error
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type clientImpl struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	timeout := time.Duration(cfg.Remote.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	log.Info().Str("baseURL", cfg.Remote.BaseURL).Dur("timeout", timeout).Msg("Remote API client initialized")

	return &clientImpl{
		baseURL: strings.TrimRight(cfg.Remote.BaseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
		otel:    otel,
	}
}

func (c *clientImpl) Do(ctx context.Context, req Request, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Do")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttributeMethod: req.Method,
		otelAttributePath:   req.Path,
	})

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to build remote request")

		return fmt.Errorf("failed to build remote request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Warn().Err(err).Str("method", req.Method).Str("path", req.Path).Msg("remote API unreachable")

		return failure.Connectivity()
	}
	defer resp.Body.Close()

	scope.SetAttribute(otelAttributeStatus, resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return mapStatus(req, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		if ctx.Err() != nil {
			return failure.Connectivity()
		}

		log.Error().Err(err).Str("path", req.Path).Msg("failed to decode remote response")

		return failure.Unknown()
	}

	return nil
}

func (c *clientImpl) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	httpReq.Header.Set("Accept", constant.ContentTypeJSON)

	if body != nil {
		httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if req.Token != "" {
		httpReq.Header.Set(constant.RequestHeaderAuthorization, authorizationPrefix+req.Token)
	}

	return httpReq, nil
}

// mapStatus turns a remote error response into a failure. 400 carries the
// server reason verbatim.
func mapStatus(req Request, resp *http.Response) error {
	var body errorBody

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	_ = json.Unmarshal(raw, &body)

	reason := body.Message
	if reason == "" {
		reason = body.Error
	}

	log.Warn().
		Int("status", resp.StatusCode).
		Str("method", req.Method).
		Str("path", req.Path).
		Str("reason", reason).
		Msg("remote API returned an error")

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return failure.Unauthorized(failure.MessageAuth)
	case http.StatusBadRequest:
		if reason == "" {
			reason = messageRejected
		}

		return failure.BusinessRule(reason)
	case http.StatusNotFound:
		if reason == "" {
			reason = messageNotFound
		}

		return failure.NotFound(reason)
	case http.StatusGatewayTimeout:
		return failure.Connectivity()
	default:
		return failure.Unknown()
	}
}
