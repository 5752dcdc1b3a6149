package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tvmai/merchant-admin/internal/apperr"
	"github.com/tvmai/merchant-admin/internal/config"
)

var tracer = otel.Tracer("internal/gateway")

// Client issues GraphQL operations against the Shopify Admin API.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	accessToken string
	cfg         config.Shopify
}

// NewClient creates a gateway client for the configured shop.
func NewClient(cfg config.Shopify) *Client {
	return &Client{
		// Per-call deadlines come from the request context; the transport
		// timeout is a backstop for calls issued without one.
		httpClient:  &http.Client{Timeout: cfg.CallTimeout},
		endpoint:    fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.ShopDomain, cfg.APIVersion),
		accessToken: cfg.AccessToken,
		cfg:         cfg,
	}
}

// NewClientForEndpoint creates a client that talks to an explicit endpoint
// URL. Used by tests to point the client at a local double.
func NewClientForEndpoint(cfg config.Shopify, endpoint string) *Client {
	c := NewClient(cfg)
	c.endpoint = endpoint
	return c
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// do executes one GraphQL operation and decodes the data object into out.
// Every failure mode short of a well-formed data payload (network error,
// non-2xx status, malformed body, top-level GraphQL errors) is reported as
// apperr.GatewayUnavailableErr with the cause attached; a call that ran
// past its deadline is classified as apperr.GatewayTimeoutErr instead.
func (c *Client) do(ctx context.Context, opName, query string, variables map[string]any, out any) error {
	ctx, span := tracer.Start(ctx, "gateway."+opName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("graphql.operation", opName)),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	err := c.roundTrip(ctx, query, variables, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "gateway call failed")
		wrapped := fmt.Errorf("%s: %w", opName, err)
		if errors.Is(err, context.DeadlineExceeded) {
			return apperr.GatewayTimeoutErr.WrapParent(wrapped)
		}
		return apperr.GatewayUnavailableErr.WrapParent(wrapped)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (c *Client) roundTrip(ctx context.Context, query string, variables map[string]any, out any) error {
	reqBody, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read gateway response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway non-2xx (%d): %s", resp.StatusCode, body)
	}

	var envelope graphQLEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode graphql envelope: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}

	return nil
}
