// Package subgraph implements a typed client for GraphQL subgraph endpoints.
//
// Notes:
//   - Requests are POSTed as {query, variables}; responses follow the {data, errors} envelope.
//   - Transport failures, non-2xx statuses and a non-empty errors array are ErrNetwork.
//   - Bodies that do not decode into the requested type, or that fail struct
//     validation (`validate` tags), are ErrSchema.
package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrNetwork = errors.New("subgraph network error")
	ErrSchema  = errors.New("subgraph schema error")
)

var DefaultHTTPClient = &http.Client{Timeout: 30 * time.Second}

var validate = newValidator()

// newValidator adds `decimal`: a string shopspring/decimal can parse, which covers
// the BigDecimal and BigInt scalars subgraphs emit.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(fl.Field().String())
		return err == nil
	})
	return v
}

func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("subgraph url is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid subgraph url: %w", err)
	}

	c := &Client{
		URL:       u,
		HTTP:      DefaultHTTPClient,
		UserAgent: "swapr-metrics/1.0",
		Logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Option functional options
type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTP = h } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithLogger(l zerolog.Logger) Option   { return func(c *Client) { c.Logger = l } }

type Client struct {
	URL       *url.URL
	HTTP      *http.Client
	UserAgent string
	Logger    zerolog.Logger
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// GraphQLError is one entry of the response errors array.
type GraphQLError struct {
	Message string `json:"message"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Query runs a GraphQL query and decodes `data` into T.
func Query[T any](ctx context.Context, c *Client, query string, variables map[string]any) (T, error) {
	var out T
	data, err := c.do(ctx, query, variables)
	if err != nil {
		return out, err
	}
	if len(data) == 0 || string(data) == "null" {
		return out, fmt.Errorf("%w: response has no data", ErrSchema)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: decode data: %v", ErrSchema, err)
	}
	if err := validate.Struct(out); err != nil {
		var invalid *validator.InvalidValidationError
		if !errors.As(err, &invalid) {
			return out, fmt.Errorf("%w: %v", ErrSchema, err)
		}
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	buf, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL.String(), bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http do: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}

	c.Logger.Info().
		Str("url", c.URL.String()).
		Int("status", resp.StatusCode).
		Str("duration", time.Since(start).String()).
		Int("bytes", len(b)).
		Msg("subgraph response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http error %d: %s", ErrNetwork, resp.StatusCode, truncateString(string(b), 512))
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%w: unmarshal envelope: %v", ErrSchema, err)
	}
	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("%w: %s", ErrNetwork, strings.Join(msgs, "; "))
	}
	return env.Data, nil
}

// --- Helpers ---
func truncateString(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
