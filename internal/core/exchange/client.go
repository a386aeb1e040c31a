// Package exchange looks up currency conversions from an exchangerate.host
// compatible endpoint.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"toolbox/internal/apperrors"
	"toolbox/internal/httpclient"
	"toolbox/internal/logger"
)

// DefaultEndpoint is the public conversion API.
const DefaultEndpoint = "https://api.exchangerate.host/convert"

const (
	msgUpstream = "Conversion failed! Possible reasons: API not found, no internet."
	msgNetwork  = "Failed to retrieve conversion rate."
)

var (
	DefaultCurrencies = []string{"USD", "EUR", "GBP", "JPY", "INR"}

	ErrInvalidAmount = apperrors.Validation("Invalid amount!")
)

// Request names one conversion.
type Request struct {
	From   string
	To     string
	Amount float64
}

// Result is a successful conversion.
type Result struct {
	Request
	Value float64
	// RequestID ties the result to its log lines.
	RequestID string
}

// Label renders the result the way the panel shows it.
func (result Result) Label() string {
	return fmt.Sprintf("Result: %.2f %s", result.Value, result.To)
}

type response struct {
	Success *bool    `json:"success"`
	Result  *float64 `json:"result"`
}

// Client is safe for concurrent use. Endpoint and timeout may be changed
// while requests are in flight; changes apply to the next request.
type Client struct {
	mu        sync.RWMutex
	endpoint  string
	http      *http.Client
	accessKey func() string
	log       *slog.Logger
}

// NewClient builds a client. accessKey may be nil; when it returns a
// non-empty key the key is sent as the access_key query parameter.
func NewClient(endpoint string, timeout time.Duration, accessKey func() string) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	if accessKey == nil {
		accessKey = func() string { return "" }
	}
	return &Client{
		endpoint:  endpoint,
		http:      httpclient.NewClient(timeout),
		accessKey: accessKey,
		log:       logger.With("exchange"),
	}
}

// SetEndpoint changes the conversion URL for later requests. An empty
// endpoint restores DefaultEndpoint.
func (client *Client) SetEndpoint(endpoint string) {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	client.mu.Lock()
	client.endpoint = endpoint
	client.mu.Unlock()
}

// SetTimeout replaces the HTTP client so later requests use timeout.
func (client *Client) SetTimeout(timeout time.Duration) {
	httpClient := httpclient.NewClient(timeout)
	client.mu.Lock()
	client.http = httpClient
	client.mu.Unlock()
}

// Endpoint returns the URL used for the next request.
func (client *Client) Endpoint() string {
	client.mu.RLock()
	defer client.mu.RUnlock()
	return client.endpoint
}

// Convert issues one GET and returns the converted amount. There is no
// retry and no caching.
func (client *Client) Convert(ctx context.Context, req Request) (Result, error) {
	requestID := uuid.NewString()
	log := client.log.With("request_id", requestID, "from", req.From, "to", req.To)

	client.mu.RLock()
	endpoint, httpClient := client.endpoint, client.http
	client.mu.RUnlock()

	target, err := buildURL(endpoint, req, client.accessKey())
	if err != nil {
		log.Error("invalid endpoint", "error", err)
		return Result{}, apperrors.Upstream(msgUpstream, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{}, apperrors.Upstream(msgUpstream, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	body, resp, err := httpclient.DoAndRead(httpClient, httpReq)
	if err != nil {
		if resp == nil {
			log.Warn("conversion request failed", "error", err)
			return Result{}, apperrors.Network(msgNetwork, err)
		}
		log.Warn("conversion response unreadable", "status", resp.StatusCode, "error", err)
		return Result{}, apperrors.Upstream(msgUpstream, err)
	}
	log.Debug("conversion response", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, apperrors.Upstream(msgUpstream, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var decoded response
	if err := json.Unmarshal(body, &decoded); err != nil {
		log.Warn("conversion response malformed", "error", err)
		return Result{}, apperrors.Upstream(msgUpstream, fmt.Errorf("decode response: %w", err))
	}
	if decoded.Success != nil && !*decoded.Success {
		log.Warn("conversion rejected by service")
		return Result{}, apperrors.Upstream(msgUpstream, fmt.Errorf("service reported success=false"))
	}
	if decoded.Result == nil {
		log.Warn("conversion response missing result")
		return Result{}, apperrors.Upstream(msgUpstream, fmt.Errorf("response has no result field"))
	}

	log.Info("conversion complete")
	return Result{Request: req, Value: *decoded.Result, RequestID: requestID}, nil
}

func buildURL(endpoint string, req Request, accessKey string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("endpoint scheme %q not supported", u.Scheme)
	}
	q := u.Query()
	q.Set("from", req.From)
	q.Set("to", req.To)
	q.Set("amount", strconv.FormatFloat(req.Amount, 'f', -1, 64))
	if accessKey != "" {
		q.Set("access_key", accessKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseAmount reads the amount entry.
func ParseAmount(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
