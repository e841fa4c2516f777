package promo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// ErrUnknownCode indicates the promotions backend rejected the code. Any
// other error from a Resolver is a transport failure and must be surfaced to
// the caller as a lookup outage, not a rejection.
var ErrUnknownCode = errors.New("unknown promo code")

// Quote describes a resolved promo code.
type Quote struct {
	Code       string
	PercentOff float64
}

// Resolver exposes promo code lookups.
type Resolver interface {
	Resolve(ctx context.Context, code string) (*Quote, error)
}

// HTTPClient implements Resolver against a promotions service.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON payload from the promotions service.
type response struct {
	Code       string  `json:"code"`
	PercentOff float64 `json:"percent_off"`
}

// NewHTTPClient creates an HTTP promo resolver with the given lookup timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse promo service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("promo service url must be absolute")
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Resolve queries the promotions service for a code.
func (c *HTTPClient) Resolve(ctx context.Context, code string) (*Quote, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/promos/", url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, err
		}
		return &Quote{Code: data.Code, PercentOff: data.PercentOff}, nil
	case http.StatusNotFound, http.StatusNoContent:
		return nil, ErrUnknownCode
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("promo request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("promo service error: %s", resp.Status)
	}
}

// StaticResolver serves a fixed promo table without any network hop. It is
// the default when no promotions service is configured.
type StaticResolver struct {
	codes map[string]float64
}

// NewStaticResolver builds the built-in promo table.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{codes: map[string]float64{
		"DISCOUNT20": 0.20,
	}}
}

// Resolve matches codes case-insensitively against the static table.
func (r *StaticResolver) Resolve(_ context.Context, code string) (*Quote, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if rate, ok := r.codes[normalized]; ok {
		return &Quote{Code: normalized, PercentOff: rate}, nil
	}
	return nil, ErrUnknownCode
}
