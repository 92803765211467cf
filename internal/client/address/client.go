// Package address wraps the external address-autocomplete service. The
// service is best effort: when it is down or slow the caller falls back
// to fully manual address entry.
package address

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mandymoney/quote-craft/internal/logger"
	"github.com/mandymoney/quote-craft/internal/types"
)

const (
	requestTimeout = 5 * time.Second
	maxRetries     = 2
)

// Client calls the configured autocomplete endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates an address lookup client for the given endpoint.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.Log,
	}
}

// suggestion is the upstream response row.
type suggestion struct {
	StreetNumber string `json:"street_number"`
	StreetName   string `json:"street_name"`
	Suburb       string `json:"locality"`
	State        string `json:"state"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
}

// Lookup resolves a partial query into address suggestions, retrying
// transient failures with exponential backoff.
func (c *Client) Lookup(ctx context.Context, query string) ([]types.AddressComponents, error) {
	if c.baseURL == "" {
		return nil, errors.New("address lookup is not configured")
	}

	endpoint := c.baseURL + "?q=" + url.QueryEscape(query)

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return errors.Errorf("address service returned %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(errors.Errorf("address service returned %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Warn("Address lookup failed", zap.String("query", query), zap.Error(err))
		return nil, errors.Wrap(err, "address lookup failed")
	}

	var suggestions []suggestion
	if err := json.Unmarshal(body, &suggestions); err != nil {
		return nil, errors.Wrap(err, "failed to decode address suggestions")
	}

	results := make([]types.AddressComponents, 0, len(suggestions))
	for _, s := range suggestions {
		country := s.Country
		if country == "" {
			country = "Australia"
		}
		results = append(results, types.AddressComponents{
			StreetNumber: s.StreetNumber,
			StreetName:   s.StreetName,
			Suburb:       s.Suburb,
			State:        s.State,
			Postcode:     s.Postcode,
			Country:      country,
		})
	}
	return results, nil
}
