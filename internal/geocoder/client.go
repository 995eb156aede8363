// Package geocoder resolves free-text addresses through a Google-style forward geocoding API.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"survey-enrichment/internal/models"

	"github.com/rs/zerolog"
)

const statusOK = "OK"

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	// Timeout bounds a single request. Zero disables the timeout.
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client calls the provider's forward geocoding endpoint. It makes exactly one attempt per address.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new geocoding client
func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "geocoder").Logger(),
	}
}

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Results      []geocodeRecord `json:"results"`
}

type geocodeRecord struct {
	FormattedAddress  string                    `json:"formatted_address"`
	AddressComponents []models.AddressComponent `json:"address_components"`
	Geometry          struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// Lookup geocodes address and returns nil when no result could be obtained. Failures are logged,
// never returned.
func (c *Client) Lookup(ctx context.Context, address string) *models.GeocodeResult {
	result, err := c.Geocode(ctx, address)
	if err != nil {
		c.logger.Warn().Err(err).Str("address", address).Msg("geocoding failed")
		return nil
	}
	return result
}

// Geocode resolves address using the first provider result.
func (c *Client) Geocode(ctx context.Context, address string) (*models.GeocodeResult, error) {
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)
	reqURL := c.baseURL + "/geocode/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Message: "request failed", Cause: redactKey(err, c.apiKey)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: "invalid response body", Cause: err}
	}

	if payload.Status != statusOK {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Status: payload.Status, Message: payload.ErrorMessage}
	}
	if len(payload.Results) == 0 {
		return nil, ErrNoResults
	}

	first := payload.Results[0]
	parsed := ParseAddressComponents(first.AddressComponents)

	c.logger.Debug().Str("address", address).Str("formatted_address", first.FormattedAddress).Msg("geocoded address")

	return &models.GeocodeResult{
		Latitude:          first.Geometry.Location.Lat,
		Longitude:         first.Geometry.Location.Lng,
		FormattedAddress:  first.FormattedAddress,
		State:             parsed.State,
		Country:           parsed.Country,
		City:              parsed.City,
		Town:              parsed.Town,
		Timezone:          ResolveTimezone(parsed.Country),
		AddressComponents: first.AddressComponents,
	}, nil
}

// redactKey strips the API key from transport errors, which embed the request URL.
func redactKey(err error, key string) error {
	var uerr *url.Error
	if key != "" && errors.As(err, &uerr) {
		uerr.URL = strings.ReplaceAll(uerr.URL, url.QueryEscape(key), "REDACTED")
	}
	return err
}
