// Package geocoding implements geo.Geocoder against the French national
// address API (BAN, api-adresse.data.gouv.fr).
package geocoding

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

const (
	defaultBaseURL = "https://api-adresse.data.gouv.fr"
	maxLimit       = 20
	maxBodyBytes   = 1 << 20
)

// Client calls the address API over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	logger  logger.Interface
}

// NewClient creates a geocoding client from configuration.
func NewClient(cfg config.GeocodingConfig, log logger.Interface) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// Search geocodes a free-text address.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]geo.Address, error) {
	if limit <= 0 || limit > maxLimit {
		limit = 5
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "/search/", params)
}

// Reverse returns the addresses closest to a point.
func (c *Client) Reverse(ctx context.Context, longitude, latitude float64) ([]geo.Address, error) {
	params := url.Values{}
	params.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	return c.get(ctx, "/reverse/", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]geo.Address, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocoding request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warnw("geocoding request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", geo.ErrGeocoderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", geo.ErrGeocoderUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warnw("geocoding API returned non-200",
			"path", path,
			"status", resp.StatusCode,
			"body", truncate(string(body), 200),
		)
		return nil, fmt.Errorf("%w: status %d", geo.ErrGeocoderUnavailable, resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON response", geo.ErrGeocoderUnavailable)
	}

	return parseFeatures(body), nil
}

// parseFeatures maps a GeoJSON FeatureCollection onto addresses. The department
// code is the first element of the comma separated "context" property.
func parseFeatures(body []byte) []geo.Address {
	features := gjson.GetBytes(body, "features").Array()
	addresses := make([]geo.Address, 0, len(features))

	for _, f := range features {
		props := f.Get("properties")
		coords := f.Get("geometry.coordinates").Array()
		if len(coords) != 2 {
			continue
		}

		street := props.Get("street").String()
		if number := props.Get("housenumber").String(); number != "" && street != "" {
			street = number + " " + street
		} else if street == "" {
			street = props.Get("name").String()
		}

		department, _, _ := strings.Cut(props.Get("context").String(), ",")

		addresses = append(addresses, geo.Address{
			Label:          props.Get("label").String(),
			Street:         street,
			PostalCode:     props.Get("postcode").String(),
			City:           props.Get("city").String(),
			DepartmentCode: strings.TrimSpace(department),
			Longitude:      coords[0].Float(),
			Latitude:       coords[1].Float(),
			Score:          props.Get("score").Float(),
		})
	}

	return addresses
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
