package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"spbu-monitor-backend/config"
	"spbu-monitor-backend/internal/model"
)

const (
	stationsPath = "/admin/spbus"
	maxBodyBytes = 32 << 20
)

// Client talks to the remote station API.
type Client struct {
	cfg    *config.UpstreamConfig
	client *http.Client
}

// NewClient creates a client for the configured upstream API.
func NewClient(cfg *config.UpstreamConfig) *Client {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Upstream client will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

// ListStations fetches the station list.
func (c *Client) ListStations(ctx context.Context) ([]model.StationSummary, error) {
	var stations []model.StationSummary
	if err := c.get(ctx, stationsPath, &stations); err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	log.WithField("count", len(stations)).Debug("fetched station list")
	return stations, nil
}

// GetStation fetches one fully populated station record.
func (c *Client) GetStation(ctx context.Context, id int64) (*model.Station, error) {
	var station model.Station
	path := stationsPath + "/" + strconv.FormatInt(id, 10)
	if err := c.get(ctx, path, &station); err != nil {
		return nil, fmt.Errorf("get station %d: %w", id, err)
	}
	log.WithField("station_id", id).Debug("fetched station detail")
	return &station, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range c.cfg.Headers {
		req.Header.Set(key, value)
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to unmarshal api response: %w", decodeErr)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("api response has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal api data: %w", err)
	}
	return nil
}
