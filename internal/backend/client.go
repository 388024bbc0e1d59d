package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"virtue/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Virtue/1.0"
)

// Client talks to the Virtue admin backend.
// Implements domain.FavoritesClient and domain.StreamersClient.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new admin backend client
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated HTTP request and returns the body for
// any 2xx response. Transport failures map to domain.ErrBackendUnavailable,
// 401 to domain.ErrAuthFailed, 404 to domain.ErrNotFound.
func (c *Client) doRequest(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("backend request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "error", err)
		return nil, domain.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("backend request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}

	return body, nil
}

// ListFavorites returns the full authoritative favorites set
func (c *Client) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/favorites", nil)
	if err != nil {
		return nil, err
	}

	var dtos []favoriteDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse favorites response: %w", err)
	}

	return mapFavorites(dtos), nil
}

// CreateFavorite submits a new favorite. The backend answers 409 when the
// streamer is already favorited; that is treated as success so the call
// stays idempotent.
func (c *Client) CreateFavorite(ctx context.Context, fav domain.Favorite) error {
	reqURL := fmt.Sprintf("%s/api/favorites", c.baseURL)

	data, err := json.Marshal(toFavoriteDTO(fav))
	if err != nil {
		return fmt.Errorf("failed to encode favorite: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend create favorite failed", "error", err)
		return domain.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		// Already favorited on the backend side
		c.logger.Debug("favorite already exists", "streamerUuid", fav.StreamerUUID)
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("backend create favorite error", "status", resp.StatusCode, "body", string(respBody))
		return fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}

	return nil
}

// DeleteFavorite removes a favorite by streamer UUID
func (c *Client) DeleteFavorite(ctx context.Context, streamerUUID string) error {
	path := fmt.Sprintf("/api/favorites/%s", url.PathEscape(streamerUUID))
	_, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	return err
}

// ListStreamers returns the fleet listing
func (c *Client) ListStreamers(ctx context.Context) ([]domain.Streamer, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/streamers", nil)
	if err != nil {
		return nil, err
	}

	var dtos []streamerDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse streamers response: %w", err)
	}

	return mapStreamers(dtos), nil
}

// Login authenticates against the backend and returns an access token
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload := loginRequest{Username: username, Password: password}

	body, err := c.doRequest(ctx, http.MethodPost, "/login", payload)
	if err != nil {
		return "", err
	}

	var result loginResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}
	if result.AccessToken == "" {
		return "", domain.ErrAuthFailed
	}

	return result.AccessToken, nil
}
