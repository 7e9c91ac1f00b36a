package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/mattdh/lic-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	defaultRequestTimeout = 30 * time.Second
	maxResponseBytes      = 1 << 20
)

type Config struct {
	BaseURL     string
	Credentials Credentials
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

// Client talks to the attendance service. One network round trip per
// method, no retries.
type Client struct {
	baseURL string
	http    *http.Client
	creds   Credentials
	log     *zap.Logger
}

var _ ports.AttendanceClient = (*Client)(nil)

func New(cfg Config) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}

	creds := cfg.Credentials
	if creds == nil {
		creds = CookieSession()
	}
	if err := creds.install(httpClient); err != nil {
		return nil, fmt.Errorf("install credentials: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		creds:   creds,
		log:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	if err := domain.ValidateBaseURL(raw); err != nil {
		return "", err
	}

	return strings.TrimRight(raw, "/"), nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login posts credentials and returns the bearer token from the response
// body. Cookie-session deployments return no token; the transport jar holds
// the session cookie instead and the returned string is empty.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.postJSON(ctx, "/api/login", loginRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &AuthError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var payload loginResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		if c.creds.tokenRequired() {
			return "", &DecodeError{Body: string(raw), Err: err}
		}
		// Opaque success body; the session cookie is the credential.
		return "", nil
	}

	return payload.Token, nil
}

// LogAttendance submits one entry, attaching bearer auth when configured.
func (c *Client) LogAttendance(ctx context.Context, entry domain.AttendanceEntry) error {
	resp, err := c.postJSON(ctx, "/api/log", entry)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &RequestError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return nil
}

// Rankings fetches the leaderboard for a period, optionally pinned to a
// date. Rows are returned in server order.
func (c *Client) Rankings(ctx context.Context, period domain.Period, date string) ([]domain.Ranking, error) {
	path := "/api/rankings/" + string(period)
	if date != "" {
		path += "/" + date
	}

	resp, err := c.get(ctx, path, "")
	if err != nil {
		return nil, err
	}

	return decode[[]domain.Ranking](resp, c.log)
}

func (c *Client) Streaks(ctx context.Context) ([]domain.Streak, error) {
	resp, err := c.get(ctx, "/api/streaks", "")
	if err != nil {
		return nil, err
	}

	return decode[[]domain.Streak](resp, c.log)
}

func (c *Client) UserStats(ctx context.Context, username string) (domain.StatsResponse, error) {
	resp, err := c.get(ctx, "/api/users/"+url.PathEscape(username)+"/stats", "")
	if err != nil {
		return domain.StatsResponse{}, err
	}

	return decode[domain.StatsResponse](resp, c.log)
}

func (c *Client) Query(ctx context.Context, filter domain.QueryFilter) ([]domain.QueryResult, error) {
	resp, err := c.get(ctx, "/api/query/"+string(filter.Period), encodeQuery(filter))
	if err != nil {
		return nil, err
	}

	return decode[[]domain.QueryResult](resp, c.log)
}

func (c *Client) get(ctx context.Context, path, rawQuery string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.URL.RawQuery = rawQuery
	c.creds.apply(req)

	c.log.Debug("request", zap.String("method", req.Method), zap.String("url", req.URL.String()))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.creds.apply(req)
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("request", zap.String("method", req.Method), zap.String("url", req.URL.String()))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return resp, nil
}
