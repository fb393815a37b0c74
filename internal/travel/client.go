package travel

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
)

// DefaultBaseURL is Amadeus' self-service test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

// ErrNotConfigured indicates missing Amadeus credentials. Searches degrade
// to empty results instead of failing the request.
var ErrNotConfigured = errors.New("travel provider not configured")

// Client talks to the Amadeus self-service REST APIs. All calls enforce a
// short timeout so a slow provider cannot stall a request.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	tokens       *tokenSource
}

// NewClient constructs an Amadeus client with the given credentials.
func NewClient(clientID, clientSecret, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: timeout},
	}
	c.tokens = newTokenSource(c.fetchToken)
	return c
}

// Configured reports whether credentials were provided.
func (c *Client) Configured() bool {
	return c != nil && c.clientID != "" && c.clientSecret != ""
}

func (c *Client) fetchToken(ctx context.Context) (string, int, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("token request failed (%d): %s", resp.StatusCode, body)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", 0, fmt.Errorf("parse token response: %w", err)
	}
	return parsed.AccessToken, parsed.ExpiresIn, nil
}

// getJSON performs an authenticated GET against the provider and decodes the
// JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("amadeus auth: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, body)
	}
	return json.Unmarshal(body, out)
}
