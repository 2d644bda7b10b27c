// Package portal talks to the ArcGIS Enterprise sharing API. The only
// operation this gateway needs is generateToken: credentials go in, an
// opaque bearer token and its expiry come out.
package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	errs "github.com/gisportal/go-portal-gateway/internal/errors"
	"github.com/pkg/errors"
)

const generateTokenPath = "/sharing/rest/generateToken"

// TokenResponse is the successful generateToken reply. Expires is an
// absolute epoch-milliseconds timestamp chosen by the provider from the
// requested expiration minutes.
type TokenResponse struct {
	Token   string          `json:"token"`
	Expires int64           `json:"expires"`
	SSL     bool            `json:"ssl"`
	User    json.RawMessage `json:"user"`
}

// ProviderError is the provider's structured rejection. Its message is
// shown to the user verbatim.
type ProviderError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return errs.ErrInvalidCredentials
}

type generateTokenReply struct {
	TokenResponse
	Error *ProviderError `json:"error"`
}

// Client issues tokens against one portal deployment.
type Client struct {
	portalURL         string
	httpClient        *http.Client
	expirationMinutes int
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithExpirationMinutes overrides the token lifetime requested from the
// provider. The default is 24 hours.
func WithExpirationMinutes(minutes int) ClientOption {
	return func(c *Client) {
		c.expirationMinutes = minutes
	}
}

func NewClient(portalURL string, options ...ClientOption) (*Client, error) {
	if strings.TrimSpace(portalURL) == "" {
		return nil, errors.New("[NewClient] portal URL is required")
	}
	c := &Client{
		portalURL:         strings.TrimRight(portalURL, "/"),
		httpClient:        &http.Client{Timeout: 30 * time.Second},
		expirationMinutes: 1440,
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// PortalURL returns the base URL the client was built for.
func (c *Client) PortalURL() string {
	return c.portalURL
}

// GenerateToken exchanges credentials for a bearer token. One attempt, no
// retry: a provider rejection unwraps to ErrInvalidCredentials carrying
// the provider's own code and message, any transport or decode failure
// unwraps to ErrNetwork.
func (c *Client) GenerateToken(ctx context.Context, username, password, referer string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("referer", referer)
	form.Set("f", "json")
	form.Set("expiration", strconv.Itoa(c.expirationMinutes))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.portalURL+generateTokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "[Client.GenerateToken] build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrapf(errs.ErrNetwork, "[Client.GenerateToken] %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Wrapf(errs.ErrNetwork, "[Client.GenerateToken] provider returned status %d", resp.StatusCode)
	}

	var reply generateTokenReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, errs.Wrapf(errs.ErrNetwork, "[Client.GenerateToken] decode reply: %v", err)
	}

	if reply.Error != nil {
		return nil, reply.Error
	}
	if reply.Token == "" {
		return nil, errs.Wrapf(errs.ErrInvalidCredentials, "[Client.GenerateToken] provider returned no token")
	}
	return &reply.TokenResponse, nil
}
