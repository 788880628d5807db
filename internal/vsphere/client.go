// Package vsphere provides an authenticated session client for the vCenter
// appliance REST API.
package vsphere

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/vcsa-tools/vclm/internal/common/output"
)

const (
	sessionPath   = "/api/session"
	sessionHeader = "vmware-api-session-id"
)

// ErrAuthentication indicates the session endpoint rejected the credentials
var ErrAuthentication = errors.New("vCenter authentication failed")

// RequestError is returned for any non-2xx API response.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s failed: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// insecureWarnOnce limits the TLS-verification-disabled warning to one
// message per process regardless of how many clients are created.
var insecureWarnOnce sync.Once

// Client handles authentication and HTTP requests against one vCenter host.
// One session token per Client; a logged-in Client is not safe for
// concurrent use.
type Client struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client

	sessionID string
}

// NewClient creates a client for the given vCenter host. When verifySSL is
// false the transport accepts any certificate (self-signed lab appliances)
// and a single warning is logged for the whole process.
func NewClient(host, username, password string, verifySSL bool) *Client {
	transport := &http.Transport{}
	if !verifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		insecureWarnOnce.Do(func() {
			output.PrintWarning("TLS certificate verification is disabled")
		})
	}

	return &Client{
		BaseURL:  "https://" + host,
		Username: username,
		Password: password,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}
}

// Login authenticates with basic credentials and stores the session token.
// The token is attached to every subsequent request on this client.
func (c *Client) Login() error {
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+sessionPath, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.Username, c.Password)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading session response: %v", ErrAuthentication, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", ErrAuthentication, resp.StatusCode, string(body))
	}

	// The session endpoint returns the token as a bare JSON string.
	var token string
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("%w: unexpected session response: %v", ErrAuthentication, err)
	}

	c.sessionID = token
	return nil
}

// Logout destroys the remote session if one is active. Idempotent; failures
// are ignored since the session expires server-side anyway.
func (c *Client) Logout() {
	if c.sessionID == "" {
		return
	}
	req, err := http.NewRequest(http.MethodDelete, c.BaseURL+sessionPath, nil)
	if err == nil {
		req.Header.Set(sessionHeader, c.sessionID)
		if resp, doErr := c.HTTPClient.Do(req); doErr == nil {
			resp.Body.Close()
		}
	}
	c.sessionID = ""
}

// WithSession runs fn inside a login/logout pair. Logout fires even when fn
// returns an error.
func (c *Client) WithSession(fn func(*Client) error) error {
	if err := c.Login(); err != nil {
		return err
	}
	defer c.Logout()
	return fn(c)
}

// Get issues a GET and returns the raw response body.
func (c *Client) Get(path string) ([]byte, error) {
	return c.do(http.MethodGet, path, nil)
}

// Put issues a PUT with an optional JSON body.
func (c *Client) Put(path string, body any) ([]byte, error) {
	return c.do(http.MethodPut, path, body)
}

// Patch issues a PATCH with an optional JSON body.
func (c *Client) Patch(path string, body any) ([]byte, error) {
	return c.do(http.MethodPatch, path, body)
}

// Post issues a POST with an optional JSON body.
func (c *Client) Post(path string, body any) ([]byte, error) {
	return c.do(http.MethodPost, path, body)
}

// do executes one request with the session header attached. Any non-2xx
// status becomes a *RequestError carrying the response body; there is no
// retry.
func (c *Client) do(method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set(sessionHeader, c.sessionID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	return data, nil
}
