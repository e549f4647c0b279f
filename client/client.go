package client

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/btec-qa/automationexercise-api-tests/framework"
)

const userAgent = "BTEC-API-Tests/1.0"

const maxLoggedBodyBytes = 500

// Client is a reusable session for the REST API under test. A single instance
// is shared by every test case so the underlying transport can reuse
// connections. Each request is bounded by the configured timeout and carries
// an identifying User-Agent header; there is no retry, so a transport failure
// is returned to the caller as an error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// New creates a Client for the given base URL. The logger receives one line
// per request (a reproducible curl command) and one per response.
func New(baseURL string, timeout time.Duration, logger framework.Logger) *Client {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// WithLogger returns a Client sharing this one's session but logging to a
// different destination, so each test can capture its own request traffic.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	if logger == nil {
		return c
	}
	c2 := *c
	c2.logger = logger
	return &c2
}

// Get issues a GET request with optional query parameters.
func (c *Client) Get(path string, query url.Values) (Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return Response{}, err
	}
	c.logger.Printf("%s", curlCommand("GET", u, nil))
	return c.send(req)
}

// PostForm issues a POST request with a form-encoded body. A nil or empty
// form still sends the form content type, matching a deliberately
// parameterless negative-test request.
func (c *Client) PostForm(path string, form url.Values) (Response, error) {
	return c.sendForm("POST", path, form)
}

// PutForm issues a PUT request with a form-encoded body.
func (c *Client) PutForm(path string, form url.Values) (Response, error) {
	return c.sendForm("PUT", path, form)
}

// DeleteForm issues a DELETE request with a form-encoded body.
func (c *Client) DeleteForm(path string, form url.Values) (Response, error) {
	return c.sendForm("DELETE", path, form)
}

func (c *Client) sendForm(method, path string, form url.Values) (Response, error) {
	u := c.baseURL + path
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.logger.Printf("%s", curlCommand(method, u, form))
	return c.send(req)
}

func (c *Client) send(req *http.Request) (Response, error) {
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%s %s: reading response body: %w", req.Method, req.URL, err)
	}
	c.logger.Printf("HTTP %d from %s %s: %s", resp.StatusCode, req.Method, req.URL, truncateForLog(data))
	return newResponse(resp.StatusCode, data), nil
}

func truncateForLog(data []byte) string {
	if len(data) > maxLoggedBodyBytes {
		return string(data[:maxLoggedBodyBytes]) + "...(truncated)"
	}
	return string(data)
}
