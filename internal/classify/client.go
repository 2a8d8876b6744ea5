package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// DefaultEndpoint is where the detection backend listens out of the box.
const DefaultEndpoint = "http://127.0.0.1:5000/predict"

// ErrBackend wraps every failure to obtain a classification: transport,
// HTTP status, and decoding problems alike.
var ErrBackend = errors.New("backend error")

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 1 << 20

// ProxyConfig holds proxy settings.
type ProxyConfig struct {
	URL     string // http://, https://, or socks5:// proxy URL
	NoProxy string // comma-separated list of hosts to bypass proxy
}

type predictRequest struct {
	URL string `json:"url"`
}

type predictResponse struct {
	Result json.RawMessage `json:"result"`
}

// Client submits URLs to the classification endpoint.
type Client struct {
	endpoint  string
	timeout   time.Duration
	proxyConf *ProxyConfig
	tlsConf   TLSConfig
}

// New creates a client for endpoint. An empty endpoint uses DefaultEndpoint.
func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		timeout:  30 * time.Second,
	}
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string { return c.endpoint }

// SetTimeout sets the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// SetProxy configures proxy settings for the client.
func (c *Client) SetProxy(proxyURL, noProxy string) {
	if proxyURL == "" {
		c.proxyConf = nil
		return
	}
	c.proxyConf = &ProxyConfig{URL: proxyURL, NoProxy: noProxy}
}

// SetTLS sets the TLS settings used for https endpoints.
func (c *Client) SetTLS(cfg TLSConfig) {
	c.tlsConf = cfg
}

// Classify sends target to the backend and returns its verdict string as-is.
func (c *Client) Classify(ctx context.Context, target string) (string, error) {
	payload, err := json.Marshal(predictRequest{URL: target})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %v", ErrBackend, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", ErrBackend, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	transport, err := c.buildTransport()
	if err != nil {
		return "", fmt.Errorf("%w: configuring transport: %v", ErrBackend, err)
	}
	client := &http.Client{
		Timeout:   c.timeout,
		Transport: transport,
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: sending request: %v", ErrBackend, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrBackend, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %s", ErrBackend, resp.Status)
	}

	if !json.Valid(body) {
		return "", fmt.Errorf("%w: decoding response: invalid JSON", ErrBackend)
	}
	return resultOf(body), nil
}

// resultOf extracts the verdict from a valid JSON body. A string result is
// returned as-is, any other value as its JSON text, and a missing result (or
// a body that is not an object) as "".
func resultOf(body []byte) string {
	var pr predictResponse
	if err := json.Unmarshal(body, &pr); err != nil || len(pr.Result) == 0 {
		return ""
	}
	if pr.Result[0] == '"' {
		var s string
		if err := json.Unmarshal(pr.Result, &s); err == nil {
			return s
		}
	}
	return string(pr.Result)
}

// buildTransport creates an http.Transport configured with the TLS and proxy
// settings.
func (c *Client) buildTransport() (http.RoundTripper, error) {
	tlsConf, err := c.tlsConf.build()
	if err != nil {
		return nil, err
	}
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig:     tlsConf,
	}

	if c.proxyConf == nil {
		return transport, nil
	}

	parsed, err := url.Parse(c.proxyConf.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing proxy URL: %w", err)
	}

	switch parsed.Scheme {
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if parsed.User != nil {
			password, _ := parsed.User.Password()
			auth = &proxy.Auth{
				User:     parsed.User.Username(),
				Password: password,
			}
		}
		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("creating SOCKS5 dialer: %w", err)
		}
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
	case "http", "https":
		noProxyHosts := parseNoProxy(c.proxyConf.NoProxy)
		transport.Proxy = func(r *http.Request) (*url.URL, error) {
			if shouldBypassProxy(r.URL.Hostname(), noProxyHosts) {
				return nil, nil
			}
			return parsed, nil
		}
	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s", parsed.Scheme)
	}

	return transport, nil
}

// parseNoProxy splits a comma-separated no-proxy string into trimmed host entries.
func parseNoProxy(noProxy string) []string {
	parts := strings.Split(noProxy, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			hosts = append(hosts, strings.ToLower(p))
		}
	}
	return hosts
}

// shouldBypassProxy checks whether a host should bypass the proxy.
func shouldBypassProxy(host string, noProxyHosts []string) bool {
	host = strings.ToLower(host)
	for _, h := range noProxyHosts {
		if h == host {
			return true
		}
		// .example.com matches any subdomain
		if strings.HasPrefix(h, ".") && strings.HasSuffix(host, h) {
			return true
		}
	}
	return false
}
