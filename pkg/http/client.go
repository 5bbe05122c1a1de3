package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client bound to a base URL.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
	redactedParams     map[string]struct{}
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	// ReadTimeout bounds the whole exchange. Zero means no timeout.
	ReadTimeout time.Duration
	// Logger receives request and response events. Nil disables logging.
	Logger HTTPLogger
	// RedactedQueryParams lists query parameters whose values are masked in logs.
	RedactedQueryParams []string
	// Transport replaces the default transport, mostly for tests.
	Transport http.RoundTripper
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        opts.MaxIdleConns,
			MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
			IdleConnTimeout:     opts.IdleConnTimeout,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	redacted := make(map[string]struct{}, len(opts.RedactedQueryParams))
	for _, key := range opts.RedactedQueryParams {
		redacted[key] = struct{}{}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
		redactedParams:     redacted,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request and decodes the response into successResp or errorResp.
func (hc *Client) Get(ctx context.Context, path string, queryParams map[string]string, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodGet, path, queryParams, nil, nil, successResp, errorResp)
}

// Post sends a POST request with body and decodes the response into successResp or errorResp.
func (hc *Client) Post(ctx context.Context, path string, queryParams map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodPost, path, queryParams, nil, body, successResp, errorResp)
}

// doRequest builds the URL and body, executes the request and decodes the response.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	target := hc.buildURL(path)
	if len(queryParams) > 0 {
		target += "?" + buildQueryString(queryParams)
	}

	bodyBytes, contentType, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logURL := hc.redactURL(target, queryParams)
	logHeaders := flattenHeaders(req.Header)
	if hc.logger != nil {
		hc.logger.LogRequest(method, logURL, logHeaders, string(bodyBytes))
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = logURL
		}
		if hc.logger != nil {
			hc.logger.LogResponseError(method, logURL, logHeaders, string(bodyBytes), 0, "", time.Since(start).Milliseconds(), err)
		}
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(method, logURL, logHeaders, string(bodyBytes), resp.StatusCode, "", latency, err)
		}
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(method, logURL, logHeaders, string(bodyBytes), resp.StatusCode, string(respBytes), latency)
		}
		if successResp != nil && len(respBytes) > 0 {
			if err := hc.unmarshalResponse(respBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(respBytes)}
	if hc.logger != nil {
		hc.logger.LogResponseError(method, logURL, logHeaders, string(bodyBytes), resp.StatusCode, string(respBytes), latency, statusErr)
	}

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		return nil, nil, resp.StatusCode, nil
	}

	if errorResp != nil && len(respBytes) > 0 {
		if err := hc.unmarshalResponse(respBytes, respContentType, errorResp); err != nil {
			return nil, nil, resp.StatusCode, statusErr
		}
		return nil, errorResp, resp.StatusCode, statusErr
	}

	return nil, nil, resp.StatusCode, statusErr
}

// encodeBody serializes body according to its type and the client's default content type
func (hc *Client) encodeBody(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch b := body.(type) {
	case string:
		return []byte(b), "text/plain", nil
	case []byte:
		return b, "application/octet-stream", nil
	}

	switch hc.defaultContentType {
	case "application/xml":
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return xmlBody, "application/xml", nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return jsonBody, "application/json", nil
	}
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL joins the base URL and path with exactly one slash
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// redactURL rebuilds the target URL with sensitive query values masked
func (hc *Client) redactURL(target string, queryParams map[string]string) string {
	if len(hc.redactedParams) == 0 || len(queryParams) == 0 {
		return target
	}
	masked := make(map[string]string, len(queryParams))
	for k, v := range queryParams {
		if _, ok := hc.redactedParams[k]; ok {
			v = "***"
		}
		masked[k] = v
	}
	return strings.SplitN(target, "?", 2)[0] + "?" + buildQueryString(masked)
}

// buildQueryString encodes params sorted by key
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}
