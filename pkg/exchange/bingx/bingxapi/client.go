package bingxapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/bingx/pkg/util"
)

const defaultHTTPTimeout = time.Second * 15

const (
	RestBaseURL       = "https://open-api.bingx.com"
	DemoRestBaseURL   = "https://open-api-vst.bingx.com"
	LegacyRestBaseURL = "https://api-swap-rest.bingbon.pro"

	UserAgent = "bingx-go/1.0"

	// DefaultRecvWindow is the receive window (ms) sent with write requests.
	DefaultRecvWindow int64 = 10000
)

var log = logrus.WithField("exchange", "bingx")

// Dialect describes what differs between the API generations: the signature
// scheme, where the api key goes and how the server time is fetched. Everything
// else (parameter encoding, request assembly, envelope handling) is shared.
type Dialect struct {
	Name    string
	BaseURL string
	DemoURL string

	Scheme         SignatureScheme
	SignatureField string

	// APIKeyHeader is set when the key is sent as a header, APIKeyParam when it is
	// sent as the first signed parameter.
	APIKeyHeader string
	APIKeyParam  string

	ServerTimeMethod string
	ServerTimePath   string
	ServerTimeField  string
}

// OpenAPIDialect is the current open API (/openApi/swap/v2).
var OpenAPIDialect = Dialect{
	Name:             "openapi",
	BaseURL:          RestBaseURL,
	DemoURL:          DemoRestBaseURL,
	Scheme:           SignatureSchemeHex,
	SignatureField:   "signature",
	APIKeyHeader:     "X-BX-APIKEY",
	ServerTimeMethod: http.MethodPost,
	ServerTimePath:   "/openApi/swap/v2/server/time",
	ServerTimeField:  "serverTime",
}

// LegacyDialect is the legacy swap API (/api/v1).
var LegacyDialect = Dialect{
	Name:             "legacy",
	BaseURL:          LegacyRestBaseURL,
	Scheme:           SignatureSchemeBase64,
	SignatureField:   "sign",
	APIKeyParam:      "apiKey",
	ServerTimeMethod: http.MethodPost,
	ServerTimePath:   "/api/v1/common/server/time",
	ServerTimeField:  "currentTime",
}

// SignedAPIClient is what the endpoint requests need from a client.
type SignedAPIClient interface {
	NewPublicRequest(ctx context.Context, method, path string, params *Params) (*http.Request, error)
	NewSignedRequest(ctx context.Context, method, path string, params *Params, options ...SignOption) (*http.Request, error)
	SendRequest(req *http.Request) (*requestgen.Response, error)
}

type RestClient struct {
	requestgen.BaseAPIClient

	dialect Dialect

	key, secret string

	timestampMode TimestampMode
	recvWindow    int64
	clock         clock
}

// NewClient creates an open API client.
func NewClient() *RestClient {
	return NewClientWithDialect(OpenAPIDialect)
}

func NewClientWithDialect(dialect Dialect) *RestClient {
	u, err := url.Parse(dialect.BaseURL)
	if err != nil {
		panic(err)
	}

	return &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout: defaultHTTPTimeout,
			},
		},
		dialect:       dialect,
		timestampMode: TimestampModeLocal,
		recvWindow:    DefaultRecvWindow,
		clock:         newWallClock(),
	}
}

// Auth sets the api key and secret used for signed requests.
func (c *RestClient) Auth(key, secret string) {
	c.key = key
	c.secret = secret
}

func (c *RestClient) Dialect() Dialect {
	return c.dialect
}

// UseDemo switches the client to the demo (virtual funds) host of the dialect.
func (c *RestClient) UseDemo() error {
	if c.dialect.DemoURL == "" {
		return &ConfigurationError{Setting: "demo", Value: c.dialect.Name}
	}

	u, err := url.Parse(c.dialect.DemoURL)
	if err != nil {
		return errors.Wrapf(err, "invalid demo url %s", c.dialect.DemoURL)
	}

	c.BaseURL = u
	return nil
}

func (c *RestClient) SetTimestampMode(mode TimestampMode) error {
	if mode != TimestampModeLocal && mode != TimestampModeServer {
		return &ConfigurationError{Setting: "timestamp mode", Value: string(mode)}
	}

	c.timestampMode = mode
	return nil
}

func (c *RestClient) TimestampMode() TimestampMode {
	return c.timestampMode
}

func (c *RestClient) SetRecvWindow(ms int64) {
	c.recvWindow = ms
}

func (c *RestClient) RecvWindow() int64 {
	return c.recvWindow
}

type signOptions struct {
	recvWindow bool
}

// SignOption tunes the fixed fields appended to a signed request.
type SignOption func(o *signOptions)

// WithRecvWindow appends the recvWindow field after the timestamp.
func WithRecvWindow() SignOption {
	return func(o *signOptions) {
		o.recvWindow = true
	}
}

// SignedRequest is the assembled, signed form of a single call. It is built per
// call and never reused.
type SignedRequest struct {
	Method string
	Path   string

	// Canonical is the signed parameter string.
	Canonical string
	Signature string

	// Payload is Canonical with the signature field appended, it is sent as the
	// query string (GET, DELETE) or as the body (POST).
	Payload string

	Header http.Header
}

// hasBody reports whether the payload travels in the request body.
func (r *SignedRequest) hasBody() bool {
	return r.Method == http.MethodPost || r.Method == http.MethodPut
}

// RequestURI returns the path with the query string for GET and DELETE requests.
func (r *SignedRequest) RequestURI() string {
	if r.hasBody() || r.Payload == "" {
		return r.Path
	}
	return r.Path + "?" + r.Payload
}

// Body returns the request body, empty for GET and DELETE requests.
func (r *SignedRequest) Body() string {
	if r.hasBody() {
		return r.Payload
	}
	return ""
}

// BuildSignedRequest assembles a signed request: the timestamp and the fixed
// fields are appended to the params, the result is encoded, signed with the
// dialect's scheme and the signature is appended as the last field.
func (c *RestClient) BuildSignedRequest(
	ctx context.Context, method, path string, params *Params, options ...SignOption,
) (*SignedRequest, error) {
	if len(c.key) == 0 {
		return nil, &SigningError{Reason: "empty api key"}
	}

	if len(c.secret) == 0 {
		return nil, &SigningError{Reason: "empty api secret"}
	}

	var opts signOptions
	for _, o := range options {
		o(&opts)
	}

	method = strings.ToUpper(method)

	if params == nil {
		params = NewParams()
	} else {
		params = params.Clone()
	}

	if c.dialect.APIKeyParam != "" {
		params.Prepend(c.dialect.APIKeyParam, c.key)
	}

	timestamp, err := c.Timestamp(ctx)
	if err != nil {
		return nil, err
	}

	params.Add("timestamp", timestamp)
	if opts.recvWindow && c.recvWindow > 0 {
		params.Add("recvWindow", c.recvWindow)
	}

	canonical := params.Encode()
	signature, err := Sign(c.secret, SignablePayload(c.dialect.Scheme, method, path, canonical), c.dialect.Scheme)
	if err != nil {
		return nil, err
	}

	payload := NewParams().Extend(canonical).Add(c.dialect.SignatureField, signature).Encode()

	header := c.defaultHeader()
	if method == http.MethodPost || method == http.MethodPut {
		header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		log.Debugf("signed request %s %s %s", method, path, strings.ReplaceAll(canonical, c.key, util.MaskKey(c.key)))
	}

	return &SignedRequest{
		Method:    method,
		Path:      path,
		Canonical: canonical,
		Signature: signature,
		Payload:   payload,
		Header:    header,
	}, nil
}

func (c *RestClient) defaultHeader() http.Header {
	header := http.Header{}
	header.Set("User-Agent", UserAgent)
	if c.dialect.APIKeyHeader != "" && c.key != "" {
		header.Set(c.dialect.APIKeyHeader, c.key)
	}
	return header
}

// NewSignedRequest creates the http request of an authenticated route.
func (c *RestClient) NewSignedRequest(
	ctx context.Context, method, path string, params *Params, options ...SignOption,
) (*http.Request, error) {
	signed, err := c.BuildSignedRequest(ctx, method, path, params, options...)
	if err != nil {
		return nil, err
	}

	query := ""
	if !signed.hasBody() {
		query = signed.Payload
	}

	return c.newHTTPRequest(ctx, signed.Method, signed.Path, query, signed.Body(), signed.Header)
}

// NewPublicRequest creates an unsigned http request, the params are encoded the
// same way as the signed ones.
func (c *RestClient) NewPublicRequest(ctx context.Context, method, path string, params *Params) (*http.Request, error) {
	method = strings.ToUpper(method)

	var encoded string
	if params != nil {
		encoded = params.Encode()
	}

	header := c.defaultHeader()

	if method == http.MethodPost || method == http.MethodPut {
		if encoded != "" {
			header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		return c.newHTTPRequest(ctx, method, path, "", encoded, header)
	}

	return c.newHTTPRequest(ctx, method, path, encoded, "", header)
}

func (c *RestClient) newHTTPRequest(
	ctx context.Context, method, path, query, body string, header http.Header,
) (*http.Request, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request path %s", path)
	}

	pathURL := c.BaseURL.ResolveReference(rel)

	var bodyReader *strings.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	} else {
		bodyReader = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), bodyReader)
	if err != nil {
		return nil, err
	}

	// the query is already encoded and signed, it must be sent as is
	req.URL.RawQuery = query
	req.Header = header
	return req, nil
}

// SendRequest sends the request with the http client. Connection failures and
// non-2xx responses are returned as *TransportError.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	start := time.Now()

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		recordLatencyMetrics(req, 0, time.Since(start))
		return nil, &TransportError{Method: req.Method, URL: req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	recordLatencyMetrics(req, resp.StatusCode, time.Since(start))

	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return response, &TransportError{Method: req.Method, URL: req.URL.Path, StatusCode: resp.StatusCode, Err: err}
	}

	if response.IsError() {
		return response, &TransportError{
			Method:     req.Method,
			URL:        req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       response.Body,
			Err:        errors.Errorf("unexpected response status %s", resp.Status),
		}
	}

	return response, nil
}

// SendAPIRequest sends the request and decodes the envelope. A non-2xx response
// whose body is a rejection envelope is reported as the rejection.
func SendAPIRequest(client SignedAPIClient, req *http.Request) (*APIResponse, error) {
	response, err := client.SendRequest(req)
	if err != nil {
		var transportErr *TransportError
		if errors.As(err, &transportErr) && len(transportErr.Body) > 0 {
			if apiResponse, parseErr := parseAPIResponse(transportErr.Body); parseErr == nil && !apiResponse.Code.IsSuccess() && apiResponse.Code != "" {
				recordRejectionMetrics(req, apiResponse.Code)
				return nil, apiResponse.rejection("")
			}
		}
		return nil, err
	}

	apiResponse, err := parseAPIResponse(response.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.Path, StatusCode: response.StatusCode, Body: response.Body, Err: err}
	}

	if !apiResponse.Code.IsSuccess() {
		recordRejectionMetrics(req, apiResponse.Code)
		log.Debugf("request %s %s rejected: code=%s msg=%s", req.Method, req.URL.Path, apiResponse.Code, apiResponse.Message)
	}

	return apiResponse, nil
}

func doPublicRequest(ctx context.Context, client SignedAPIClient, method, path string, params *Params) (*APIResponse, error) {
	req, err := client.NewPublicRequest(ctx, method, path, params)
	if err != nil {
		return nil, err
	}

	return SendAPIRequest(client, req)
}

func doSignedRequest(
	ctx context.Context, client SignedAPIClient, method, path string, params *Params, options ...SignOption,
) (*APIResponse, error) {
	req, err := client.NewSignedRequest(ctx, method, path, params, options...)
	if err != nil {
		return nil, err
	}

	return SendAPIRequest(client, req)
}
