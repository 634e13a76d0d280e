package httptesting

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

// MockTransport dispatches requests to handlers registered by method and path.
type MockTransport struct {
	handlers map[string]map[string]RoundTripFunc

	// Requests lists the handled requests in order
	Requests []*http.Request
}

func (transport *MockTransport) handle(method, path string, f RoundTripFunc) {
	if transport.handlers == nil {
		transport.handlers = make(map[string]map[string]RoundTripFunc)
	}

	if transport.handlers[method] == nil {
		transport.handlers[method] = make(map[string]RoundTripFunc)
	}

	transport.handlers[method][path] = f
}

func (transport *MockTransport) GET(path string, f RoundTripFunc) {
	transport.handle(http.MethodGet, path, f)
}

func (transport *MockTransport) POST(path string, f RoundTripFunc) {
	transport.handle(http.MethodPost, path, f)
}

func (transport *MockTransport) DELETE(path string, f RoundTripFunc) {
	transport.handle(http.MethodDelete, path, f)
}

func (transport *MockTransport) PUT(path string, f RoundTripFunc) {
	transport.handle(http.MethodPut, path, f)
}

func (transport *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	method := strings.ToUpper(req.Method)
	handlers, ok := transport.handlers[method]
	if !ok {
		return nil, errors.Errorf("unsupported mock transport request method: %s", req.Method)
	}

	f, ok := handlers[req.URL.Path]
	if !ok {
		return nil, errors.Errorf("roundtrip mock to %s %s is not defined", req.Method, req.URL.Path)
	}

	transport.Requests = append(transport.Requests, req)
	return f(req)
}

func MockWithJsonReply(url string, rawData interface{}) *http.Client {
	tripFunc := func(_ *http.Request) (*http.Response, error) {
		return BuildResponseJson(http.StatusOK, rawData), nil
	}

	transport := &MockTransport{}
	transport.DELETE(url, tripFunc)
	transport.GET(url, tripFunc)
	transport.POST(url, tripFunc)
	transport.PUT(url, tripFunc)
	return &http.Client{Transport: transport}
}

// RecorderEntry is a recorded request and response pair.
type RecorderEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Request   *RequestRecord  `json:"request"`
	Response  *ResponseRecord `json:"response"`
	Error     string          `json:"error,omitempty"`
}

type RequestRecord struct {
	Method string      `json:"method"`
	URL    string      `json:"url"`
	Header http.Header `json:"header"`
	Body   string      `json:"body,omitempty"`
}

type ResponseRecord struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Header     http.Header `json:"header"`
	Body       string      `json:"body,omitempty"`
}

// Recorder records live request and response pairs to a file, and plays them back
// through a MockTransport.
type Recorder struct {
	entries   []RecorderEntry
	transport http.RoundTripper
}

func NewRecorder(transport http.RoundTripper) *Recorder {
	return &Recorder{
		transport: transport,
	}
}

var credentialHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^authorization$`),
	regexp.MustCompile(`(?i)^api[-_]key$`),
	regexp.MustCompile(`(?i)^x[-_](bx[-_])?api[-_]?key$`),
	regexp.MustCompile(`(?i)^cookie$`),
	regexp.MustCompile(`(?i)^secret$`),
}

// credentialParams are the signed parameters that must never end up in a recording
var credentialParams = regexp.MustCompile(`(^|&)(apiKey|signature|sign)=[^&]*`)

func filterCredentials(header http.Header) {
	for key := range header {
		for _, re := range credentialHeaders {
			if re.MatchString(key) {
				header.Del(key)
				break
			}
		}
	}
}

func filterParams(s string) string {
	return credentialParams.ReplaceAllString(s, "${1}${2}=***")
}

func (r *Recorder) RecordEntry(req *http.Request, resp *http.Response, err error) {
	u := *req.URL
	u.RawQuery = filterParams(u.RawQuery)

	entry := RecorderEntry{
		Timestamp: time.Now(),
		Request: &RequestRecord{
			Method: req.Method,
			URL:    u.String(),
			Header: req.Header.Clone(),
			Body:   filterParams(ReadBody(req)),
		},
	}
	filterCredentials(entry.Request.Header)

	if resp != nil {
		entry.Response = &ResponseRecord{
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
		}
		if resp.Body != nil {
			bodyBytes, _ := io.ReadAll(resp.Body)
			entry.Response.Body = string(bodyBytes)
			resp.Body = io.NopCloser(strings.NewReader(entry.Response.Body))
		}
	}

	if err != nil {
		entry.Error = err.Error()
	}

	r.entries = append(r.entries, entry)
}

func (r *Recorder) Entries() []RecorderEntry {
	return r.entries
}

func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.entries)
}

func (r *Recorder) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var entries []RecorderEntry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		return err
	}

	r.entries = entries
	return nil
}

func BuildResponseFromRecord(respRec *ResponseRecord) *http.Response {
	return &http.Response{
		Status:     respRec.Status,
		StatusCode: respRec.StatusCode,
		Header:     respRec.Header.Clone(),
		Body:       io.NopCloser(strings.NewReader(respRec.Body)),
	}
}

// LoadFromRecorder registers a handler per recorded method and path that replies
// with the recorded response.
func (transport *MockTransport) LoadFromRecorder(recorder *Recorder) error {
	for _, entry := range recorder.entries {
		if entry.Request == nil || entry.Response == nil {
			continue
		}

		u, err := url.Parse(entry.Request.URL)
		if err != nil {
			return err
		}

		response := entry.Response
		transport.handle(strings.ToUpper(entry.Request.Method), u.Path, func(_ *http.Request) (*http.Response, error) {
			return BuildResponseFromRecord(response), nil
		})
	}
	return nil
}

func (r *Recorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.transport.RoundTrip(req)
	r.RecordEntry(req, resp, err)
	return resp, err
}
