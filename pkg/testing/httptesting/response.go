package httptesting

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

func BuildResponse(code int, payload []byte) *http.Response {
	return &http.Response{
		StatusCode:    code,
		Status:        http.StatusText(code),
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(bytes.NewBuffer(payload)),
		ContentLength: int64(len(payload)),
	}
}

func BuildResponseString(code int, payload string) *http.Response {
	return BuildResponse(code, []byte(payload))
}

// BuildResponseJson marshals payload, a []byte or string payload is sent as is.
func BuildResponseJson(code int, payload interface{}) *http.Response {
	var data []byte
	switch v := payload.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		var err error
		data, err = json.Marshal(payload)
		if err != nil {
			return BuildResponseString(http.StatusInternalServerError, `{"error":"`+strings.ReplaceAll(err.Error(), `"`, `'`)+`"}`)
		}
	}

	return BuildResponse(code, data)
}

func SetHeader(resp *http.Response, name string, value string) *http.Response {
	if resp.Header == nil {
		resp.Header = http.Header{}
	}
	resp.Header.Set(name, value)
	return resp
}

func DeleteHeader(resp *http.Response, name string) *http.Response {
	if resp.Header != nil {
		resp.Header.Del(name)
	}
	return resp
}

// ReadBody reads and restores the request body, it is meant to be used by handlers
// that need to assert the payload.
func ReadBody(req *http.Request) string {
	if req.Body == nil {
		return ""
	}

	data, _ := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(data))
	return string(data)
}
