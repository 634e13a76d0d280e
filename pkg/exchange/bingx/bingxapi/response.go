package bingxapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ResponseCode is the envelope code, the API sends it either as a number or as a
// string depending on the endpoint.
type ResponseCode string

const successCode ResponseCode = "0"

func (c *ResponseCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ResponseCode(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "unexpected response code %s", data)
	}

	*c = ResponseCode(n.String())
	return nil
}

func (c ResponseCode) String() string {
	return string(c)
}

// Int returns the numeric code, or -1 if the code is not numeric.
func (c ResponseCode) Int() int {
	i, err := strconv.Atoi(string(c))
	if err != nil {
		return -1
	}
	return i
}

func (c ResponseCode) IsSuccess() bool {
	return c == successCode
}

/*
APIResponse is the envelope every endpoint responds with:

	{
	    "code": 0,
	    "msg": "",
	    "data": {
	        "symbol": "BTC-USDT",
	        "price": "37215.5",
	        "time": 1700000000000
	    }
	}
*/
type APIResponse struct {
	Code    ResponseCode    `json:"code"`
	Message string          `json:"msg"`
	Data    json.RawMessage `json:"data"`

	raw []byte
}

func (a APIResponse) hasData() bool {
	d := bytes.TrimSpace(a.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

func (a APIResponse) rejection(field string) *RemoteRejection {
	return &RemoteRejection{
		Code:     a.Code,
		Message:  a.Message,
		Field:    field,
		Envelope: json.RawMessage(a.raw),
	}
}

// Validate returns a *RemoteRejection when the code is not the success code.
func (a APIResponse) Validate() error {
	if !a.Code.IsSuccess() {
		return a.rejection("")
	}
	return nil
}

// parseAPIResponse decodes the envelope. A body that is not a JSON object is a
// transport level failure, not a rejection.
func parseAPIResponse(body []byte) (*APIResponse, error) {
	var resp APIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrapf(err, "unable to decode response envelope: %q", truncate(body, 256))
	}

	resp.raw = body
	return &resp, nil
}

// Normalize turns a raw response body into the envelope data. Rejections are
// returned as *RemoteRejection, undecodable bodies as *TransportError.
func Normalize(body []byte) (json.RawMessage, error) {
	resp, err := parseAPIResponse(body)
	if err != nil {
		return nil, &TransportError{Body: body, Err: err}
	}

	if err := resp.Validate(); err != nil {
		return nil, err
	}

	if !resp.hasData() {
		return nil, resp.rejection("data")
	}

	return resp.Data, nil
}

// DecodeData decodes the envelope data, or the named sub-field of it, into out.
// An empty field decodes the whole data value.
func (a APIResponse) DecodeData(field string, out interface{}) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if !a.hasData() {
		return a.rejection("data")
	}

	data := a.Data
	if field != "" {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(a.Data, &fields); err != nil {
			return a.rejection("data." + field)
		}

		v, ok := fields[field]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return a.rejection("data." + field)
		}
		data = v
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "unable to decode response data %s", truncate(data, 256))
	}

	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
