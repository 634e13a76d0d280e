package httptesting

import (
	"net/http"
	"os"
)

// EchoSave replies every request with the same content and keeps the last request,
// so that tests can inspect what was sent.
type EchoSave struct {
	// saved is the address of a local variable of the caller
	saved **http.Request

	// body is the request body read before replying
	body *string

	status  int
	content string
	err     error
}

func (st *EchoSave) RoundTrip(req *http.Request) (*http.Response, error) {
	if st.saved != nil {
		*st.saved = req
	}

	if st.body != nil {
		*st.body = ReadBody(req)
	}

	if st.err != nil {
		return nil, st.err
	}

	status := st.status
	if status == 0 {
		status = http.StatusOK
	}

	return SetHeader(BuildResponseString(status, st.content), "Content-Type", "application/json"), nil
}

func HttpClientFromFile(filename string) *http.Client {
	rawBytes, err := os.ReadFile(filename)
	return &http.Client{Transport: &EchoSave{err: err, content: string(rawBytes)}}
}

func HttpClientWithContent(content string) *http.Client {
	return &http.Client{Transport: &EchoSave{content: content}}
}

func HttpClientWithStatus(status int, content string) *http.Client {
	return &http.Client{Transport: &EchoSave{status: status, content: content}}
}

func HttpClientWithError(err error) *http.Client {
	return &http.Client{Transport: &EchoSave{err: err}}
}

// HttpClientSaver stores the last request in saved and its body in body.
func HttpClientSaver(saved **http.Request, body *string, content string) *http.Client {
	return &http.Client{Transport: &EchoSave{saved: saved, body: body, content: content}}
}
