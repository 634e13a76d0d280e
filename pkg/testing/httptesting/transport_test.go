package httptesting

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestMockTransport(t *testing.T) {
	transport := &MockTransport{}
	transport.GET("/ping", func(req *http.Request) (*http.Response, error) {
		return BuildResponseString(http.StatusOK, `{"code":0}`), nil
	})

	client := &http.Client{Transport: transport}

	resp, err := client.Get("https://example.com/ping?x=1")
	require.NoError(t, err)
	assert.Equal(t, `{"code":0}`, readAll(t, resp))
	require.Len(t, transport.Requests, 1)
	assert.Equal(t, "x=1", transport.Requests[0].URL.RawQuery)

	_, err = client.Get("https://example.com/pong")
	assert.Error(t, err)

	_, err = client.Post("https://example.com/ping", "text/plain", nil)
	assert.Error(t, err)
}

func TestMockWithJsonReply(t *testing.T) {
	client := MockWithJsonReply("/v1/data", map[string]int{"code": 0})
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPut} {
		req, err := http.NewRequest(method, "https://example.com/v1/data", nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"code":0}`, readAll(t, resp), method)
	}
}

func TestResponseHeaders(t *testing.T) {
	resp := BuildResponseJson(http.StatusOK, []byte(`{}`))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp = SetHeader(resp, "X-Test", "1")
	assert.Equal(t, "1", resp.Header.Get("X-Test"))

	resp = DeleteHeader(resp, "X-Test")
	assert.Empty(t, resp.Header.Get("X-Test"))
}

func TestHttpClientFromFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "reply.json")
	require.NoError(t, os.WriteFile(filename, []byte(`{"code":0,"data":{}}`), 0644))

	resp, err := HttpClientFromFile(filename).Get("https://example.com/any")
	require.NoError(t, err)
	assert.Equal(t, `{"code":0,"data":{}}`, readAll(t, resp))

	_, err = HttpClientFromFile(filepath.Join(t.TempDir(), "missing.json")).Get("https://example.com/any")
	assert.Error(t, err)
}

func TestHttpClientSaver(t *testing.T) {
	var saved *http.Request
	var body string

	client := HttpClientSaver(&saved, &body, `{"code":0}`)
	resp, err := client.Post("https://example.com/order", "application/x-www-form-urlencoded", strings.NewReader("a=1&b=2"))
	require.NoError(t, err)
	assert.Equal(t, `{"code":0}`, readAll(t, resp))

	require.NotNil(t, saved)
	assert.Equal(t, "/order", saved.URL.Path)
	assert.Equal(t, "a=1&b=2", body)

	// the body can be read again after it was saved
	assert.Equal(t, "a=1&b=2", ReadBody(saved))
}

func TestRecorder(t *testing.T) {
	live := &MockTransport{}
	live.POST("/openApi/swap/v2/trade/order", func(req *http.Request) (*http.Response, error) {
		return BuildResponseString(http.StatusOK, `{"code":0,"data":{"order":{"orderId":1}}}`), nil
	})

	recorder := NewRecorder(live)
	client := &http.Client{Transport: recorder}

	req, err := http.NewRequest(http.MethodPost, "https://open-api.bingx.com/openApi/swap/v2/trade/order?apiKey=k", strings.NewReader("symbol=BTC-USDT&timestamp=1&signature=abcdef"))
	require.NoError(t, err)
	req.Header.Set("X-BX-APIKEY", "key")
	req.Header.Set("User-Agent", "test")

	resp, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, `{"code":0,"data":{"order":{"orderId":1}}}`, readAll(t, resp))

	entries := recorder.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "symbol=BTC-USDT&timestamp=1&signature=***", entries[0].Request.Body)
	assert.Contains(t, entries[0].Request.URL, "apiKey=***")
	assert.Empty(t, entries[0].Request.Header.Get("X-BX-APIKEY"))
	assert.Equal(t, "test", entries[0].Request.Header.Get("User-Agent"))

	filename := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, recorder.Save(filename))

	loaded := NewRecorder(nil)
	require.NoError(t, loaded.Load(filename))

	replay := &MockTransport{}
	require.NoError(t, replay.LoadFromRecorder(loaded))

	resp, err = (&http.Client{Transport: replay}).Post("https://open-api.bingx.com/openApi/swap/v2/trade/order", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"code":0,"data":{"order":{"orderId":1}}}`, readAll(t, resp))
}
