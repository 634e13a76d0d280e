package httptesting

import (
	"net/http"
	"os"
	"testing"
)

var AlwaysRecord = false

// RunHttpTestWithRecorder replays recordFile through the client. With
// TEST_HTTP_RECORD=1 the live responses are recorded into recordFile instead, the
// returned function saves them.
func RunHttpTestWithRecorder(t *testing.T, client *http.Client, recordFile string) (bool, func()) {
	recorder := NewRecorder(http.DefaultTransport)

	if os.Getenv("TEST_HTTP_RECORD") == "1" || AlwaysRecord {
		client.Transport = recorder
		return true, func() {
			if err := recorder.Save(recordFile); err != nil {
				t.Errorf("failed to save recorded requests: %v", err)
			}
		}
	}

	if err := recorder.Load(recordFile); err != nil {
		t.Fatalf("failed to load recorded requests: %v", err)
	}

	mockTransport := &MockTransport{}
	if err := mockTransport.LoadFromRecorder(recorder); err != nil {
		t.Fatalf("failed to load recordings: %v", err)
	}

	client.Transport = mockTransport
	return false, func() {}
}
