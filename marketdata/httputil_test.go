package marketdata

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// closeRecorder flags when the wrapped response body gets closed.
type closeRecorder struct {
	io.ReadCloser
	closed *bool
}

func (c closeRecorder) Close() error {
	*c.closed = true
	return c.ReadCloser.Close()
}

type recordingTransport struct {
	base   http.RoundTripper
	closed *bool
}

func (t recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if resp != nil {
		resp.Body = closeRecorder{resp.Body, t.closed}
	}
	return resp, err
}

func TestJwget_ClosesBodyOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	closed := false
	client := &http.Client{Transport: recordingTransport{http.DefaultTransport, &closed}}

	var jobj any
	if err := jwget(client, srv.URL, &jobj); err == nil {
		t.Fatal("jwget() accepted a 500 response")
	}
	if !closed {
		t.Error("jwget() left the response body open")
	}
}
