package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newExec(client *http.Client, errorHandler func(int, []byte) error) *Executor {
	return New(zap.NewNop(), client, "test", errorHandler)
}

func newRequest(t *testing.T, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)
	return req
}

func TestDoJSON_DecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"value": 42}`))
	}))
	defer srv.Close()

	var out struct {
		Value int `json:"value"`
	}
	err := newExec(srv.Client(), nil).DoJSON(newRequest(t, srv.URL), &out)
	require.NoError(t, err)
	assert.Equal(t, 42, out.Value)
}

func TestDoJSON_DefaultErrorOn4xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newExec(srv.Client(), nil).DoJSON(newRequest(t, srv.URL), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test returned 404")
}

func TestDoJSON_ErrorHandlerReceivesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"reason": "bad symbol"}`))
	}))
	defer srv.Close()

	exec := newExec(srv.Client(), func(status int, body []byte) error {
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Contains(t, string(body), "bad symbol")
		return fmt.Errorf("upstream rejected request")
	})

	err := exec.DoJSON(newRequest(t, srv.URL), nil)
	require.Error(t, err)
	assert.Equal(t, "upstream rejected request", err.Error())
}

func TestDoJSON_SingleAttemptOn5xx(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newExec(srv.Client(), nil).DoJSON(newRequest(t, srv.URL), nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoJSON_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"value":`))
	}))
	defer srv.Close()

	var out map[string]any
	err := newExec(srv.Client(), nil).DoJSON(newRequest(t, srv.URL), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode failed")
}
