package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours-admin/pkg/utils"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(utils.UpstreamConfig{})
	assert.Error(t, err)
}

func TestDo_PassesThroughStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/transfers":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"transfers":[{"id":"t1"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		}
	}))
	defer srv.Close()

	client, err := NewClient(utils.UpstreamConfig{BaseURL: srv.URL, TimeoutSeconds: 2})
	require.NoError(t, err)
	defer client.Close()

	res, err := client.Do(context.Background(), http.MethodGet, "/api/transfers", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `{"transfers":[{"id":"t1"}]}`, string(res.Body))

	// non-2xx is a result, not a Go error
	res, err = client.Do(context.Background(), http.MethodDelete, "/api/bookings/nope", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.JSONEq(t, `{"error":"not found"}`, string(res.Body))
}

func TestDo_ForwardsBodyAndHeaders(t *testing.T) {
	var gotBody []byte
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, err := NewClient(utils.UpstreamConfig{BaseURL: srv.URL, TimeoutSeconds: 2})
	require.NoError(t, err)
	defer client.Close()

	headers := map[string]string{"Authorization": "Bearer tok"}
	_, err = client.Do(context.Background(), http.MethodPatch, "/api/transfers/t1/status",
		map[string]string{"status": "sold"}, headers)
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"sold"}`, string(gotBody))
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestDo_NetworkFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(utils.UpstreamConfig{BaseURL: srv.URL, TimeoutSeconds: 1})
	require.NoError(t, err)
	defer client.Close()

	srv.Close()

	_, err = client.Do(context.Background(), http.MethodGet, "/api/transfers", nil, nil)
	assert.Error(t, err)
}
