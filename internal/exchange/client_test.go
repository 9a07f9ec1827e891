package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchUSDToEUR(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","date":"2025-07-08","rates":{"USD":1,"EUR":0.912345,"GBP":0.78}}`))
	}))
	t.Cleanup(srv.Close)

	rate, err := NewClient(srv.URL+"/", time.Second).FetchUSDToEUR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.9123", rate.String())
}

func TestClient_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"missing eur", http.StatusOK, `{"rates":{"GBP":0.78}}`},
		{"zero eur", http.StatusOK, `{"rates":{"EUR":0}}`},
		{"malformed", http.StatusOK, `{"rates":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			_, err := NewClient(srv.URL, time.Second).FetchUSDToEUR(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	_, err := NewClient(srv.URL, 50*time.Millisecond).FetchUSDToEUR(context.Background())
	assert.Error(t, err)
}
