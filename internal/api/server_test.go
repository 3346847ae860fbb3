package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"newswatch/internal/api"
	"newswatch/internal/crawler"
	"newswatch/internal/store/memory"
)

// unreachableStore fails every Ping.
type unreachableStore struct {
	*memory.Store
}

func (unreachableStore) Ping(context.Context) error {
	return errors.New("connection refused")
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(api.NewServer(memory.New(), zap.NewNop()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReadyzReady(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(api.NewServer(memory.New(), zap.NewNop()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReadyzStoreUnreachable(t *testing.T) {
	t.Parallel()

	var store crawler.Store = unreachableStore{memory.New()}
	srv := httptest.NewServer(api.NewServer(store, zap.NewNop()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsExposed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(api.NewServer(memory.New(), zap.NewNop()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
