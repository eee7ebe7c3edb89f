package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"dad-circles-backend/internal/api/handlers"
	"dad-circles-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	failing := testutils.SetupHTTPTest()
	h := handlers.NewHealthHandler(nil).WithCheck("redis", func(ctx context.Context) error {
		return errors.New("connection refused")
	})
	failing.Router.GET("/health", h.Health)
	failing.Router.GET("/health/ready", h.Ready)
	failing.Router.GET("/health/live", h.Live)

	healthy := testutils.SetupHTTPTest()
	ok := handlers.NewHealthHandler(nil).WithCheck("redis", func(ctx context.Context) error { return nil })
	healthy.Router.GET("/health", ok.Health)

	t.Run("unhealthy dependency", func(t *testing.T) {
		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, failing.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Contains(t, resp.Services["redis"], "connection refused")
	})

	t.Run("not ready", func(t *testing.T) {
		var resp map[string]interface{}
		testutils.AssertJSONResponse(t, failing.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &resp)
		assert.Equal(t, false, resp["ready"])
	})

	t.Run("live regardless of dependencies", func(t *testing.T) {
		testutils.AssertJSONResponse(t, failing.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, nil)
	})

	t.Run("healthy", func(t *testing.T) {
		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, healthy.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &resp)
		assert.Equal(t, "healthy", resp.Services["redis"])
	})
}
