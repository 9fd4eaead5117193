package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neighborswap/proposal-exchange/internal/platform/metrics"
	"github.com/neighborswap/proposal-exchange/internal/proposals/domain"
	"github.com/stretchr/testify/assert"
)

type stubExchanger struct{}

func (stubExchanger) Submit(context.Context, domain.Submission, domain.Credentials) error {
	return nil
}

func (stubExchanger) List(context.Context, domain.Filter, domain.Credentials) ([]domain.Proposal, error) {
	return nil, nil
}

func TestBuildRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := BuildRouter(RouterDeps{
		ServiceName:    "proposal-exchange",
		Version:        "test",
		Exchanger:      stubExchanger{},
		APIKey:         "anon-key",
		DefaultToken:   "anon-key",
		Metrics:        metrics.New(),
		AllowedOrigins: []string{"https://app.example"},
	})

	t.Run("health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	})

	t.Run("proposals", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/proposals", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/proposals", nil)
		req.Header.Set("Origin", "https://app.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"https://app.example"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://app.example"}, cfg.AllowOrigins)
}
