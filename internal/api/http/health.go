package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neighborswap/proposal-exchange/internal/platform/metrics"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Upstream  *metrics.Snapshot `json:"upstream,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	metrics     *metrics.Metrics
}

// NewHealthHandler creates the health handler. m may be nil, in which case
// upstream call counters are left out of the response.
func NewHealthHandler(serviceName, version string, m *metrics.Metrics) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		metrics:     m,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
	}
	if h.metrics != nil {
		snap := h.metrics.Snapshot()
		resp.Upstream = &snap
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
