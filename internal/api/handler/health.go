package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medconnect/portal-api/internal/core/ports"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready. Everything this service
// depends on lives in process memory, so readiness reports component
// presence and the live session count rather than pinging external systems.
type ReadinessHandler struct {
	sessions ports.SessionStore
}

func NewReadinessHandler(sessions ports.SessionStore) *ReadinessHandler {
	return &ReadinessHandler{sessions: sessions}
}

type readinessResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	return c.JSON(http.StatusOK, readinessResponse{
		Status:   "ok",
		Sessions: h.sessions.Len(),
	})
}
