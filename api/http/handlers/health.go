package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/prepai/api/http/presenter"
	"github.com/artem13815/prepai/pkg/health"
)

const readinessTimeout = 2 * time.Second

type HealthHandler struct {
	svc health.ReadinessUseCase
}

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{svc: svc}
}

type readinessResponse struct {
	Status string        `json:"status"`
	Checks health.Report `json:"checks"`
}

// Health reports that the process is up; it touches no dependency.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ok"})
}

// Ready probes Postgres and, when configured, Redis.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} readinessResponse
// @Failure 503 {object} readinessResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readinessTimeout)
	defer cancel()
	report, err := h.svc.Ready(ctx)
	if err != nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, readinessResponse{Status: "not_ready", Checks: report})
	}
	return presenter.JSON(c, http.StatusOK, readinessResponse{Status: "ready", Checks: report})
}
