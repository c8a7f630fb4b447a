package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakeshkurk50/EndWebsite/internal/core/ports"
)

// db state values reported by /health, mirroring what deployment tooling
// expects: a record is either reachable or it is not.
const (
	dbStateConnected    = "connected"
	dbStateDisconnected = "disconnected"
)

// HealthHandler handles GET /health — a deployment diagnostic that reports
// storage connectivity alongside the running environment.
type HealthHandler struct {
	repo ports.UserRepository
	env  string
}

func NewHealthHandler(repo ports.UserRepository, env string) *HealthHandler {
	return &HealthHandler{repo: repo, env: env}
}

type healthResponse struct {
	OK      bool   `json:"ok"`
	DBState string `json:"dbState"`
	Env     string `json:"env"`
}

// Health handles GET /health.
//
// @Summary      Service health and storage connectivity
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	state := dbStateConnected
	if err := h.repo.Ping(ctx); err != nil {
		state = dbStateDisconnected
	}

	return c.JSON(http.StatusOK, healthResponse{
		OK:      true,
		DBState: state,
		Env:     h.env,
	})
}
