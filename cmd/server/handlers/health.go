package handlers

import (
	"context"
	"time"

	"notes-backend/internal/clients/sqldb"

	"github.com/gofiber/fiber/v2"
)

const HealthzTimeout = 5 * time.Second

// Root is the plain liveness endpoint at GET /.
// @Summary Health check
// @Description Returns a static healthy payload
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Healthy",
	})
}

// Healthz reports readiness, including a live database ping. Intended for
// container healthchecks (see cmd/ping).
// @Summary Readiness check
// @Description Check if the server and its database are healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func Healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), HealthzTimeout)
	defer cancel()

	if err := sqldb.Ping(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "down",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
