package health

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// DBPinger is optional for the health check. If nil, the database is
// reported as disconnected.
type DBPinger interface {
	Ping() error
}

// DepStatus is one dependency's health entry.
type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

// Handlers serves the health endpoint.
type Handlers struct {
	DB  DBPinger
	Rdb *redis.Client
}

// JSON GET /health/json — ping DB and Redis, report per-dependency status.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	deps := map[string]DepStatus{
		"database": h.pingDB(),
		"redis":    h.pingRedis(),
	}

	status := "ok"
	for _, d := range deps {
		if d.Status != "connected" {
			status = "degraded"
		}
	}
	return c.JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
	})
}

func (h *Handlers) pingDB() DepStatus {
	if h.DB == nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	start := time.Now()
	if err := h.DB.Ping(); err != nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	return DepStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}

func (h *Handlers) pingRedis() DepStatus {
	if h.Rdb == nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	start := time.Now()
	if err := h.Rdb.Ping(context.Background()).Err(); err != nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	return DepStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}
