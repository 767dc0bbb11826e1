package handlers

import "github.com/gofiber/fiber/v2"

// HealthHandler handles health check requests
type HealthHandler struct {
	Version     string
	StorageMode string // "memory" or "database"
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version, storageMode string) *HealthHandler {
	return &HealthHandler{
		Version:     version,
		StorageMode: storageMode,
	}
}

// Check returns the health status of the service
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "OK",
		"service": "Vendly Backend",
		"version": h.Version,
		"storage": h.StorageMode,
	})
}
