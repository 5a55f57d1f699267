package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the registry endpoints, all behind requireAuth. The
// guard is attached per route because /api/v1/clients/:id/proposals belongs
// to the proposal routes.
func RegisterRoutes(app *fiber.App, h *ClientHandler, requireAuth fiber.Handler) {
	app.Get("/api/v1/clients", requireAuth, h.ListClients)
	app.Post("/api/v1/clients", requireAuth, h.CreateClient)
	app.Get("/api/v1/clients/:id", requireAuth, h.GetClient)
	app.Put("/api/v1/clients/:id", requireAuth, h.UpdateClient)
	app.Delete("/api/v1/clients/:id", requireAuth, h.DeleteClient)
	app.Get("/api/v1/clients/:id/legal-entities", requireAuth, h.ListClientLegalEntities)

	entities := app.Group("/api/v1/legal-entities", requireAuth)
	entities.Get("/", h.ListLegalEntities)
	entities.Post("/", h.CreateLegalEntity)
	entities.Get("/:id", h.GetLegalEntity)
	entities.Put("/:id", h.UpdateLegalEntity)
	entities.Delete("/:id", h.DeleteLegalEntity)
}
