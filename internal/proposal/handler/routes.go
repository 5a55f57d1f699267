package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the proposal endpoints. Every route requires
// requireAuth; approval decisions additionally require requireApprover.
func RegisterRoutes(app *fiber.App, h *ProposalHandler, requireAuth, requireApprover fiber.Handler) {
	app.Get("/api/v1/clients/:id/proposals", requireAuth, h.ListByClient)

	proposals := app.Group("/api/v1/proposals", requireAuth)
	proposals.Get("/", h.List)
	proposals.Post("/", h.Create)
	proposals.Get("/:id", h.Get)
	proposals.Put("/:id", h.Update)
	proposals.Delete("/:id", h.Delete)
	proposals.Get("/:id/totals", h.Totals)
	proposals.Get("/:id/validation", h.Validate)
	proposals.Patch("/:id/status", h.ChangeStatus)
	proposals.Patch("/:id/pdf", h.UpdatePDFStatus)
	proposals.Post("/:id/approve", requireApprover, h.Approve)
	proposals.Post("/:id/reject", requireApprover, h.Reject)
}
