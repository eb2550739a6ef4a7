package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/training-marketplace/internal/api/dto"
	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/service"
)

// AdminHandler serves moderation endpoints.
type AdminHandler struct {
	events  *service.EventService
	catalog *service.CatalogService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(events *service.EventService, catalog *service.CatalogService) *AdminHandler {
	return &AdminHandler{events: events, catalog: catalog}
}

// AllEvents GET /admin/events.
func (h *AdminHandler) AllEvents(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewEventList(h.catalog.AllEvents())})
}

// PendingEvents GET /admin/events/pending.
func (h *AdminHandler) PendingEvents(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewEventList(h.catalog.PendingEvents())})
}

// Providers GET /admin/providers.
func (h *AdminHandler) Providers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewUserList(h.catalog.Providers())})
}

// Approve POST /admin/events/:id/approve.
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, domain.EventStatusApproved)
}

// Reject POST /admin/events/:id/reject.
func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, domain.EventStatusRejected)
}

// decide applies the status. Unknown ids are accepted silently, matching the
// service's no-op behaviour.
func (h *AdminHandler) decide(c *fiber.Ctx, status domain.EventStatus) error {
	id, err := parseEventID(c)
	if err != nil {
		return err
	}
	if err := h.events.SetEventStatus(c.UserContext(), id, status); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
