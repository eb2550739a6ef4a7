package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/training-marketplace/internal/api/dto"
	"github.com/spec-kit/training-marketplace/internal/auth"
	"github.com/spec-kit/training-marketplace/internal/catalog"
	"github.com/spec-kit/training-marketplace/internal/service"
	"github.com/spec-kit/training-marketplace/pkg/errorutil"
)

// DashboardHandler renders the landing view of the signed in role.
type DashboardHandler struct {
	catalog *service.CatalogService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(catalog *service.CatalogService) *DashboardHandler {
	return &DashboardHandler{catalog: catalog}
}

// Show GET /dashboard.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("authentication required")
	}
	dashboard, err := h.catalog.Dashboard(principal.User, parseQuery(c, true))
	if err != nil {
		return errorutil.NewForbidden(err.Error())
	}

	switch d := dashboard.(type) {
	case catalog.AdminDashboard:
		return c.JSON(fiber.Map{"data": dto.AdminDashboardResponse{
			Role:      d.Role(),
			Stats:     d.Stats,
			Pending:   dto.NewEventList(d.Pending),
			Events:    dto.NewEventList(d.All),
			Providers: dto.NewUserList(d.Providers),
		}})
	case catalog.ProviderDashboard:
		return c.JSON(fiber.Map{"data": dto.ProviderDashboardResponse{
			Role:    d.Role(),
			Stats:   d.Stats,
			Active:  dto.NewEventList(d.Active),
			Pending: dto.NewEventList(d.Pending),
			Events:  dto.NewEventList(d.All),
		}})
	case catalog.StudentDashboard:
		return c.JSON(fiber.Map{"data": dto.StudentDashboardResponse{
			Role:       d.Role(),
			Stats:      d.Stats,
			Events:     dto.NewEventList(d.Browse),
			Categories: d.Categories,
			Providers:  d.Providers,
		}})
	default:
		return errorutil.NewInternalError(fmt.Errorf("unhandled dashboard %T", dashboard))
	}
}
