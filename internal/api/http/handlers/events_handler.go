package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/training-marketplace/internal/api/dto"
	"github.com/spec-kit/training-marketplace/internal/auth"
	"github.com/spec-kit/training-marketplace/internal/catalog"
	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/service"
	"github.com/spec-kit/training-marketplace/pkg/errorutil"
)

// EventsHandler serves catalog browsing and provider submissions.
type EventsHandler struct {
	events  *service.EventService
	catalog *service.CatalogService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(events *service.EventService, catalog *service.CatalogService) *EventsHandler {
	return &EventsHandler{events: events, catalog: catalog}
}

// Browse GET /events.
func (h *EventsHandler) Browse(c *fiber.Ctx) error {
	events := h.catalog.Browse(parseQuery(c, false))
	return c.JSON(fiber.Map{
		"data":  dto.NewEventList(events),
		"stats": h.catalog.PublicStats(),
	})
}

// Expired GET /events/expired.
func (h *EventsHandler) Expired(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewEventList(h.catalog.ExpiredEvents())})
}

// GetEvent GET /events/:id.
func (h *EventsHandler) GetEvent(c *fiber.Ctx) error {
	id, err := parseEventID(c)
	if err != nil {
		return err
	}
	view, err := h.catalog.Event(id)
	if errors.Is(err, domain.ErrEventNotFound) {
		return errorutil.NewNotFound("event", map[string]any{"id": id})
	}
	if err != nil {
		return errorutil.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": dto.EventDetailResponse{
		EventResponse: dto.NewEventResponse(view.Event),
		Expired:       view.Expired,
		Full:          view.Full,
		CanEnroll:     view.CanEnroll,
	}})
}

// CreateEvent POST /provider/events.
func (h *EventsHandler) CreateEvent(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("provider required")
	}
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if errs := req.Validate(h.catalog.Now()); len(errs) > 0 {
		return errorutil.NewValidationError("please fix the errors in the form", errs)
	}

	event := h.events.CreateEvent(c.UserContext(), req.ToDraft(), principal.User)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEventResponse(event)})
}

// MyEvents GET /provider/events.
func (h *EventsHandler) MyEvents(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("provider required")
	}
	events := h.catalog.EventsByProvider(principal.User.Email)
	return c.JSON(fiber.Map{"data": dto.NewEventList(events)})
}

func parseEventID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, errorutil.NewValidationError("invalid event id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

// parseQuery reads ?search= and ?type=. A missing type means every type.
func parseQuery(c *fiber.Ctx, matchCategory bool) catalog.Query {
	eventType := domain.EventType(c.Query("type"))
	if eventType == "" {
		eventType = domain.EventTypeAll
	}
	return catalog.Query{
		Term:          c.Query("search"),
		Type:          eventType,
		MatchCategory: matchCategory,
	}
}
