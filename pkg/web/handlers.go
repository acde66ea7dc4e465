package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/pageforge/pageforge/pkg/binding"
	"github.com/pageforge/pageforge/pkg/builder"
	"github.com/pageforge/pageforge/pkg/engine"
	"github.com/pageforge/pageforge/pkg/eventbus"
	"github.com/pageforge/pageforge/pkg/events"
	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/page"
	"github.com/pageforge/pageforge/pkg/palette"
	"github.com/pageforge/pageforge/pkg/persistence"
	"github.com/pageforge/pageforge/pkg/protocol"
	"github.com/pageforge/pageforge/pkg/registry"
	"github.com/pageforge/pageforge/pkg/render"
)

type APIHandlers struct {
	persistence persistence.Persistence
	registry    *registry.Registry
	engine      *engine.Engine
	renderer    *render.Renderer
	resolver    *binding.Resolver
	bus         eventbus.EventBus
	validator   *validator.Validate
	queries     protocol.QueryExecutor
	api         protocol.APIClient
	variables   protocol.VariableStore
	logger      *slog.Logger
}

func NewAPIHandlers(
	persistence persistence.Persistence,
	reg *registry.Registry,
	eng *engine.Engine,
	renderer *render.Renderer,
	resolver *binding.Resolver,
	bus eventbus.EventBus,
	validate *validator.Validate,
	queries protocol.QueryExecutor,
	api protocol.APIClient,
	variables protocol.VariableStore,
	logger *slog.Logger,
) *APIHandlers {
	return &APIHandlers{
		persistence: persistence,
		registry:    reg,
		engine:      eng,
		renderer:    renderer,
		resolver:    resolver,
		bus:         bus,
		validator:   validate,
		queries:     queries,
		api:         api,
		variables:   variables,
		logger:      logger.With("module", "web"),
	}
}

// Register mounts every route on the app.
func (h *APIHandlers) Register(app *fiber.App) {
	app.Get("/health", h.HealthCheck)
	app.Get("/palette", h.GetPalette)
	app.Get("/actions", h.GetActions)

	app.Post("/pages", h.SavePage)
	app.Get("/pages", h.ListPages)
	app.Get("/pages/:id", h.GetPage)
	app.Delete("/pages/:id", h.DeletePage)
	app.Post("/pages/:id/render", h.RenderPage)

	app.Post("/apps/:appID/events", h.FireEvent)
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	err := h.persistence.HealthCheck(c.Context())

	status := "healthy"
	httpStatus := http.StatusOK

	if err != nil {
		status = "unhealthy"
		httpStatus = http.StatusInternalServerError
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now().UTC(),
	})
}

func (h *APIHandlers) GetPalette(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"entries":    palette.Entries(),
		"categories": palette.Categories(),
	})
}

func (h *APIHandlers) GetActions(c fiber.Ctx) error {
	return c.JSON(h.registry.Components())
}

func (h *APIHandlers) SavePage(c fiber.Ctx) error {
	var req SavePageRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	def := req.Definition
	def.Name = req.Name

	if req.PageID != "" {
		def.PageID = req.PageID
	}

	if def.PageID == "" {
		return badRequest(c, "pageId is required in the request or the definition")
	}

	data, err := page.Encode(def)
	if err != nil {
		return internalError(c, err)
	}

	if err := page.ValidateDocument(data); err != nil {
		return badRequest(c, err.Error())
	}

	stored := &models.Page{
		ID:         def.PageID,
		Name:       req.Name,
		Definition: string(data),
	}

	if err := h.persistence.SavePage(c.Context(), req.AppID, stored); err != nil {
		return handlePersistenceError(c, err)
	}

	h.publishSaved(c, req.AppID, def)

	return c.Status(fiber.StatusCreated).JSON(stored)
}

func (h *APIHandlers) ListPages(c fiber.Ctx) error {
	appID := c.Query("app_id")
	if appID == "" {
		return badRequest(c, "app_id query parameter is required")
	}

	pages, err := h.persistence.Pages(c.Context(), appID)
	if err != nil {
		return handlePersistenceError(c, err)
	}

	summaries := make([]PageSummary, 0, len(pages))
	for _, p := range pages {
		summaries = append(summaries, PageSummary{ID: p.ID, Name: p.Name})
	}

	return c.JSON(fiber.Map{"pages": summaries})
}

func (h *APIHandlers) GetPage(c fiber.Ctx) error {
	appID := c.Query("app_id")
	if appID == "" {
		return badRequest(c, "app_id query parameter is required")
	}

	stored, err := h.persistence.PageByID(c.Context(), appID, c.Params("id"))
	if err != nil {
		return handlePersistenceError(c, err)
	}

	return c.JSON(stored)
}

func (h *APIHandlers) DeletePage(c fiber.Ctx) error {
	appID := c.Query("app_id")
	if appID == "" {
		return badRequest(c, "app_id query parameter is required")
	}

	if err := h.persistence.DeletePage(c.Context(), appID, c.Params("id")); err != nil {
		return handlePersistenceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) RenderPage(c fiber.Ctx) error {
	appID := c.Query("app_id")
	if appID == "" {
		return badRequest(c, "app_id query parameter is required")
	}

	mode := render.Mode(c.Query("mode", string(render.ModePublished)))

	switch mode {
	case render.ModeEdit, render.ModePreview, render.ModePublished:
	default:
		return badRequest(c, "mode must be edit, preview or published")
	}

	stored, err := h.persistence.PageByID(c.Context(), appID, c.Params("id"))
	if err != nil {
		return handlePersistenceError(c, err)
	}

	def := render.DecodeStored(*stored, h.logger)

	// Resolve data bindings so bound widgets render with their data, not
	// their binding descriptor.
	if h.resolver != nil {
		session := builder.NewSession(appID)
		session.Replace(page.FromDefinition(def))

		binder := binding.NewBinder(session, h.resolver, h.logger)
		defer binder.Close()

		binder.Sync(c.Context())

		def.Widgets = session.Widgets()
	}

	return c.JSON(h.renderer.RenderPage(def, mode))
}

// FireEvent runs a widget's event chain server-side against the stored
// page and returns the surfaced side effects plus the resulting widget
// state.
func (h *APIHandlers) FireEvent(c fiber.Ctx) error {
	appID := c.Params("appID")

	var req FireEventRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	stored, err := h.persistence.PageByID(c.Context(), appID, req.PageID)
	if err != nil {
		return handlePersistenceError(c, err)
	}

	def := render.DecodeStored(*stored, h.logger)

	session := builder.NewSession(appID)
	session.Replace(page.FromDefinition(def))

	if _, ok := session.Widget(req.WidgetID); !ok {
		return notFound(c, "widget not found on page")
	}

	if h.resolver != nil {
		binder := binding.NewBinder(session, h.resolver, h.logger)
		defer binder.Close()

		binder.Sync(c.Context())
	}

	sink := newCollector()

	executionCtx := &protocol.ExecutionContext{
		PageID:    req.PageID,
		Widgets:   session,
		Variables: h.variables,
		Notifier:  sink,
		Navigator: sink,
		Queries:   h.queries,
		API:       h.api,
		Events:    h.engine,
	}

	if err := h.engine.FireEvent(c.Context(), executionCtx, req.WidgetID, req.Trigger); err != nil {
		return internalError(c, err)
	}

	return c.JSON(FireEventResponse{
		ExecutionID:   executionCtx.ID,
		Notifications: sink.notifications,
		NavigatedTo:   sink.navigatedTo,
		Widgets:       session.Widgets(),
	})
}

func (h *APIHandlers) publishSaved(c fiber.Ctx, appID string, def models.PageDefinition) {
	if h.bus == nil {
		return
	}

	saved := events.PageSaved{
		BaseEvent:   events.NewBaseEvent(events.PageSavedEvent, appID),
		PageID:      def.PageID,
		PageName:    def.Name,
		WidgetCount: len(def.Widgets),
	}

	if err := h.bus.Publish(c.Context(), appID, saved); err != nil {
		h.logger.Error("failed to publish page saved event", "error", err)
	}
}
