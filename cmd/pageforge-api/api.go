// Package main provides the PageForge API server implementation.
package main

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/pageforge/pageforge/pkg/binding"
	"github.com/pageforge/pageforge/pkg/engine"
	"github.com/pageforge/pageforge/pkg/eventbus"
	"github.com/pageforge/pageforge/pkg/gateway"
	"github.com/pageforge/pageforge/pkg/otelhelper"
	"github.com/pageforge/pageforge/pkg/persistence"
	"github.com/pageforge/pageforge/pkg/protocol"
	"github.com/pageforge/pageforge/pkg/registry"
	"github.com/pageforge/pageforge/pkg/render"
	"github.com/pageforge/pageforge/pkg/variables"
	"github.com/pageforge/pageforge/pkg/web"
)

// Config carries the API server's external endpoints.
type Config struct {
	GatewayURL    string
	GatewayToken  string
	RedisURL      string
	EnableTracing bool
}

type API struct {
	logger      *slog.Logger
	persistence persistence.Persistence
	registry    *registry.Registry
	eventBus    eventbus.EventBus
	validate    *validator.Validate
	engine      *engine.Engine
	renderer    *render.Renderer
	resolver    *binding.Resolver
	gateway     *gateway.Client
	variables   protocol.VariableStore
}

func NewAPI(
	ctx context.Context,
	logger *slog.Logger,
	persistence persistence.Persistence,
	registry *registry.Registry,
	eventBus eventbus.EventBus,
	config Config,
) (*API, error) {
	engineOpts := []engine.Option{engine.WithEventBus(eventBus)}

	if config.EnableTracing {
		tracer, err := otelhelper.NewTracer(ctx, "pageforge-api")
		if err != nil {
			return nil, err
		}

		engineOpts = append(engineOpts, engine.WithTracer(tracer))
	}

	var varStore protocol.VariableStore = variables.NewMemoryStore()

	if config.RedisURL != "" {
		store, err := variables.NewRedisStore(config.RedisURL, "pageforge")
		if err != nil {
			return nil, err
		}

		varStore = store
	}

	gw := gateway.NewClient(config.GatewayURL, config.GatewayToken, logger)

	return &API{
		persistence: persistence,
		logger:      logger,
		registry:    registry,
		eventBus:    eventBus,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		engine:      engine.NewEngine(registry, logger, engineOpts...),
		renderer:    render.NewRenderer(logger),
		resolver:    binding.NewResolver(gw, gw, logger),
		gateway:     gw,
		variables:   varStore,
	}, nil
}

func (a *API) App() *fiber.App {
	handlers := web.NewAPIHandlers(
		a.persistence,
		a.registry,
		a.engine,
		a.renderer,
		a.resolver,
		a.eventBus,
		a.validate,
		a.gateway,
		a.gateway,
		a.variables,
		a.logger,
	)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("PageForge API")
	})

	handlers.Register(app)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}
