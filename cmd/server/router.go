package main

import (
	"notes-backend/cmd/server/handlers"
	"notes-backend/cmd/server/handlers/httperr"
	notesHandlers "notes-backend/cmd/server/handlers/notes"
	"notes-backend/cmd/server/middlewares"
	"notes-backend/internal/clients/sqldb"
	"notes-backend/internal/config"
	"notes-backend/internal/logger"
	notesServices "notes-backend/internal/services/notes"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// setupRouter configures and returns a Fiber app with all routes
func setupRouter(cfg config.Config) *fiber.App {
	v := validator.New()

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Content-Type",
	}))

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app)
	}

	// Health endpoints stay outside the API group to avoid request logging
	app.Get("/", handlers.Root)
	app.Get("/healthz", handlers.Healthz)

	var api fiber.Router
	if cfg.RequestLoggingEnabled {
		api = app.Group("/api", fiberlogger.New())
		logger.L().Info("request logging enabled")
	} else {
		api = app.Group("/api")
		logger.L().Info("request logging disabled")
	}

	notesRepo := sqldb.NewNotesRepo(sqldb.DB())
	notesSvc := notesServices.NewService(notesRepo, logger.L())
	notesH := notesHandlers.NewHandlers(notesSvc, v)

	notesGrp := api.Group("/notes")
	notesGrp.Post("/", notesH.Create)
	notesGrp.Get("/", notesH.List)
	notesGrp.Get("/:id", notesH.Get)
	notesGrp.Put("/:id", notesH.Update)
	notesGrp.Delete("/:id", notesH.Delete)

	return app
}
