package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/xstrengthofonex/edustudio/app/config"
	"github.com/xstrengthofonex/edustudio/app/fixtures"
	"github.com/xstrengthofonex/edustudio/app/routes/students"
)

// errorHandler renders error pages for web requests. Not-found
// outcomes get the dedicated 404 template.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("404", fiber.Map{
			"Title":       "Page Not Found - EduStudio",
			"CurrentPage": "",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - EduStudio",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorMessage": err.Error(),
		})
	}
}

// New assembles the fiber application: template engine, middleware,
// static assets and routes. The fixture store is injected so tests can
// run against their own datasets.
func New(cfg *config.Config, store *fixtures.Store) *fiber.App {
	engine := html.New(cfg.TemplatesDir, ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Static files
	app.Static("/static", cfg.StaticDir)

	// Routes
	app.Get("/", HomePage)
	students.SetupStudentsRoutes(app, store)

	return app
}

// HomePage renders the landing page.
func HomePage(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title":       "EduStudio",
		"CurrentPage": "home",
	})
}
