package main

import (
	"encoding/json"
	"log"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/routes/auth"
	"aquaclub/app/routes/clubs"
	"aquaclub/app/routes/dashboard"
	"aquaclub/app/routes/events"
	"aquaclub/app/routes/lanes"
	"aquaclub/app/routes/parents"
	"aquaclub/app/routes/records"
	"aquaclub/app/routes/subscriptions"
	"aquaclub/app/routes/swimmers"
	"aquaclub/app/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders JSON for API requests and error pages otherwise
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - AquaClub",
			"CurrentPage": "",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - AquaClub",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - AquaClub",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Sweep overdue subscriptions once at startup
	if n, err := database.ExpireSubscriptions(config.GetDB()); err != nil {
		log.Printf("Failed to expire subscriptions: %v", err)
	} else if n > 0 {
		log.Printf("Marked %d subscriptions as expired", n)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(telemetry.Middleware())

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})
	app.Get("/metrics", telemetry.Handler())
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	clubs.SetupClubsRoutes(app)
	swimmers.SetupSwimmersRoutes(app)
	parents.SetupParentsRoutes(app)
	events.SetupEventsRoutes(app)
	lanes.SetupLanesRoutes(app)
	records.SetupRecordsRoutes(app)
	subscriptions.SetupSubscriptionsRoutes(app)

	addr := ":" + config.AppConfig.Port
	log.Printf("Server listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
