package events

import (
	"log"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/models"
	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupEventsRoutes sets up events routes
func SetupEventsRoutes(app *fiber.App) {
	// Page routes
	app.Get("/events", auth.AuthMiddleware, renderEventsPage)

	// API routes
	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetEventsAPI)
	api.Get("/:id", GetEventAPI)
	api.Get("/:id/lane-coaches", GetLaneCoachesAPI)

	staff := auth.RoleMiddleware(models.RoleClub, models.RoleAdmin, models.RoleTeacher)
	api.Post("/", staff, CreateEventAPI)
	api.Put("/:id", staff, UpdateEventAPI)
	api.Delete("/:id", staff, DeleteEventAPI)
	api.Post("/:id/heats", staff, SetupHeatsAPI)
}

type EventGroup struct {
	Month  string
	Events []models.Event
}

func renderEventsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	clubID := ""
	if user.HasRole(models.RoleClub) && user.ClubID != nil {
		clubID = *user.ClubID
	}

	events, err := database.GetEvents(config.GetDB(), clubID)

	errorMsg := ""
	if err != nil {
		log.Printf("Error fetching events: %v", err)
		errorMsg = err.Error()
	}

	// Group events by Month Year
	var eventGroups []EventGroup
	currentMonth := ""
	var currentGroup *EventGroup
	for _, event := range events {
		monthYear := event.StartDate.Format("January 2006")
		if monthYear != currentMonth {
			if currentGroup != nil {
				eventGroups = append(eventGroups, *currentGroup)
			}
			currentMonth = monthYear
			currentGroup = &EventGroup{
				Month:  monthYear,
				Events: []models.Event{event},
			}
		} else {
			currentGroup.Events = append(currentGroup.Events, event)
		}
	}
	if currentGroup != nil {
		eventGroups = append(eventGroups, *currentGroup)
	}

	return c.Render("events/index", fiber.Map{
		"Title":        "Events - AquaClub",
		"CurrentPage":  "events",
		"User":         user,
		"EventGroups":  eventGroups,
		"Events":       events,
		"HasEvents":    len(events) > 0,
		"ErrorMessage": errorMsg,
	})
}
