package events

import (
	"database/sql"
	"errors"
	"log"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetEventsAPI returns a list of events. CLUB accounts see their own club;
// admins can pass ?clubId= to narrow the list.
func GetEventsAPI(c *fiber.Ctx) error {
	clubID := c.Query("clubId")
	user := c.Locals("user").(*models.User)
	if user.HasRole(models.RoleClub) && user.ClubID != nil {
		clubID = *user.ClubID
	}

	events, err := database.GetEvents(config.GetDB(), clubID)
	if err != nil {
		log.Printf("Failed to fetch events: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch events",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
	})
}

// GetEventAPI returns one event.
func GetEventAPI(c *fiber.Ctx) error {
	event, err := database.GetEventByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Event not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch event",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}

// CreateEventAPI creates a new event
func CreateEventAPI(c *fiber.Ctx) error {
	event := new(models.Event)
	if err := c.BodyParser(event); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	user := c.Locals("user").(*models.User)
	if user.HasRole(models.RoleClub) && user.ClubID != nil {
		event.ClubID = *user.ClubID
	}
	if event.ClubID == "" || event.Title == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "club_id and title are required",
		})
	}

	if err := database.CreateEvent(config.GetDB(), event); err != nil {
		log.Printf("Failed to create event: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create event",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}

// UpdateEventAPI updates an existing event
func UpdateEventAPI(c *fiber.Ctx) error {
	event := new(models.Event)
	if err := c.BodyParser(event); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	event.ID = c.Params("id")

	if err := database.UpdateEvent(config.GetDB(), event); err != nil {
		log.Printf("Failed to update event %s: %v", event.ID, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update event",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event updated successfully",
	})
}

// DeleteEventAPI deletes an event
func DeleteEventAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.DeleteEvent(config.GetDB(), id); err != nil {
		log.Printf("Failed to delete event %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete event",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event deleted successfully",
	})
}

// GetLaneCoachesAPI returns the resolved lane-coach assignments for an
// event. This endpoint never fails: a missing event, malformed config or
// lookup error all come back as an empty list.
func GetLaneCoachesAPI(c *fiber.Ctx) error {
	laneCoaches := ResolveLaneCoaches(config.GetDB(), c.Params("id"))
	return c.JSON(fiber.Map{
		"success":     true,
		"laneCoaches": laneCoaches,
	})
}

// SetupHeatsAPI creates the lane grid for an event.
func SetupHeatsAPI(c *fiber.Ctx) error {
	type setupRequest struct {
		Heats        int `json:"heats"`
		LanesPerHeat int `json:"lanesPerHeat"`
	}
	var req setupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Heats < 1 || req.LanesPerHeat < 1 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "heats and lanesPerHeat must be positive",
		})
	}

	eventID := c.Params("id")
	if err := database.CreateHeatLanes(config.GetDB(), eventID, req.Heats, req.LanesPerHeat); err != nil {
		log.Printf("Failed to set up heats for event %s: %v", eventID, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to set up heats",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Heats created successfully",
	})
}
