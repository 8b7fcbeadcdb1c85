package records

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/models"

	"github.com/gofiber/fiber/v2"
)

// CreateRecordAPI logs a finalized historical time for a swimmer.
func CreateRecordAPI(c *fiber.Ctx) error {
	type createRequest struct {
		SwimmerID      string `json:"swimmer_id"`
		Style          string `json:"style"`
		DistanceMeters int    `json:"distance_meters"`
		FinalTime      *int64 `json:"final_time"`
		Competition    string `json:"competition"`
		IsInternal     bool   `json:"is_internal"`
		AchievedAt     string `json:"achieved_at"`
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.SwimmerID == "" || req.Style == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "swimmer_id and style are required"})
	}
	if req.FinalTime == nil || *req.FinalTime < 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "final_time must be a non-negative number"})
	}

	achievedAt := time.Now()
	if req.AchievedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.AchievedAt)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "achieved_at must be RFC3339"})
		}
		achievedAt = parsed
	}

	// A parent may only log times for their own children.
	user := c.Locals("user").(*models.User)
	if user.HasRole(models.RoleParent) && !user.HasRole(models.RoleAdmin) {
		ok, err := database.IsParentOfSwimmer(config.GetDB(), user.ID, req.SwimmerID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to verify swimmer"})
		}
		if !ok {
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "Swimmer is not linked to your account"})
		}
	}

	record := &models.Record{
		SwimmerID:      req.SwimmerID,
		Style:          models.Stroke(req.Style),
		DistanceMeters: req.DistanceMeters,
		FinalTime:      *req.FinalTime,
		Competition:    req.Competition,
		IsInternal:     req.IsInternal,
		AchievedAt:     achievedAt,
	}
	if err := database.CreateRecord(config.GetDB(), record); err != nil {
		log.Printf("Failed to create record: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create record"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"record":  record,
	})
}

// GetRecordsAPI lists a swimmer's records, optionally filtered by style.
func GetRecordsAPI(c *fiber.Ctx) error {
	swimmerID := c.Query("swimmerId")
	if swimmerID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "swimmerId query parameter is required"})
	}

	records, err := database.GetRecordsBySwimmer(config.GetDB(), swimmerID, c.Query("style"))
	if err != nil {
		log.Printf("Failed to fetch records for swimmer %s: %v", swimmerID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch records"})
	}
	if records == nil {
		records = []models.Record{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"records": records,
	})
}

// GetBestTimeAPI returns the swimmer's minimum recorded time for a style.
// Ties resolve to the earliest achieved record.
func GetBestTimeAPI(c *fiber.Ctx) error {
	swimmerID := c.Query("swimmerId")
	style := c.Query("style")
	if swimmerID == "" || style == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "swimmerId and style query parameters are required"})
	}

	record, err := database.GetBestRecord(config.GetDB(), swimmerID, style)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "No records for this swimmer and style"})
		}
		log.Printf("Failed to fetch best time for swimmer %s: %v", swimmerID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch best time"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"bestTime": record.FinalTime,
		"record":   record,
	})
}

// GetLatestRecordAPI returns the most recently created record. A PARENT
// principal without swimmerId gets the latest across all their children;
// other roles must name a swimmer.
func GetLatestRecordAPI(c *fiber.Ctx) error {
	internalOnly := c.QueryBool("internal", false)
	swimmerID := c.Query("swimmerId")
	user := c.Locals("user").(*models.User)

	var (
		record *models.Record
		err    error
	)
	switch {
	case swimmerID != "":
		record, err = database.GetLatestRecord(config.GetDB(), swimmerID, internalOnly)
	case user.HasRole(models.RoleParent):
		record, err = database.GetLatestRecordForParent(config.GetDB(), user.ID, internalOnly)
	default:
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "swimmerId query parameter is required"})
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "No records found"})
		}
		log.Printf("Failed to fetch latest record: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch latest record"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"competition": record.Competition,
		"record":      record,
	})
}
