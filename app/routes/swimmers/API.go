package swimmers

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

func GetSwimmersAPI(c *fiber.Ctx) error {
	clubID := c.Query("clubId")
	user := c.Locals("user").(*models.User)
	if user.HasRole(models.RoleClub) && user.ClubID != nil {
		clubID = *user.ClubID
	}
	if clubID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "clubId query parameter is required"})
	}

	swimmers, err := database.GetSwimmersByClub(config.GetDB(), clubID)
	if err != nil {
		log.Printf("Failed to fetch swimmers for club %s: %v", clubID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch swimmers"})
	}
	if swimmers == nil {
		swimmers = []models.Swimmer{}
	}

	return c.JSON(fiber.Map{
		"swimmers": swimmers,
		"count":    len(swimmers),
	})
}

func GetSwimmerAPI(c *fiber.Ctx) error {
	swimmer, err := database.GetSwimmerByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Swimmer not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch swimmer"})
	}
	return c.JSON(fiber.Map{"swimmer": swimmer})
}

func CreateSwimmerAPI(c *fiber.Ctx) error {
	type CreateSwimmerRequest struct {
		ClubID    string `json:"club_id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Gender    string `json:"gender"`
		BirthDate string `json:"birth_date"`
	}

	var req CreateSwimmerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user := c.Locals("user").(*models.User)
	if user.HasRole(models.RoleClub) && user.ClubID != nil {
		req.ClubID = *user.ClubID
	}

	if req.FirstName == "" || req.LastName == "" || req.ClubID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "club_id, first name and last name are required"})
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "birth_date must be YYYY-MM-DD"})
	}

	swimmer := &models.Swimmer{
		ClubID:    req.ClubID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    models.Gender(req.Gender),
		BirthDate: birthDate,
	}
	if swimmer.Gender == "" {
		swimmer.Gender = models.Other
	}

	if err := database.CreateSwimmer(config.GetDB(), swimmer); err != nil {
		log.Printf("Failed to create swimmer: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create swimmer"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Swimmer created successfully",
		"swimmer": swimmer,
	})
}

func UpdateSwimmerAPI(c *fiber.Ctx) error {
	swimmer := new(models.Swimmer)
	if err := c.BodyParser(swimmer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	swimmer.ID = c.Params("id")

	if err := database.UpdateSwimmer(config.GetDB(), swimmer); err != nil {
		log.Printf("Failed to update swimmer %s: %v", swimmer.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update swimmer"})
	}

	return c.JSON(fiber.Map{"message": "Swimmer updated successfully"})
}

// DeactivateSwimmerAPI soft-deletes a swimmer; lane assignments and records
// stay in place for history.
func DeactivateSwimmerAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.DeactivateSwimmer(config.GetDB(), id); err != nil {
		log.Printf("Failed to deactivate swimmer %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate swimmer"})
	}
	return c.JSON(fiber.Map{"message": "Swimmer deactivated successfully"})
}
