package clubs

import (
	"database/sql"
	"errors"
	"log"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetClubsAPI(c *fiber.Ctx) error {
	clubs, err := database.GetClubs(config.GetDB())
	if err != nil {
		log.Printf("Failed to fetch clubs: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch clubs"})
	}
	if clubs == nil {
		clubs = []models.Club{}
	}
	return c.JSON(fiber.Map{"clubs": clubs, "count": len(clubs)})
}

func GetClubAPI(c *fiber.Ctx) error {
	club, err := database.GetClubByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Club not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch club"})
	}
	return c.JSON(fiber.Map{"club": club})
}

func CreateClubAPI(c *fiber.Ctx) error {
	club := new(models.Club)
	if err := c.BodyParser(club); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if club.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	if err := database.CreateClub(config.GetDB(), club); err != nil {
		log.Printf("Failed to create club: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create club"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Club created successfully",
		"club":    club,
	})
}

func UpdateClubAPI(c *fiber.Ctx) error {
	club := new(models.Club)
	if err := c.BodyParser(club); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	club.ID = c.Params("id")

	if err := database.UpdateClub(config.GetDB(), club); err != nil {
		log.Printf("Failed to update club %s: %v", club.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update club"})
	}
	return c.JSON(fiber.Map{"message": "Club updated successfully"})
}

// GetTeachersAPI lists coaches for selection in lane-coach assignment.
// CLUB accounts see their own staff; admins see everyone.
func GetTeachersAPI(c *fiber.Ctx) error {
	clubID := c.Query("clubId")
	user := c.Locals("user").(*models.User)
	if user.HasRole(models.RoleClub) && user.ClubID != nil {
		clubID = *user.ClubID
	}

	teachers, err := database.GetTeachers(config.GetDB(), clubID)
	if err != nil {
		log.Printf("Failed to fetch teachers: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	if teachers == nil {
		teachers = []*models.User{}
	}
	return c.JSON(fiber.Map{"teachers": teachers, "count": len(teachers)})
}

func DeactivateClubAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.DeactivateClub(config.GetDB(), id); err != nil {
		log.Printf("Failed to deactivate club %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate club"})
	}
	return c.JSON(fiber.Map{"message": "Club deactivated successfully"})
}
