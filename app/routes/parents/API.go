package parents

import (
	"database/sql"
	"errors"
	"log"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyChildrenAPI lists the swimmers linked to the authenticated parent.
// Only active links count; a deactivated link hides the swimmer here but
// keeps the relation row for history.
func GetMyChildrenAPI(c *fiber.Ctx) error {
	parentID := c.Locals("user_id").(string)

	children, err := database.GetChildrenByParent(config.GetDB(), parentID)
	if err != nil {
		log.Printf("Failed to fetch children for parent %s: %v", parentID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch children"})
	}
	if children == nil {
		children = []models.Swimmer{}
	}

	return c.JSON(fiber.Map{
		"children": children,
		"count":    len(children),
	})
}

// LinkChildAPI links a swimmer to a parent account. Staff can link any
// parent; the request names the swimmer and the relationship.
func LinkChildAPI(c *fiber.Ctx) error {
	type LinkRequest struct {
		ParentID     string `json:"parent_id"`
		SwimmerID    string `json:"swimmer_id"`
		Relationship string `json:"relationship"`
	}

	var req LinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ParentID == "" || req.SwimmerID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "parent_id and swimmer_id are required"})
	}

	relationship := models.RelationshipType(req.Relationship)
	if relationship == "" {
		relationship = models.Guardian
	}

	if err := database.LinkParentSwimmer(config.GetDB(), req.ParentID, req.SwimmerID, relationship); err != nil {
		log.Printf("Failed to link parent %s to swimmer %s: %v", req.ParentID, req.SwimmerID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to link swimmer"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Swimmer linked successfully"})
}

// UnlinkChildAPI deactivates a parent-swimmer link without deleting it.
func UnlinkChildAPI(c *fiber.Ctx) error {
	type UnlinkRequest struct {
		ParentID  string `json:"parent_id"`
		SwimmerID string `json:"swimmer_id"`
	}

	var req UnlinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ParentID == "" || req.SwimmerID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "parent_id and swimmer_id are required"})
	}

	if err := database.UnlinkParentSwimmer(config.GetDB(), req.ParentID, req.SwimmerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Link not found"})
		}
		log.Printf("Failed to unlink parent %s from swimmer %s: %v", req.ParentID, req.SwimmerID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to unlink swimmer"})
	}

	return c.JSON(fiber.Map{"message": "Swimmer unlinked successfully"})
}
