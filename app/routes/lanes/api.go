package lanes

import (
	"database/sql"
	"errors"
	"log"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/models"
	"aquaclub/app/telemetry"

	"github.com/gofiber/fiber/v2"
)

// GetLanesAPI lists every lane of an event ordered by heat then lane.
// A read failure degrades to an empty list so the heat sheet page still
// renders; the cause is logged server-side.
func GetLanesAPI(c *fiber.Ctx) error {
	eventID := c.Query("eventId")
	if eventID == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "eventId query parameter is required",
		})
	}

	lanes, err := database.GetLanesByEvent(config.GetDB(), eventID)
	if err != nil {
		log.Printf("Failed to fetch lanes for event %s: %v", eventID, err)
		lanes = []models.HeatLane{}
	}
	if lanes == nil {
		lanes = []models.HeatLane{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"lanes":   lanes,
	})
}

// GetLaneAPI returns one lane with its swimmer identity fields.
func GetLaneAPI(c *fiber.Ctx) error {
	laneID := c.Params("laneId")

	lane, err := database.GetLaneByID(config.GetDB(), laneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Lane not found",
			})
		}
		log.Printf("Failed to fetch lane %s: %v", laneID, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch lane",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"lane":    lane,
	})
}

type timeRequest struct {
	FinalTime *int64 `json:"finalTime"`
}

func validateFinalTime(t *int64) error {
	if t == nil {
		return errors.New("finalTime must be a number")
	}
	if *t < 0 {
		return errors.New("finalTime must not be negative")
	}
	return nil
}

// RecordTimeAPI persists the finalized time of a single lane. Setting a
// time is one-way: there is no endpoint that clears it again.
func RecordTimeAPI(c *fiber.Ctx) error {
	laneID := c.Params("laneId")

	var req timeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "finalTime must be a number",
		})
	}
	if err := validateFinalTime(req.FinalTime); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	db := config.GetDB()
	if err := database.UpdateLaneTime(db, laneID, *req.FinalTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Lane not found",
			})
		}
		log.Printf("Failed to record time for lane %s: %v", laneID, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to record time",
		})
	}
	telemetry.LaneTimeWrites.Inc()

	lane, err := database.GetLaneByID(db, laneID)
	if err != nil {
		log.Printf("Failed to reload lane %s: %v", laneID, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to record time",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"lane":    lane,
	})
}

type laneTimeEntry struct {
	LaneID    string `json:"laneId"`
	FinalTime *int64 `json:"finalTime"`
}

type saveTimesRequest struct {
	Times []laneTimeEntry `json:"times"`
}

func validateSaveTimes(req saveTimesRequest) ([]database.LaneTime, error) {
	if len(req.Times) == 0 {
		return nil, errors.New("times must be a non-empty array")
	}
	times := make([]database.LaneTime, 0, len(req.Times))
	for _, t := range req.Times {
		if t.LaneID == "" {
			return nil, errors.New("every entry needs a laneId")
		}
		if err := validateFinalTime(t.FinalTime); err != nil {
			return nil, err
		}
		times = append(times, database.LaneTime{LaneID: t.LaneID, FinalTime: *t.FinalTime})
	}
	return times, nil
}

// SaveHeatTimesAPI records the times of a whole heat in one transaction:
// either every lane is updated or none are.
func SaveHeatTimesAPI(c *fiber.Ctx) error {
	heatID := c.Params("heatId")

	var req saveTimesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	times, err := validateSaveTimes(req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if err := database.SaveHeatTimes(config.GetDB(), times); err != nil {
		log.Printf("Failed to save times for heat %s: %v", heatID, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save heat times",
		})
	}
	telemetry.LaneTimeWrites.Add(float64(len(times)))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Heat times saved successfully",
	})
}

// AssignSwimmerAPI puts a swimmer into a lane during heat setup.
func AssignSwimmerAPI(c *fiber.Ctx) error {
	laneID := c.Params("laneId")

	type assignRequest struct {
		SwimmerID *string `json:"swimmerId"`
	}
	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := database.AssignSwimmerToLane(config.GetDB(), laneID, req.SwimmerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Lane not found",
			})
		}
		log.Printf("Failed to assign swimmer to lane %s: %v", laneID, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to assign swimmer",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Swimmer assigned successfully",
	})
}
