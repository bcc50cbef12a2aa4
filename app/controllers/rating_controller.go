package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/runtix/runtix/app/models"
	"github.com/runtix/runtix/app/repository"
	"github.com/runtix/runtix/internal/pkg/usercontext"
)

type rateEventRequest struct {
	EventID uint `json:"event_id" validate:"required"`
	Rating  int  `json:"rating" validate:"min=1,max=5"`
}

// HandleRateEvent stores a 1..5 rating for an event from the authenticated
// user.
func HandleRateEvent(c *fiber.Ctx) error {
	var req rateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Malformed request body"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
	}
	if err := validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	rating := &models.Rating{
		UserID:  usercontext.GetUserID(c),
		EventID: req.EventID,
		Rating:  req.Rating,
	}
	if err := repository.GetGlobalFactory().GetRatingRepository().Create(rating); err != nil {
		log.Printf("Failed to submit rating for event %d: %v", req.EventID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit rating"})
	}

	return c.JSON(fiber.Map{"message": "Rating submitted successfully"})
}
