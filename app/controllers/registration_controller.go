package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/runtix/runtix/app/models"
	"github.com/runtix/runtix/app/repository"
	"github.com/runtix/runtix/internal/pkg/mail"
	"github.com/runtix/runtix/internal/pkg/usercontext"
)

type registerForEventRequest struct {
	EventID    uint   `json:"event_id" validate:"required"`
	TshirtSize string `json:"tshirt_size" validate:"required,max=5"`
	Email      string `json:"email" validate:"required,email"`
}

// HandleRegisterForEvent registers the authenticated user for an event and
// sends a confirmation email.
func HandleRegisterForEvent(c *fiber.Ctx) error {
	var req registerForEventRequest
	if err := parseAndValidate(c, &req); err != nil {
		return validationErrorResponse(c, err)
	}

	userID := usercontext.GetUserID(c)
	repos := repository.GetGlobalFactory()

	event, err := repos.GetEventRepository().GetByID(req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		}
		log.Printf("Failed to load event %d: %v", req.EventID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register for the event"})
	}

	reg := &models.Registration{
		UserID:     userID,
		EventID:    req.EventID,
		TshirtSize: req.TshirtSize,
	}
	if err := repos.GetRegistrationRepository().Create(reg); err != nil {
		log.Printf("Failed to register user %d for event %d: %v", userID, req.EventID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register for the event"})
	}

	log.Printf("User %d registered for event %d (registration %d)", userID, req.EventID, reg.ID)

	// confirmation is best-effort; registration already succeeded
	go func(email, eventName string, registrationID uint) {
		if err := mail.SendRegistrationConfirmation(email, eventName, registrationID); err != nil {
			log.Printf("Failed to send confirmation for registration %d: %v", registrationID, err)
		}
	}(req.Email, event.Name, reg.ID)

	return c.JSON(fiber.Map{"message": "Registration successful", "registrationId": reg.ID})
}

// HandleRegistrationHistory lists a user's registrations with event details.
func HandleRegistrationHistory(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	rows, err := repository.GetGlobalFactory().GetRegistrationRepository().HistoryByUser(uint(userID))
	if err != nil {
		log.Printf("Failed to fetch registrations for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user event history"})
	}

	return c.JSON(rows)
}
