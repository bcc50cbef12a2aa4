package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/runtix/runtix/app/models"
	"github.com/runtix/runtix/app/repository"
	"github.com/runtix/runtix/internal/pkg/usercontext"
)

type notificationPreferencesRequest struct {
	EventID           uint  `json:"event_id" validate:"required"`
	NotifyBeforeEvent *bool `json:"notify_before_event" validate:"required"`
	NotifyRacepack    *bool `json:"notify_racepack" validate:"required"`
}

// HandleUpdateNotificationPreferences upserts the caller's reminder opt-ins
// for an event.
func HandleUpdateNotificationPreferences(c *fiber.Ctx) error {
	var req notificationPreferencesRequest
	if err := parseAndValidate(c, &req); err != nil {
		return validationErrorResponse(c, err)
	}

	pref := &models.NotificationPreference{
		UserID:            usercontext.GetUserID(c),
		EventID:           req.EventID,
		NotifyBeforeEvent: *req.NotifyBeforeEvent,
		NotifyRacepack:    *req.NotifyRacepack,
	}
	if err := repository.GetGlobalFactory().GetNotificationPreferenceRepository().Upsert(pref); err != nil {
		log.Printf("Failed to update notification preferences for user %d: %v", pref.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update preferences"})
	}

	return c.JSON(fiber.Map{"message": "Notification preferences updated"})
}
