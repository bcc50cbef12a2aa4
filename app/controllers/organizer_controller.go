package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/runtix/runtix/app/repository"
)

// HandleVerifyOrganizer marks a user as a verified event organizer. Admin
// access is enforced by middleware.
func HandleVerifyOrganizer(c *fiber.Ctx) error {
	return setOrganizerVerified(c, true, "Organizer verified successfully")
}

// HandleUnverifyOrganizer revokes a user's organizer verification.
func HandleUnverifyOrganizer(c *fiber.Ctx) error {
	return setOrganizerVerified(c, false, "Organizer unverified successfully")
}

func setOrganizerVerified(c *fiber.Ctx, verified bool, message string) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	matched, err := repository.GetGlobalFactory().GetUserRepository().SetVerified(uint(userID), verified)
	if err != nil {
		log.Printf("Failed to update organizer verification for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify organizer"})
	}
	if !matched {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	return c.JSON(fiber.Map{"message": message, "is_verified": verified})
}
