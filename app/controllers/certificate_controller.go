package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/runtix/runtix/app/repository"
	"github.com/runtix/runtix/internal/pkg/usercontext"
)

// HandleGetCertificate returns the certificate URL for the caller's own
// registration and counts the download.
func HandleGetCertificate(c *fiber.Ctx) error {
	registrationID, err := c.ParamsInt("registrationId")
	if err != nil || registrationID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid registration id"})
	}
	userID := usercontext.GetUserID(c)

	repo := repository.GetGlobalFactory().GetRegistrationRepository()
	reg, err := repo.GetByIDForUser(uint(registrationID), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
		}
		log.Printf("Failed to fetch certificate for registration %d: %v", registrationID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch certificate"})
	}

	if reg.CertificateURL == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	if err := repo.IncrementDownloadCount(reg.ID); err != nil {
		log.Printf("Failed to update download count for registration %d: %v", reg.ID, err)
	}

	return c.JSON(fiber.Map{"certificate_url": reg.CertificateURL})
}
