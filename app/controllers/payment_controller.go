package controllers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/runtix/runtix/internal/pkg/payment"
)

// PaymentProcessor is the slice of the payment service the controller needs;
// tests inject a fake.
type PaymentProcessor interface {
	CreatePayment(ctx context.Context, in payment.CreatePaymentInput) (*payment.Session, error)
	ProcessNotification(ctx context.Context, n payment.Notification) error
}

var paymentService PaymentProcessor

// InitializePaymentController wires the payment service into the handlers.
func InitializePaymentController(svc PaymentProcessor) {
	paymentService = svc
}

type createPaymentRequest struct {
	RegistrationID uint    `json:"registration_id" validate:"required"`
	OrderID        string  `json:"order_id" validate:"required,max=100"`
	GrossAmount    float64 `json:"gross_amount" validate:"gt=0"`
	CustomerName   string  `json:"customer_name" validate:"required"`
	CustomerEmail  string  `json:"customer_email" validate:"required,email"`
}

// HandleCreatePayment opens a gateway transaction for a registration and
// records the pending payment.
func HandleCreatePayment(c *fiber.Ctx) error {
	var req createPaymentRequest
	if err := parseAndValidate(c, &req); err != nil {
		log.Printf("Validation failed for payment: %v", err)
		return validationErrorResponse(c, err)
	}

	session, err := paymentService.CreatePayment(c.Context(), payment.CreatePaymentInput{
		RegistrationID: req.RegistrationID,
		OrderID:        req.OrderID,
		GrossAmount:    req.GrossAmount,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrDuplicateOrder):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A payment already exists for this order id"})
		case errors.Is(err, payment.ErrGatewayUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create transaction"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create transaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": session.Token, "redirect_url": session.RedirectURL})
}

// HandleMidtransNotification is the gateway-facing webhook. It is
// unauthenticated on purpose: the caller is authenticated by the payload
// signature, not by a session.
func HandleMidtransNotification(c *fiber.Ctx) error {
	var n payment.Notification
	if err := c.BodyParser(&n); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Malformed notification payload"})
	}

	if err := paymentService.ProcessNotification(c.Context(), n); err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSignature):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid signature"})
		case errors.Is(err, payment.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown order"})
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error processing notification")
	}

	// plain acknowledgement, per gateway retry semantics
	return c.SendString("Notification received")
}
