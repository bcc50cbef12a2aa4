package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// shared validator instance for request DTOs
var validate = validator.New()

// validationErrorResponse renders validator failures as a 400 with one entry
// per offending field.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fiber.Map, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fiber.Map{
				"field":   fe.Field(),
				"rule":    fe.Tag(),
				"message": fe.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": out})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": []fiber.Map{{"message": err.Error()}}})
}

// parseAndValidate decodes the JSON body into dst and runs struct validation.
func parseAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}
