// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest parses the JSON body into out and runs struct validation.
// Parse failures become 400s; validation failures surface as
// validator.ValidationErrors for the error middleware.
func ValidateRequest(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if err := validate.Struct(out); err != nil {
		return err
	}
	return nil
}
