package inventory

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NamedForm is the add/edit form shared by products and locations.
type NamedForm struct {
	Name        string `form:"name" label:"Name" validate:"required,max=100,excludesall=/"`
	Description string `form:"description" label:"Description" validate:"max=255"`
}

type MovementForm struct {
	Product      uint   `form:"product" query:"product" label:"Product" validate:"required"`
	FromLocation uint   `form:"from_location" query:"from_location" label:"Source location" validate:"required"`
	ToLocation   uint   `form:"to_location" query:"to_location" label:"Destination location" validate:"required,nefield=FromLocation"`
	Qty          int64  `form:"qty" label:"Quantity" validate:"required,min=1,max=1000000000"`
	Description  string `form:"description" label:"Description" validate:"max=255"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	return v
}

// parseForm binds the request body into dest and validates it. Bad input is
// reported as a ValidationError so the form can be shown again.
func parseForm(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return validationf("Invalid form data")
	}
	if s, ok := dest.(*NamedForm); ok {
		s.Name = strings.TrimSpace(s.Name)
		s.Description = strings.TrimSpace(s.Description)
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return validationf("Invalid form data")
	}
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, validationMessage(fe))
	}
	return validationf("%s", strings.Join(msgs, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "excludesall":
		return msgNameHasSlash
	case "nefield":
		return "Source and destination must be different locations"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
