package inventory

import (
	"stockroom/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// MovementObserver is told about every accepted or rejected movement.
type MovementObserver interface {
	MovementRecorded(qty int64)
	MovementRejected()
}

type nopObserver struct{}

func (nopObserver) MovementRecorded(int64) {}
func (nopObserver) MovementRejected()      {}

// GET /movements
func ListMovementsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		movements, err := ListMovements(db, MovementFilter{})
		if err != nil {
			return err
		}
		return render(c, "movements/index", fiber.Map{
			"Title":     "Movements",
			"Movements": movements,
		})
	}
}

func movementForm(c *fiber.Ctx, db *gorm.DB, form MovementForm, msg string) error {
	products, err := ListProducts(db)
	if err != nil {
		return err
	}
	locations, err := ListLocations(db)
	if err != nil {
		return err
	}
	return render(c, "movements/form", fiber.Map{
		"Title":     "Move stock",
		"Products":  products,
		"Locations": locations,
		"Form":      form,
		"Error":     msg,
	})
}

// GET /movements/add
func NewMovementHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form MovementForm
		// ?product=<id>&from_location=<id> pre-selects the form, as linked from detail pages
		if err := c.QueryParser(&form); err != nil {
			form = MovementForm{}
		}
		return movementForm(c, db, form, "")
	}
}

// POST /movements/add
func CreateMovementHandler(db *gorm.DB, obs MovementObserver) fiber.Handler {
	if obs == nil {
		obs = nopObserver{}
	}
	return func(c *fiber.Ctx) error {
		log := zerolog.Ctx(c.UserContext())

		var form MovementForm
		var mv *models.ProductMovement
		err := parseForm(c, &form)
		if err == nil {
			mv, err = RecordMovement(db, MovementInput{
				ProductID:      form.Product,
				FromLocationID: form.FromLocation,
				ToLocationID:   form.ToLocation,
				Qty:            form.Qty,
				Description:    form.Description,
			})
		}
		if verr, ok := asValidation(err); ok {
			obs.MovementRejected()
			log.Info().
				Uint("product_id", form.Product).
				Uint("from_location_id", form.FromLocation).
				Int64("qty", form.Qty).
				Str("reason", verr.Message).
				Msg("movement rejected")
			return movementForm(c, db, form, verr.Message)
		}
		if err != nil {
			return err
		}

		obs.MovementRecorded(mv.Qty)
		log.Info().
			Uint("movement_id", mv.ID).
			Str("product", mv.Product.Name).
			Str("from", mv.FromLocation.Name).
			Str("to", mv.ToLocation.Name).
			Int64("qty", mv.Qty).
			Msg("movement recorded")
		return c.Redirect("/movements")
	}
}
