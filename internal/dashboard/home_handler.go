package dashboard

import (
	"fmt"

	"stockroom/internal/inventory"
	"stockroom/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Totals are the headline numbers on the home page.
type Totals struct {
	Products  int64
	Locations int64
	Movements int64
	Units     int64 // units currently held in tracked locations
}

func loadTotals(db *gorm.DB) (Totals, error) {
	var t Totals
	if err := db.Model(&models.Product{}).Count(&t.Products).Error; err != nil {
		return t, fmt.Errorf("counting products: %w", err)
	}
	if err := db.Model(&models.Location{}).Where("is_external = ?", false).Count(&t.Locations).Error; err != nil {
		return t, fmt.Errorf("counting locations: %w", err)
	}
	if err := db.Model(&models.ProductMovement{}).Count(&t.Movements).Error; err != nil {
		return t, fmt.Errorf("counting movements: %w", err)
	}

	// Units held = inbound minus outbound over tracked locations only.
	var in, out int64
	if err := db.Model(&models.ProductMovement{}).
		Select("CAST(COALESCE(SUM(qty), 0) AS BIGINT)").
		Joins("JOIN locations ON locations.id = product_movements.to_location_id").
		Where("locations.is_external = ?", false).
		Row().Scan(&in); err != nil {
		return t, fmt.Errorf("summing inbound units: %w", err)
	}
	if err := db.Model(&models.ProductMovement{}).
		Select("CAST(COALESCE(SUM(qty), 0) AS BIGINT)").
		Joins("JOIN locations ON locations.id = product_movements.from_location_id").
		Where("locations.is_external = ?", false).
		Row().Scan(&out); err != nil {
		return t, fmt.Errorf("summing outbound units: %w", err)
	}
	t.Units = in - out
	return t, nil
}

// GET /
func HomeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		totals, err := loadTotals(db)
		if err != nil {
			return err
		}
		recent, err := inventory.ListMovements(db, inventory.MovementFilter{Limit: 10})
		if err != nil {
			return err
		}
		return c.Render("index", fiber.Map{
			"Title":     "Overview",
			"Totals":    totals,
			"Movements": recent,
		}, inventory.Layout)
	}
}
