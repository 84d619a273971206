package inventory

import (
	"errors"
	"fmt"
	"strings"

	"stockroom/internal/models"

	"gorm.io/gorm"
)

type MovementInput struct {
	ProductID      uint
	FromLocationID uint
	ToLocationID   uint
	Qty            int64
	Description    string
}

// RecordMovement checks and stores a transfer in one transaction. Moving out
// of a tracked location is limited to its net quantity of the product; the
// external location has no limit.
func RecordMovement(db *gorm.DB, in MovementInput) (*models.ProductMovement, error) {
	if in.Qty < 1 {
		return nil, validationf("Quantity must be at least 1")
	}
	if in.Qty > MaxMovementQty {
		return nil, validationf("Quantity must be at most %d", MaxMovementQty)
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, validationf("Source and destination must be different locations")
	}

	mv := models.ProductMovement{
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Qty:            in.Qty,
		Description:    strings.TrimSpace(in.Description),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", in.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationf("Unknown product")
			}
			return err
		}

		var from, to models.Location
		if err := tx.First(&from, "id = ?", in.FromLocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationf("Unknown source location")
			}
			return err
		}
		if err := tx.First(&to, "id = ?", in.ToLocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationf("Unknown destination location")
			}
			return err
		}

		if !from.IsExternal {
			available, err := Available(tx, product.ID, from.ID)
			if err != nil {
				return err
			}
			if in.Qty > available {
				return validationf("Only a maximum of %d can be moved from this location", available)
			}
		}

		if err := tx.Create(&mv).Error; err != nil {
			return err
		}
		mv.Product = product
		mv.FromLocation = from
		mv.ToLocation = to
		return nil
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		return nil, fmt.Errorf("recording movement: %w", err)
	}
	return &mv, nil
}

// MovementFilter narrows ListMovements. Zero values match everything.
type MovementFilter struct {
	ProductID  uint
	LocationID uint // either side of the movement
	Limit      int
}

// ListMovements returns movements newest first (ids are monotonic) with their product and
// locations loaded.
func ListMovements(db *gorm.DB, f MovementFilter) ([]models.ProductMovement, error) {
	q := db.Preload("Product").Preload("FromLocation").Preload("ToLocation")
	if f.ProductID != 0 {
		q = q.Where("product_id = ?", f.ProductID)
	}
	if f.LocationID != 0 {
		q = q.Where("from_location_id = ? OR to_location_id = ?", f.LocationID, f.LocationID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var movements []models.ProductMovement
	if err := q.Order("id desc").Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	return movements, nil
}
