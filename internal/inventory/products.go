package inventory

import (
	"errors"
	"fmt"
	"strings"

	"stockroom/internal/models"

	"gorm.io/gorm"
)

// CreateProduct stores a new product. A duplicate name is a ValidationError.
func CreateProduct(db *gorm.DB, name, description string) (*models.Product, error) {
	p := models.Product{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := checkName(p.Name); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		taken, err := NameTaken(tx, &models.Product{}, p.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return validationf(msgProductNameExists)
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, productError(err, "creating product")
	}
	return &p, nil
}

// UpdateProduct renames and/or re-describes p in place.
func UpdateProduct(db *gorm.DB, p *models.Product, name, description string) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if err := checkName(name); err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		taken, err := NameTaken(tx, &models.Product{}, name, p.ID)
		if err != nil {
			return err
		}
		if taken {
			return validationf(msgProductNameExists)
		}
		return tx.Model(p).Updates(map[string]any{
			"name":        name,
			"description": description,
		}).Error
	})
	if err != nil {
		return productError(err, "updating product")
	}
	p.Name = name
	p.Description = description
	return nil
}

func FindProductByName(db *gorm.DB, name string) (*models.Product, error) {
	var p models.Product
	if err := db.Where("name = ?", name).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func ListProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Order("name asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// productError maps a lost race on the unique index to the same message the
// explicit check produces.
func productError(err error, op string) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return validationf(msgProductNameExists)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
