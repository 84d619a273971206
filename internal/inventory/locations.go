package inventory

import (
	"errors"
	"fmt"
	"strings"

	"stockroom/internal/models"

	"gorm.io/gorm"
)

func CreateLocation(db *gorm.DB, name, description string) (*models.Location, error) {
	loc := models.Location{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := checkName(loc.Name); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		taken, err := NameTaken(tx, &models.Location{}, loc.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return validationf(msgLocationNameExists)
		}
		return tx.Create(&loc).Error
	})
	if err != nil {
		return nil, locationError(err, "creating location")
	}
	return &loc, nil
}

// UpdateLocation applies an edit. The external flag is never touched here.
func UpdateLocation(db *gorm.DB, loc *models.Location, name, description string) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if err := checkName(name); err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		taken, err := NameTaken(tx, &models.Location{}, name, loc.ID)
		if err != nil {
			return err
		}
		if taken {
			return validationf(msgLocationNameExists)
		}
		return tx.Model(loc).Updates(map[string]any{
			"name":        name,
			"description": description,
		}).Error
	})
	if err != nil {
		return locationError(err, "updating location")
	}
	loc.Name = name
	loc.Description = description
	return nil
}

func FindLocationByName(db *gorm.DB, name string) (*models.Location, error) {
	var loc models.Location
	if err := db.Where("name = ?", name).First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// ListLocations returns locations in creation order so the external location
// comes first.
func ListLocations(db *gorm.DB) ([]models.Location, error) {
	var locations []models.Location
	if err := db.Order("id asc").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return locations, nil
}

func locationError(err error, op string) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return validationf(msgLocationNameExists)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
