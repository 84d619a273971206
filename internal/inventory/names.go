package inventory

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// NameTaken reports whether a row of model other than excludeID already uses
// name. Pass excludeID 0 when creating.
func NameTaken(tx *gorm.DB, model any, name string, excludeID uint) (bool, error) {
	q := tx.Model(model).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking name %q: %w", name, err)
	}
	return count > 0, nil
}

// checkName rejects names that cannot be addressed as a single path segment.
func checkName(name string) error {
	if strings.Contains(name, "/") {
		return validationf(msgNameHasSlash)
	}
	return nil
}
