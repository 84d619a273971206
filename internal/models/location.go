package models

import "time"

// Location is a place stock can be held in. The external location stands for
// everything outside the tracked network and is never stock-checked.
type Location struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"size:255"`
	IsExternal  bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
