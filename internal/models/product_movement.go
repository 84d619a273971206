package models

import "time"

// ProductMovement is a transfer of Qty units of a product between two locations.
// Rows are append-only; stock levels are derived from them.
type ProductMovement struct {
	ID             uint `gorm:"primaryKey"`
	ProductID      uint `gorm:"not null;index:idx_movement_product_from;index:idx_movement_product_to"`
	Product        Product
	FromLocationID uint `gorm:"not null;index:idx_movement_product_from"`
	FromLocation   Location
	ToLocationID   uint `gorm:"not null;index:idx_movement_product_to"`
	ToLocation     Location
	Qty            int64     `gorm:"not null"`
	Description    string    `gorm:"size:255"`
	Timestamp      time.Time `gorm:"index;not null;autoCreateTime"`
}
