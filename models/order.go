package models

import "time"

// Order is a single food line item charged to a stay.
type Order struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CustomerID uint `gorm:"not null;index;column:customer_id" json:"customer_id"`
	ItemID     uint `gorm:"not null;index;column:item_id" json:"item_id"`
	Quantity   int  `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`

	Customer Customer     `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
	Item     FoodMenuItem `gorm:"foreignKey:ItemID;references:ID" json:"-"`
}
