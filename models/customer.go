// models/customer.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Customer is one guest's stay in one room. The row lives from booking until checkout.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string         `gorm:"size:255" json:"name"`
	Phone    string         `gorm:"size:50" json:"phone"`
	RoomID   uint           `gorm:"not null;index;column:room_id" json:"room_id"`
	CheckIn  datatypes.Date `gorm:"column:check_in" json:"check_in"`
	CheckOut datatypes.Date `gorm:"column:check_out" json:"check_out"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
