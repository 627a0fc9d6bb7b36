package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoomStatusAvailable = "Available"
	RoomStatusBooked    = "Booked"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type   string          `gorm:"column:type;size:50" json:"type"`
	Price  decimal.Decimal `gorm:"column:price;type:decimal(10,2)" json:"price"`
	Status string          `gorm:"column:status;size:20;index;default:Available" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
