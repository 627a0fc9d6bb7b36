package models

import "github.com/shopspring/decimal"

type FoodMenuItem struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"size:100;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (FoodMenuItem) TableName() string {
	return "food_menu"
}
