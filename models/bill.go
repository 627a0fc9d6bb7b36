package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is computed on demand and never stored.
type Bill struct {
	CustomerID   uint            `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	RoomID       uint            `json:"room_id"`
	RoomType     string          `json:"room_type"`
	CheckIn      time.Time       `json:"check_in"`
	CheckOut     time.Time       `json:"check_out"`
	Nights       int             `json:"nights"`
	RoomRate     decimal.Decimal `json:"room_rate"`
	RoomCharge   decimal.Decimal `json:"room_charge"`
	Lines        []BillLine      `json:"lines"`
	FoodCharge   decimal.Decimal `json:"food_charge"`
	Total        decimal.Decimal `json:"total"`
}

type BillLine struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OccupancyMismatch describes a room whose status disagrees with its live stays.
type OccupancyMismatch struct {
	RoomID    uint   `json:"room_id"`
	Status    string `json:"status"`
	StayCount int64  `json:"stay_count"`
}
