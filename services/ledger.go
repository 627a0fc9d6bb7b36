package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrRoomUnavailable  = errors.New("room_unavailable")
	ErrInvalidNights    = errors.New("invalid_nights")
	ErrInvalidQuantity  = errors.New("invalid_quantity")
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrUnknownCustomer  = errors.New("unknown_customer")
	ErrUnknownMenuItem  = errors.New("unknown_menu_item")
)

// HotelLedger owns the store handle for rooms, stays, the food menu and orders.
// Operations that touch more than one row run inside a single transaction.
type HotelLedger struct {
	DB  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewHotelLedger(db *gorm.DB, log *zap.Logger) *HotelLedger {
	if log == nil {
		log = zap.NewNop()
	}
	return &HotelLedger{DB: db, log: log, now: time.Now}
}

// dateOf drops the clock part, keeping the calendar day in t's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from one date to another.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
