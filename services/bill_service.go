package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-ledger/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type billLineRow struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// GenerateBill computes the current bill for a stay without changing anything.
func (l *HotelLedger) GenerateBill(ctx context.Context, customerID uint) (models.Bill, error) {
	bill, _, err := buildBill(l.DB.WithContext(ctx), customerID)
	return bill, err
}

// buildBill is shared by GenerateBill and Checkout; db may be a transaction.
// Nights come from the stored dates, so the bill covers the booked term.
func buildBill(db *gorm.DB, customerID uint) (models.Bill, models.Customer, error) {
	var stay models.Customer
	if err := db.Preload("Room").First(&stay, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bill{}, stay, ErrCustomerNotFound
		}
		return models.Bill{}, stay, fmt.Errorf("failed to load stay %d: %w", customerID, err)
	}

	var rows []billLineRow
	if err := db.Model(&models.Order{}).
		Select("food_menu.name AS name, food_menu.price AS price, orders.quantity AS quantity").
		Joins("JOIN food_menu ON food_menu.id = orders.item_id").
		Where("orders.customer_id = ?", stay.ID).
		Order("orders.id").
		Scan(&rows).Error; err != nil {
		return models.Bill{}, stay, fmt.Errorf("failed to load orders for stay %d: %w", customerID, err)
	}

	checkIn := time.Time(stay.CheckIn)
	checkOut := time.Time(stay.CheckOut)
	nights := daysBetween(checkIn, checkOut)
	roomCharge := stay.Room.Price.Mul(decimal.NewFromInt(int64(nights)))

	lines := make([]models.BillLine, 0, len(rows))
	foodCharge := decimal.Zero
	for _, r := range rows {
		lineTotal := r.Price.Mul(decimal.NewFromInt(int64(r.Quantity)))
		foodCharge = foodCharge.Add(lineTotal)
		lines = append(lines, models.BillLine{
			Name:      r.Name,
			Quantity:  r.Quantity,
			UnitPrice: r.Price,
			LineTotal: lineTotal,
		})
	}

	return models.Bill{
		CustomerID:   stay.ID,
		CustomerName: stay.Name,
		RoomID:       stay.RoomID,
		RoomType:     stay.Room.Type,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Nights:       nights,
		RoomRate:     stay.Room.Price,
		RoomCharge:   roomCharge,
		Lines:        lines,
		FoodCharge:   foodCharge,
		Total:        roomCharge.Add(foodCharge),
	}, stay, nil
}
