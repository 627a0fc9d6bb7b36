package services

import (
	"context"
	"errors"
	"fmt"

	"hotel-ledger/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookRoom checks a guest into an Available room for the given number of nights
// starting today and returns the new stay id. A missing room and a booked room both
// fail with ErrRoomUnavailable.
func (l *HotelLedger) BookRoom(ctx context.Context, name, phone string, roomID uint, nights int) (uint, error) {
	if nights <= 0 {
		return 0, ErrInvalidNights
	}

	checkIn := dateOf(l.now())
	stay := models.Customer{
		Name:     name,
		Phone:    phone,
		RoomID:   roomID,
		CheckIn:  datatypes.Date(checkIn),
		CheckOut: datatypes.Date(checkIn.AddDate(0, 0, nights)),
	}

	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the status guard is the availability check: only one booking can flip it
		res := tx.Model(&models.Room{}).
			Where("id = ? AND status = ?", roomID, models.RoomStatusAvailable).
			Update("status", models.RoomStatusBooked)
		if res.Error != nil {
			return fmt.Errorf("failed to reserve room %d: %w", roomID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRoomUnavailable
		}

		if err := tx.Omit(clause.Associations).Create(&stay).Error; err != nil {
			return fmt.Errorf("failed to create stay: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRoomUnavailable) {
			l.log.Error("book room failed", zap.Uint("room_id", roomID), zap.Error(err))
		}
		return 0, err
	}

	l.log.Info("room booked",
		zap.Uint("stay_id", stay.ID),
		zap.Uint("room_id", roomID),
		zap.Int("nights", nights),
	)
	return stay.ID, nil
}

// ListStays returns the live stays with their rooms, oldest first.
func (l *HotelLedger) ListStays(ctx context.Context) ([]models.Customer, error) {
	var stays []models.Customer
	if err := l.DB.WithContext(ctx).Preload("Room").Order("id").Find(&stays).Error; err != nil {
		return nil, fmt.Errorf("failed to list stays: %w", err)
	}
	return stays, nil
}

// Checkout bills the stay, frees its room and removes the stay together with its
// orders, all in one transaction. The returned Bill is the one computed before removal.
func (l *HotelLedger) Checkout(ctx context.Context, customerID uint) (models.Bill, error) {
	var bill models.Bill

	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, stay, err := buildBill(tx, customerID)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", stay.RoomID).
			Update("status", models.RoomStatusAvailable).Error; err != nil {
			return fmt.Errorf("failed to release room %d: %w", stay.RoomID, err)
		}

		// orders first so stores enforcing orders.customer_id never see an orphan
		if err := tx.Where("customer_id = ?", customerID).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("failed to delete orders: %w", err)
		}

		if err := tx.Delete(&models.Customer{}, customerID).Error; err != nil {
			return fmt.Errorf("failed to delete stay: %w", err)
		}

		bill = b
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCustomerNotFound) {
			l.log.Error("checkout failed", zap.Uint("customer_id", customerID), zap.Error(err))
		}
		return models.Bill{}, err
	}

	l.log.Info("checked out",
		zap.Uint("customer_id", customerID),
		zap.Uint("room_id", bill.RoomID),
		zap.String("total", bill.Total.StringFixed(2)),
	)
	return bill, nil
}
