package services

import (
	"context"
	"errors"
	"fmt"

	"hotel-ledger/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderFood charges quantity units of a menu item to a live stay.
func (l *HotelLedger) OrderFood(ctx context.Context, customerID, itemID uint, quantity int) (uint, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	order := models.Order{CustomerID: customerID, ItemID: itemID, Quantity: quantity}

	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Customer{}).Where("id = ?", customerID).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check customer %d: %w", customerID, err)
		}
		if n == 0 {
			return ErrUnknownCustomer
		}

		if err := tx.Model(&models.FoodMenuItem{}).Where("id = ?", itemID).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check menu item %d: %w", itemID, err)
		}
		if n == 0 {
			return ErrUnknownMenuItem
		}

		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUnknownCustomer) && !errors.Is(err, ErrUnknownMenuItem) {
			l.log.Error("order food failed", zap.Uint("customer_id", customerID), zap.Error(err))
		}
		return 0, err
	}

	l.log.Info("food ordered",
		zap.Uint("order_id", order.ID),
		zap.Uint("customer_id", customerID),
		zap.Uint("item_id", itemID),
		zap.Int("quantity", quantity),
	)
	return order.ID, nil
}
