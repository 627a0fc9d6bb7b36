package services

import (
	"context"
	"fmt"

	"hotel-ledger/models"
)

func (l *HotelLedger) ListMenu(ctx context.Context) ([]models.FoodMenuItem, error) {
	var items []models.FoodMenuItem
	if err := l.DB.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list food menu: %w", err)
	}
	return items, nil
}
