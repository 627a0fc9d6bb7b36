package services

import (
	"context"
	"fmt"

	"hotel-ledger/models"
)

func (l *HotelLedger) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := l.DB.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// AuditOccupancy returns every room whose status disagrees with its live stays:
// a Booked room needs exactly one stay, an Available room none.
func (l *HotelLedger) AuditOccupancy(ctx context.Context) ([]models.OccupancyMismatch, error) {
	var rows []models.OccupancyMismatch
	err := l.DB.WithContext(ctx).
		Model(&models.Room{}).
		Select("rooms.id AS room_id, rooms.status AS status, COUNT(customers.id) AS stay_count").
		Joins("LEFT JOIN customers ON customers.room_id = rooms.id").
		Group("rooms.id, rooms.status").
		Order("rooms.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to audit occupancy: %w", err)
	}

	out := make([]models.OccupancyMismatch, 0)
	for _, r := range rows {
		consistent := (r.Status == models.RoomStatusBooked && r.StayCount == 1) ||
			(r.Status == models.RoomStatusAvailable && r.StayCount == 0)
		if !consistent {
			out = append(out, r)
		}
	}
	return out, nil
}
