package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hostal/internal/domain"
)

var ErrInvalidRoomTransition = errors.New("room is not in a state that allows this transition")

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := r.db.WithContext(ctx).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) ListAvailable(ctx context.Context, roomType string) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Where("status = ?", domain.RoomAvailable)
	if roomType != "" {
		q = q.Where("room_type = ?", roomType)
	}

	var rooms []domain.Room
	if err := q.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// MarkClean moves a room from cleaning back to available. Rooms in any
// other state are left untouched and the caller gets
// ErrInvalidRoomTransition; occupancy is owned by the booking lifecycle.
func (r *RoomRepository) MarkClean(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ? AND status = ?", id, domain.RoomCleaning).
		Update("status", domain.RoomAvailable)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		var cnt int64
		if err := r.db.WithContext(ctx).Model(&domain.Room{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrInvalidRoomTransition
	}
	return nil
}
