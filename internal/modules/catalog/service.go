package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"hostal/internal/domain"
	"hostal/internal/repository"
)

var ErrRoomNotCleaning = errors.New("room is not in cleaning status")

// Service serves the room board and the POS product catalog.
type Service struct {
	rooms    *repository.RoomRepository
	products *repository.ProductRepository
	logger   zerolog.Logger
}

func NewService(rooms *repository.RoomRepository, products *repository.ProductRepository, logger zerolog.Logger) *Service {
	return &Service{rooms: rooms, products: products, logger: logger}
}

func (s *Service) Rooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) AvailableRooms(ctx context.Context, roomType string) ([]domain.Room, error) {
	return s.rooms.ListAvailable(ctx, roomType)
}

// MarkClean is housekeeping's cleaning -> available transition. Any other
// source status is a conflict; occupancy changes belong to the booking
// lifecycle.
func (s *Service) MarkClean(ctx context.Context, roomID int64) error {
	err := s.rooms.MarkClean(ctx, roomID)
	if errors.Is(err, repository.ErrInvalidRoomTransition) {
		return ErrRoomNotCleaning
	}
	if err != nil {
		return err
	}
	s.logger.Info().Int64("room_id", roomID).Msg("room marked clean")
	return nil
}

func (s *Service) Products(ctx context.Context, f repository.ProductFilters) ([]domain.Product, error) {
	return s.products.List(ctx, f)
}
