package repository

import (
	"context"

	"gorm.io/gorm"

	"hostal/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Customer").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type BookingFilters struct {
	RoomNumber     string
	DocumentNumber string
	Status         domain.BookingStatus
}

func (r *BookingRepository) Search(ctx context.Context, f BookingFilters) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN customers ON customers.id = bookings.customer_id").
		Preload("Room").
		Preload("Customer")

	if f.RoomNumber != "" {
		q = q.Where("rooms.room_number = ?", f.RoomNumber)
	}
	if f.DocumentNumber != "" {
		q = q.Where("customers.document_number = ?", f.DocumentNumber)
	}
	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}

	var bookings []domain.Booking
	if err := q.Order("bookings.check_in DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Active returns checked-in and reserved bookings, most recent first.
func (r *BookingRepository) Active(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("status IN ?", []domain.BookingStatus{domain.BookingCheckedIn, domain.BookingReserved}).
		Preload("Room").
		Preload("Customer").
		Order("check_in DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListCharges(ctx context.Context, bookingID int64) ([]domain.BookingCharge, error) {
	var charges []domain.BookingCharge
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&charges).Error
	if err != nil {
		return nil, err
	}
	return charges, nil
}

func (r *BookingRepository) ListPayments(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Preload("Splits").
		Order("payment_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *BookingRepository) ListDiscounts(ctx context.Context, bookingID int64) ([]domain.Discount, error) {
	var discounts []domain.Discount
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&discounts).Error
	if err != nil {
		return nil, err
	}
	return discounts, nil
}
