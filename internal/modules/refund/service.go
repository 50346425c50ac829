package refund

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostal/internal/domain"
	"hostal/internal/notify"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrRefundExceedsPaid  = errors.New("refund amount exceeds what was paid")
	ErrAdminAuthorization = errors.New("admin authorization failed")
)

// AdminVerifier checks an admin's credentials and returns the authorizing
// admin's id.
type AdminVerifier interface {
	VerifyAdminPassword(ctx context.Context, username, password string) (int64, error)
}

// NotificationSender mirrors the ledger's post-commit side channel.
type NotificationSender interface {
	Notify(ctx context.Context, kind string, payload any) bool
}

// Service processes refunds. A refund is the only mutation allowed on a
// checked-out booking: it decreases amount_paid, never the total.
type Service struct {
	db       *gorm.DB
	verifier AdminVerifier
	notifs   NotificationSender
	logger   zerolog.Logger
}

func NewService(db *gorm.DB, verifier AdminVerifier, notifs NotificationSender, logger zerolog.Logger) *Service {
	if notifs == nil {
		notifs = notify.NopSender{}
	}
	return &Service{db: db, verifier: verifier, notifs: notifs, logger: logger}
}

type IssueRequest struct {
	BookingID     int64           `json:"booking_id" binding:"required"`
	PaymentID     *int64          `json:"payment_id"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Reason        string          `json:"reason" binding:"required"`
	Notes         string          `json:"notes"`
	AdminUsername string          `json:"admin_username" binding:"required"`
	AdminPassword string          `json:"admin_password" binding:"required"`

	CashierID int64 `json:"-"`
}

func (s *Service) Issue(ctx context.Context, req IssueRequest) (*domain.Refund, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrValidation)
	}

	adminID, err := s.verifier.VerifyAdminPassword(ctx, req.AdminUsername, req.AdminPassword)
	if err != nil {
		return nil, ErrAdminAuthorization
	}

	var refund domain.Refund
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking domain.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, req.BookingID).Error; err != nil {
			return err
		}

		if req.Amount.GreaterThan(booking.AmountPaid) {
			return fmt.Errorf("%w: %s > %s", ErrRefundExceedsPaid,
				req.Amount.StringFixed(2), booking.AmountPaid.StringFixed(2))
		}

		refund = domain.Refund{
			BookingID:    booking.ID,
			PaymentID:    req.PaymentID,
			CashierID:    req.CashierID,
			AuthorizedBy: adminID,
			Amount:       req.Amount,
			Reason:       req.Reason,
			Notes:        req.Notes,
			Status:       domain.RefundApproved,
		}
		if err := tx.Create(&refund).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Booking{}).Where("id = ?", booking.ID).
			Update("amount_paid", booking.AmountPaid.Sub(req.Amount)).Error
	})
	if err != nil {
		return nil, err
	}

	if !s.notifs.Notify(ctx, notify.EventRefundIssued, refund) {
		s.logger.Warn().Int64("booking_id", refund.BookingID).Msg("refund notification failed")
	}
	return &refund, nil
}

func (s *Service) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Refund, error) {
	var refunds []domain.Refund
	err := s.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&refunds).Error
	if err != nil {
		return nil, err
	}
	return refunds, nil
}
