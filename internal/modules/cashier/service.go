package cashier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostal/internal/domain"
	"hostal/internal/pkg/money"
)

// Service manages cashier shifts. A cashier holds at most one open
// session; open and close serialize on the cashier's user row so
// concurrent opens cannot both pass the uniqueness check.
type Service struct {
	db     *gorm.DB
	logger zerolog.Logger
	nowFn  func() time.Time
}

func NewService(db *gorm.DB, logger zerolog.Logger) *Service {
	return &Service{db: db, logger: logger, nowFn: time.Now}
}

func (s *Service) Open(ctx context.Context, cashierID int64, initialCash decimal.Decimal) (*domain.CashSession, error) {
	if initialCash.IsNegative() {
		return nil, fmt.Errorf("%w: initial cash cannot be negative", ErrValidation)
	}

	var session domain.CashSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, cashierID).Error; err != nil {
			return err
		}

		var open int64
		if err := tx.Model(&domain.CashSession{}).
			Where("cashier_id = ? AND status = ?", cashierID, domain.SessionOpen).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrSessionAlreadyOpen
		}

		session = domain.CashSession{
			CashierID:   cashierID,
			OpeningTime: s.nowFn(),
			Status:      domain.SessionOpen,
			InitialCash: initialCash,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("cashier_id", cashierID).Str("initial_cash", initialCash.StringFixed(2)).Msg("cash session opened")
	return &session, nil
}

// Current aggregates the open session's payments by method. The totals
// are derived by read, never written back while the session stays open.
func (s *Service) Current(ctx context.Context, cashierID int64) (*SessionSnapshot, error) {
	var session domain.CashSession
	err := s.db.WithContext(ctx).
		Where("cashier_id = ? AND status = ?", cashierID, domain.SessionOpen).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOpenSession
	}
	if err != nil {
		return nil, err
	}

	totals, err := s.windowTotals(ctx, s.db.WithContext(ctx), cashierID, session.OpeningTime, s.nowFn())
	if err != nil {
		return nil, err
	}

	expected := session.InitialCash.Add(totals.Cash)
	collected := totals.Cash.Add(totals.Card).Add(totals.Transfer).Add(totals.Check).Add(totals.Other)

	return &SessionSnapshot{
		Session:               session,
		TotalCashPayments:     totals.Cash,
		TotalCardPayments:     totals.Card,
		TotalTransferPayments: totals.Transfer,
		TotalCheckPayments:    totals.Check,
		TotalOtherPayments:    totals.Other,
		ExpectedCash:          expected,
		TotalCollected:        collected,
		TotalTransactions:     totals.Transactions,
	}, nil
}

// Close freezes the per-method totals into the session row, records the
// cash difference and parks the session in pending_approval. A non-zero
// difference is reported, never rejected.
func (s *Service) Close(ctx context.Context, cashierID int64, req CloseSessionRequest) (*CloseResult, error) {
	if req.ActualCash.IsNegative() {
		return nil, fmt.Errorf("%w: actual cash cannot be negative", ErrValidation)
	}

	var result CloseResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session domain.CashSession
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cashier_id = ? AND status = ?", cashierID, domain.SessionOpen).
			First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoOpenSession
		}
		if err != nil {
			return err
		}

		now := s.nowFn()
		totals, err := s.windowTotals(ctx, tx, cashierID, session.OpeningTime, now)
		if err != nil {
			return err
		}

		expected := session.InitialCash.Add(totals.Cash)
		difference := req.ActualCash.Sub(expected)

		if err := tx.Model(&domain.CashSession{}).Where("id = ?", session.ID).Updates(map[string]any{
			"status":                  domain.SessionPendingApproval,
			"closing_time":            now,
			"total_cash_payments":     totals.Cash,
			"total_card_payments":     totals.Card,
			"total_transfer_payments": totals.Transfer,
			"total_check_payments":    totals.Check,
			"expected_cash":           expected,
			"actual_cash":             req.ActualCash,
			"difference":              difference,
			"notes":                   req.Notes,
		}).Error; err != nil {
			return err
		}

		session.Status = domain.SessionPendingApproval
		session.ClosingTime = &now
		result = CloseResult{
			Session:      session,
			ExpectedCash: expected,
			ActualCash:   req.ActualCash,
			Difference:   difference,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Difference.IsZero() {
		s.logger.Warn().
			Int64("cashier_id", cashierID).
			Str("difference", result.Difference.StringFixed(2)).
			Msg("cash session closed with difference")
	}
	return &result, nil
}

type methodTotals struct {
	Cash         decimal.Decimal
	Card         decimal.Decimal
	Transfer     decimal.Decimal
	Check        decimal.Decimal
	Other        decimal.Decimal
	Transactions int
}

func (s *Service) windowTotals(ctx context.Context, db *gorm.DB, cashierID int64, from, to time.Time) (*methodTotals, error) {
	var row struct {
		TotalCash         decimal.Decimal
		TotalCard         decimal.Decimal
		TotalTransfer     decimal.Decimal
		TotalCheck        decimal.Decimal
		TotalOther        decimal.Decimal
		TotalTransactions int
	}
	err := db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN payment_method = 'cash' THEN amount ELSE 0 END), 0) AS total_cash,
			COALESCE(SUM(CASE WHEN payment_method = 'card' THEN amount ELSE 0 END), 0) AS total_card,
			COALESCE(SUM(CASE WHEN payment_method = 'transfer' THEN amount ELSE 0 END), 0) AS total_transfer,
			COALESCE(SUM(CASE WHEN payment_method = 'check' THEN amount ELSE 0 END), 0) AS total_check,
			COALESCE(SUM(CASE WHEN payment_method = 'other' THEN amount ELSE 0 END), 0) AS total_other,
			COUNT(DISTINCT booking_id) AS total_transactions
		FROM payments
		WHERE cashier_id = ? AND payment_date >= ? AND payment_date <= ?`,
		cashierID, from, to,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &methodTotals{
		Cash:         money.Round2(row.TotalCash),
		Card:         money.Round2(row.TotalCard),
		Transfer:     money.Round2(row.TotalTransfer),
		Check:        money.Round2(row.TotalCheck),
		Other:        money.Round2(row.TotalOther),
		Transactions: row.TotalTransactions,
	}, nil
}
