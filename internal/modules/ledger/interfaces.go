package ledger

import (
	"context"

	"gorm.io/gorm"
)

// GuardGate decides whether a document holder may check in. The tx
// argument scopes the lookup to the caller's transaction so the check and
// the booking insert happen in one atomic unit; a nil tx falls back to
// the implementation's own connection.
type GuardGate interface {
	IsBlocked(ctx context.Context, tx *gorm.DB, documentNumber string) (blocked bool, reason string, err error)
}

// NotificationSender is the post-commit side channel. The boolean result
// is advisory; a failed emission never affects the committed operation.
type NotificationSender interface {
	Notify(ctx context.Context, kind string, payload any) bool
}
