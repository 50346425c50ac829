package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"hostal/internal/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type CustomerSearchRow struct {
	domain.Customer
	TotalBookings int64      `json:"total_bookings"`
	LastVisit     *time.Time `json:"last_visit,omitempty"`
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetByDocument(ctx context.Context, documentNumber string) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).Where("document_number = ?", documentNumber).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Search matches name, document, phone or email and joins completed-stay
// aggregates, best spenders first.
func (r *CustomerRepository) Search(ctx context.Context, q string, limit int) ([]CustomerSearchRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	like := "%" + q + "%"

	// MAX(check_out) loses the column's declared type on sqlite and comes
	// back as its stored text form, so it is scanned raw and parsed here.
	var scanned []struct {
		domain.Customer
		TotalBookings int64
		LastVisit     *string
	}
	err := r.db.WithContext(ctx).Raw(`
SELECT c.*,
       COUNT(b.id)      AS total_bookings,
       MAX(b.check_out) AS last_visit
FROM customers c
LEFT JOIN bookings b ON b.customer_id = c.id AND b.status = ?
WHERE c.full_name LIKE ? OR c.document_number LIKE ? OR c.phone LIKE ? OR c.email LIKE ?
GROUP BY c.id
ORDER BY c.total_spent DESC
LIMIT ?`,
		domain.BookingCheckedOut, like, like, like, like, limit,
	).Scan(&scanned).Error
	if err != nil {
		return nil, err
	}

	rows := make([]CustomerSearchRow, 0, len(scanned))
	for _, s := range scanned {
		rows = append(rows, CustomerSearchRow{
			Customer:      s.Customer,
			TotalBookings: s.TotalBookings,
			LastVisit:     parseStoredTime(s.LastVisit),
		})
	}
	return rows, nil
}

var storedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
}

// parseStoredTime decodes the text forms the sqlite driver stores
// timestamps in, plus RFC 3339 for the postgres path.
func parseStoredTime(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	s := *raw
	if i := strings.Index(s, " m="); i >= 0 {
		s = s[:i]
	}
	for _, layout := range storedTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return &ts
		}
	}
	return nil
}
