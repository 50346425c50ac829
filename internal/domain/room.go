package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomOccupied  RoomStatus = "occupied"
	RoomCleaning  RoomStatus = "cleaning"
)

// Room status transitions are driven by booking lifecycle events:
// available -> occupied at check-in, occupied -> cleaning at checkout,
// cleaning -> available when housekeeping marks it clean.
type Room struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	RoomNumber string     `gorm:"uniqueIndex;size:10" json:"room_number"`
	RoomType   string     `gorm:"size:30" json:"room_type"`
	Status     RoomStatus `gorm:"size:20;default:available;index" json:"status"`

	BasePrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"base_price"`
	// Short-stay bucket prices. ShortStay6hPrice doubles as the
	// late-checkout hourly rate.
	ShortStay3hPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"short_stay_3h_price"`
	ShortStay6hPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"short_stay_6h_price"`

	MaxOccupancy int       `gorm:"default:2" json:"max_occupancy"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }

// LateCheckoutHourlyRate is the rate charged per started hour past the
// expected checkout time.
func (r *Room) LateCheckoutHourlyRate() decimal.Decimal {
	return r.ShortStay6hPrice
}
