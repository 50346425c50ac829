package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a POS catalog item chargeable against a booking.
type Product struct {
	ID             int64           `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"size:100" json:"name"`
	Category       string          `gorm:"size:50;index" json:"category"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	TaxRate        decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	TrackInventory bool            `gorm:"default:false" json:"track_inventory"`
	StockQuantity  int             `gorm:"default:0" json:"stock_quantity"`
	// Creators set this explicitly; a column default would make GORM
	// drop an explicit false on insert.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }
