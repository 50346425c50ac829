package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID             int64  `gorm:"primaryKey" json:"id"`
	FullName       string `gorm:"size:150" json:"full_name"`
	DocumentType   string `gorm:"size:20;default:CI" json:"document_type"`
	DocumentNumber string `gorm:"size:50;index" json:"document_number"`
	Phone          string `gorm:"size:30" json:"phone,omitempty"`
	Whatsapp       string `gorm:"size:30" json:"whatsapp,omitempty"`
	Email          string `gorm:"size:150" json:"email,omitempty"`
	Age            *int   `json:"age,omitempty"`
	Nationality    string `gorm:"size:60" json:"nationality,omitempty"`
	Origin         string `gorm:"size:100" json:"origin,omitempty"`

	// Aggregates updated at checkout only.
	TotalStays   int             `gorm:"default:0" json:"total_stays"`
	TotalSpent   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_spent"`
	IsFrequent   bool            `gorm:"default:false" json:"is_frequent"`
	LastStayDate *time.Time      `json:"last_stay_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
