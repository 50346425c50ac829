package domain

import "time"

// BlacklistEntry flags a document number whose holder may not check in.
type BlacklistEntry struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	DocumentNumber string    `gorm:"uniqueIndex;size:50" json:"document_number"`
	FullName       string    `gorm:"size:150" json:"full_name,omitempty"`
	Reason         string    `gorm:"size:255" json:"reason"`
	AddedBy        int64     `json:"added_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func (BlacklistEntry) TableName() string { return "blacklist" }
