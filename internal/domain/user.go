package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:150" json:"full_name"`
	Username     string    `gorm:"uniqueIndex;size:60" json:"username"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	Role         Role      `gorm:"size:20" json:"role"`
	// Creators set this explicitly; a column default would make GORM
	// drop an explicit false on insert.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
