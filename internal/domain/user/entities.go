package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// User is a cooperative member. SavingsBalance and TotalLoans are aggregate
// counters; they are only ever mutated through repository increments inside
// the unit of work that owns the transition, so they cannot drift from the
// underlying ledger within a transaction.
type User struct {
	ID             uint64  `gorm:"primaryKey;column:id" json:"-"`
	UserID         string  `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name           string  `gorm:"size:255" json:"name"`
	Email          string  `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	SavingsBalance float64 `gorm:"type:decimal(18,2);default:0" json:"savings_balance"`
	TotalLoans     float64 `gorm:"type:decimal(18,2);default:0" json:"total_loans"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
