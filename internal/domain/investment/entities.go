package investment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("investment not found")

// Investment is the asset put up for auction. Ownership moves to the winning
// bidder at settlement.
type Investment struct {
	ID           uint64  `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string  `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	OwnerID      string  `gorm:"size:32;index:idx_investments_owner" json:"owner_id"`
	Name         string  `gorm:"size:255" json:"name"`
	Amount       float64 `gorm:"type:decimal(18,2)" json:"amount"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investment) TableName() string { return "investments" }
