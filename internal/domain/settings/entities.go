package settings

import (
	"errors"
	"time"
)

// Defaults applied when no settings row exists yet.
const (
	DefaultInterestRatePercent      = 10.0
	DefaultProcessingFeeRatePercent = 1.0
)

var ErrInvalidRates = errors.New("invalid rate settings")

// RateSettings is a singleton row. Loans snapshot these values at approval
// time; changing them here never affects existing loans.
type RateSettings struct {
	ID                       uint64    `gorm:"primaryKey;column:id" json:"-"`
	InterestRatePercent      float64   `gorm:"type:decimal(6,2)" json:"interest_rate_percent"`
	ProcessingFeeRatePercent float64   `gorm:"type:decimal(6,2)" json:"processing_fee_rate_percent"`
	UpdatedBy                string    `gorm:"size:32" json:"updated_by,omitempty"`
	CreatedAt                time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RateSettings) TableName() string { return "rate_settings" }

// Default returns the settings used when none have been stored.
func Default() RateSettings {
	return RateSettings{
		InterestRatePercent:      DefaultInterestRatePercent,
		ProcessingFeeRatePercent: DefaultProcessingFeeRatePercent,
	}
}
