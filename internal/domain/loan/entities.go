package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
	StatusLiquidated Status = "liquidated"
)

type PaymentType string

const (
	PaymentTypeRepayment   PaymentType = "repayment"
	PaymentTypeLiquidation PaymentType = "liquidation"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid loan state transition")
	ErrInvalidInput      = errors.New("invalid loan input")
)

type Loan struct {
	ID             uint64  `gorm:"primaryKey;column:id" json:"-"`
	LoanID         string  `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	BorrowerID     string  `gorm:"size:32;index:idx_loans_borrower_active" json:"borrower_id"`
	Principal      float64 `gorm:"type:decimal(18,2)" json:"principal"`
	DurationMonths int     `gorm:"column:duration_months" json:"duration_months"`
	Purpose        string  `gorm:"type:text" json:"purpose"`
	Status         Status  `gorm:"type:enum('pending','approved','rejected','active','completed','liquidated');default:'pending'" json:"status"`

	// Frozen snapshot computed at approval time. Later rate changes never
	// touch an existing loan.
	ProcessingFee      float64 `gorm:"type:decimal(18,2)" json:"processing_fee"`
	InterestRate       float64 `gorm:"type:decimal(6,4)" json:"interest_rate"`
	InterestAmount     float64 `gorm:"type:decimal(18,2)" json:"interest_amount"`
	TotalAmount        float64 `gorm:"type:decimal(18,2)" json:"total_amount"`
	MonthlyInstallment float64 `gorm:"type:decimal(18,2)" json:"monthly_installment"`
	RemainingBalance   float64 `gorm:"type:decimal(18,2)" json:"remaining_balance"`
	PaidAmount         float64 `gorm:"type:decimal(18,2)" json:"paid_amount"`
	ProcessingFeePaid  bool    `gorm:"default:false" json:"processing_fee_paid"`

	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Payment is an append-only ledger entry attached to a loan.
type Payment struct {
	ID          uint64      `gorm:"primaryKey;column:id" json:"-"`
	LoanID      uint64      `gorm:"column:loan_id;not null;index" json:"-"`
	Amount      float64     `gorm:"type:decimal(18,2)" json:"amount"`
	Type        PaymentType `gorm:"type:enum('repayment','liquidation')" json:"type"`
	Description string      `gorm:"type:text" json:"description"`
	PaidAt      time.Time   `gorm:"column:paid_at" json:"paid_at"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "loan_payments" }
