package repayment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
)

var (
	ErrNotFound        = errors.New("repayment not found")
	ErrAlreadyReviewed = errors.New("repayment already reviewed")
)

// Repayment is a borrower-submitted payment claim. It has no effect on the
// loan balance until an admin approves it.
type Repayment struct {
	ID          uint64  `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID string  `gorm:"size:32;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	LoanID      uint64  `gorm:"column:loan_id;not null;index" json:"-"`
	LoanRef     string  `gorm:"size:32;column:loan_ref" json:"loan_id"`
	Amount      float64 `gorm:"type:decimal(18,2)" json:"amount"`
	ProofURL    string  `gorm:"type:text" json:"proof_url"`
	Status      Status  `gorm:"type:enum('pending_review','approved','rejected');default:'pending_review'" json:"status"`

	SubmittedAt time.Time      `gorm:"column:submitted_at" json:"submitted_at"`
	ReviewedAt  *time.Time     `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy  string         `gorm:"size:32;column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewNotes string         `gorm:"type:text" json:"review_notes,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Repayment) TableName() string { return "repayments" }
