package repayment

import "context"

type Repository interface {
	Create(ctx context.Context, r *Repayment) error
	GetByRepaymentID(ctx context.Context, repaymentID string) (*Repayment, error)
	// GetByRepaymentIDForUpdate locks the row; only valid inside a transaction.
	GetByRepaymentIDForUpdate(ctx context.Context, repaymentID string) (*Repayment, error)
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Repayment, error)
	Save(ctx context.Context, r *Repayment) error
}
