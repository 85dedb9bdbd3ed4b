package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row; only valid inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]Loan, error)
	HasOutstandingLoan(ctx context.Context, borrowerID string) (bool, error)
	Save(ctx context.Context, l *Loan) error

	AppendPayment(ctx context.Context, p *Payment) error
	ListPayments(ctx context.Context, loanNumericID uint64) ([]Payment, error)
}
