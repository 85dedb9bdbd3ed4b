package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// GetByUserIDForUpdate locks the user row; only valid inside a transaction.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*User, error)
	// IncrementSavings applies an atomic delta to savings_balance. Negative
	// deltas debit; callers are responsible for the funds check first.
	IncrementSavings(ctx context.Context, userID string, delta float64) error
	// IncrementTotalLoans applies an atomic delta to total_loans.
	IncrementTotalLoans(ctx context.Context, userID string, delta float64) error
	Save(ctx context.Context, u *User) error
}
