package usermock

import (
	"context"

	domain "coopvault-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, u *domain.User) error
	GetByUserIDFn          func(ctx context.Context, userID string) (*domain.User, error)
	GetByUserIDForUpdateFn func(ctx context.Context, userID string) (*domain.User, error)
	IncrementSavingsFn     func(ctx context.Context, userID string, delta float64) error
	IncrementTotalLoansFn  func(ctx context.Context, userID string, delta float64) error
	SaveFn                 func(ctx context.Context, u *domain.User) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDForUpdateFn != nil {
		return m.GetByUserIDForUpdateFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) IncrementSavings(ctx context.Context, userID string, delta float64) error {
	if m.IncrementSavingsFn != nil {
		return m.IncrementSavingsFn(ctx, userID, delta)
	}
	return nil
}

func (m *Repo) IncrementTotalLoans(ctx context.Context, userID string, delta float64) error {
	if m.IncrementTotalLoansFn != nil {
		return m.IncrementTotalLoansFn(ctx, userID, delta)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}
