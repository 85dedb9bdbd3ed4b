package investmentmock

import (
	"context"

	domain "coopvault-backend/internal/domain/investment"
)

// Repo is a function-backed mock that satisfies investment.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, inv *domain.Investment) error
	GetByInvestmentIDFn func(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListByOwnerIDFn     func(ctx context.Context, ownerID string) ([]domain.Investment, error)
	TransferOwnerFn     func(ctx context.Context, investmentID, newOwnerID string) error
	SaveFn              func(ctx context.Context, inv *domain.Investment) error
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByOwnerID(ctx context.Context, ownerID string) ([]domain.Investment, error) {
	if m.ListByOwnerIDFn != nil {
		return m.ListByOwnerIDFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *Repo) TransferOwner(ctx context.Context, investmentID, newOwnerID string) error {
	if m.TransferOwnerFn != nil {
		return m.TransferOwnerFn(ctx, investmentID, newOwnerID)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, inv *domain.Investment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}
