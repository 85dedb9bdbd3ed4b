package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]Investment, error)
	// TransferOwner reassigns the asset to a new owner.
	TransferOwner(ctx context.Context, investmentID, newOwnerID string) error
	Save(ctx context.Context, inv *Investment) error
}
