package auctionmock

import (
	"context"

	domain "coopvault-backend/internal/domain/auction"
)

// Repo is a function-backed mock that satisfies auction.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, a *domain.Auction) error
	GetByAuctionIDFn          func(ctx context.Context, auctionID string) (*domain.Auction, error)
	GetByAuctionIDForUpdateFn func(ctx context.Context, auctionID string) (*domain.Auction, error)
	ListByStatusFn            func(ctx context.Context, status domain.Status) ([]domain.Auction, error)
	SaveFn                    func(ctx context.Context, a *domain.Auction) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Auction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAuctionID(ctx context.Context, auctionID string) (*domain.Auction, error) {
	if m.GetByAuctionIDFn != nil {
		return m.GetByAuctionIDFn(ctx, auctionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByAuctionIDForUpdate(ctx context.Context, auctionID string) (*domain.Auction, error) {
	if m.GetByAuctionIDForUpdateFn != nil {
		return m.GetByAuctionIDForUpdateFn(ctx, auctionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Auction, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Auction) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

// BidRepo is a function-backed mock that satisfies auction.BidRepository.
type BidRepo struct {
	CreateFn          func(ctx context.Context, b *domain.Bid) error
	ListByAuctionIDFn func(ctx context.Context, auctionNumericID uint64) ([]domain.Bid, error)
	SaveFn            func(ctx context.Context, b *domain.Bid) error
}

func (m *BidRepo) Create(ctx context.Context, b *domain.Bid) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *BidRepo) ListByAuctionID(ctx context.Context, auctionNumericID uint64) ([]domain.Bid, error) {
	if m.ListByAuctionIDFn != nil {
		return m.ListByAuctionIDFn(ctx, auctionNumericID)
	}
	return nil, nil
}

func (m *BidRepo) Save(ctx context.Context, b *domain.Bid) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}
