package auction

import "context"

type Repository interface {
	Create(ctx context.Context, a *Auction) error
	GetByAuctionID(ctx context.Context, auctionID string) (*Auction, error)
	// GetByAuctionIDForUpdate locks the auction row; only valid inside a
	// transaction. Every bid/settlement mutation serializes on this lock.
	GetByAuctionIDForUpdate(ctx context.Context, auctionID string) (*Auction, error)
	ListByStatus(ctx context.Context, status Status) ([]Auction, error)
	Save(ctx context.Context, a *Auction) error
}

type BidRepository interface {
	Create(ctx context.Context, b *Bid) error
	// ListByAuctionID returns bids ordered amount descending then createdAt
	// ascending, so the first element is the settlement winner.
	ListByAuctionID(ctx context.Context, auctionNumericID uint64) ([]Bid, error)
	Save(ctx context.Context, b *Bid) error
}
