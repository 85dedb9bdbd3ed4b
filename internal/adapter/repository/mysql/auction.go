package mysql

import (
	"context"

	auctionDomain "coopvault-backend/internal/domain/auction"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuctionRepository struct{ db *gorm.DB }

func NewAuctionRepository(db *gorm.DB) *AuctionRepository { return &AuctionRepository{db: db} }

func (r *AuctionRepository) Create(ctx context.Context, a *auctionDomain.Auction) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AuctionRepository) Save(ctx context.Context, a *auctionDomain.Auction) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AuctionRepository) GetByAuctionID(ctx context.Context, auctionID string) (*auctionDomain.Auction, error) {
	var out auctionDomain.Auction
	res := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).First(&out)
	return &out, res.Error
}

func (r *AuctionRepository) GetByAuctionIDForUpdate(ctx context.Context, auctionID string) (*auctionDomain.Auction, error) {
	var out auctionDomain.Auction
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("auction_id = ?", auctionID).
		First(&out)
	return &out, res.Error
}

func (r *AuctionRepository) ListByStatus(ctx context.Context, status auctionDomain.Status) ([]auctionDomain.Auction, error) {
	var out []auctionDomain.Auction
	res := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("end_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

type BidRepository struct{ db *gorm.DB }

func NewBidRepository(db *gorm.DB) *BidRepository { return &BidRepository{db: db} }

func (r *BidRepository) Create(ctx context.Context, b *auctionDomain.Bid) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BidRepository) Save(ctx context.Context, b *auctionDomain.Bid) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// ListByAuctionID orders by amount desc then created_at asc so the head of
// the slice is the settlement winner (first bidder wins amount ties).
func (r *BidRepository) ListByAuctionID(ctx context.Context, auctionNumericID uint64) ([]auctionDomain.Bid, error) {
	var out []auctionDomain.Bid
	res := r.db.WithContext(ctx).
		Where("auction_id = ?", auctionNumericID).
		Order("amount DESC, created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
