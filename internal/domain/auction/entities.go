package auction

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type BidStatus string

const (
	BidStatusActive   BidStatus = "active"
	BidStatusWon      BidStatus = "won"
	BidStatusRefunded BidStatus = "refunded"
)

var (
	ErrNotFound     = errors.New("auction not found")
	ErrOwnBid       = errors.New("cannot bid on own auction")
	ErrNotActive    = errors.New("auction not active")
	ErrEnded        = errors.New("auction ended")
	ErrBelowReserve = errors.New("bid below reserve price")
	ErrBidTooLow    = errors.New("bid must exceed current bid")
	ErrHasBids      = errors.New("auction has bids that must be resolved first")
	ErrBidNotFound  = errors.New("bid not found")
	ErrNotOwner     = errors.New("investment not owned by requester")
	ErrInvalidInput = errors.New("invalid auction input")
)

type Auction struct {
	ID           uint64  `gorm:"primaryKey;column:id" json:"-"`
	AuctionID    string  `gorm:"size:32;uniqueIndex:ux_auctions_auction_id" json:"auction_id"`
	Name         string  `gorm:"size:255;column:name" json:"name"`
	OwnerID      string  `gorm:"size:32;index:idx_auctions_owner" json:"owner_id"`
	InvestmentID string  `gorm:"size:32;column:investment_id" json:"investment_id"`
	ReservePrice float64 `gorm:"type:decimal(18,2)" json:"reserve_price"`
	// CurrentBid is 0 until the first accepted bid, then always equals the
	// highest active bid. It never decreases while the auction is active.
	CurrentBid float64 `gorm:"type:decimal(18,2);default:0" json:"current_bid"`
	Status     Status  `gorm:"type:enum('active','closed','cancelled','completed');default:'active'" json:"status"`

	StartDate time.Time      `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time      `gorm:"column:end_date" json:"end_date"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Auction) TableName() string { return "auctions" }

type Bid struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	BidID     string    `gorm:"size:32;uniqueIndex:ux_bids_bid_id" json:"bid_id"`
	AuctionID uint64    `gorm:"column:auction_id;not null;index" json:"-"`
	BidderID  string    `gorm:"size:32;index:idx_bids_bidder" json:"bidder_id"`
	Amount    float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Status    BidStatus `gorm:"type:enum('active','won','refunded');default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Bid) TableName() string { return "bids" }
