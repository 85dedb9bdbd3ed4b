package auction

import (
	"context"
	"log"
	"time"

	domain "coopvault-backend/internal/domain/auction"
	investmentDomain "coopvault-backend/internal/domain/investment"
	"coopvault-backend/internal/domain/uow"
	userDomain "coopvault-backend/internal/domain/user"
	"coopvault-backend/pkg/id"
)

// Notifier sends fire-and-forget member notifications.
type Notifier interface {
	AuctionWon(email, auctionName string, amount float64) error
}

type Usecase struct {
	repo     domain.Repository
	tx       uow.UnitOfWork
	notifier Notifier
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, n Notifier) *Usecase {
	return &Usecase{repo: repo, tx: tx, notifier: n}
}

type CreateInput struct {
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	InvestmentID string    `json:"investment_id"`
	ReservePrice float64   `json:"reserve_price"`
	EndDate      time.Time `json:"end_date"`
}

type AuctionDTO struct {
	AuctionID    string    `json:"auction_id"`
	Name         string    `json:"name"`
	OwnerID      string    `json:"owner_id"`
	InvestmentID string    `json:"investment_id"`
	ReservePrice float64   `json:"reserve_price"`
	CurrentBid   float64   `json:"current_bid"`
	Status       string    `json:"status"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

type BidDTO struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SettlementDTO struct {
	AuctionID     string  `json:"auction_id"`
	Status        string  `json:"status"`
	WinningBidID  string  `json:"winning_bid_id,omitempty"`
	WinnerID      string  `json:"winner_id,omitempty"`
	WinningAmount float64 `json:"winning_amount,omitempty"`
	RefundedBids  int     `json:"refunded_bids"`
}

func toDTO(a *domain.Auction) *AuctionDTO {
	return &AuctionDTO{
		AuctionID:    a.AuctionID,
		Name:         a.Name,
		OwnerID:      a.OwnerID,
		InvestmentID: a.InvestmentID,
		ReservePrice: a.ReservePrice,
		CurrentBid:   a.CurrentBid,
		Status:       string(a.Status),
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
	}
}

// Create opens an auction over an investment the owner holds.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*AuctionDTO, error) {
	if in.ReservePrice <= 0 || in.Name == "" || !in.EndDate.After(time.Now().UTC()) {
		return nil, domain.ErrInvalidInput
	}
	if u.tx == nil {
		return nil, domain.ErrNotFound
	}

	var dto *AuctionDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		inv, err := r.Investments.GetByInvestmentID(ctx, in.InvestmentID)
		if err != nil {
			return investmentDomain.ErrNotFound
		}
		if inv.OwnerID != in.OwnerID {
			return domain.ErrNotOwner
		}
		a := &domain.Auction{
			AuctionID:    id.NewID32(),
			Name:         in.Name,
			OwnerID:      in.OwnerID,
			InvestmentID: in.InvestmentID,
			ReservePrice: in.ReservePrice,
			CurrentBid:   0,
			Status:       domain.StatusActive,
			StartDate:    time.Now().UTC(),
			EndDate:      in.EndDate.UTC(),
		}
		if err := r.Auctions.Create(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// PlaceBid validates and records a bid. Preconditions run in a fixed order
// and the first failure wins; the debit, the bid insert, and the currentBid
// bump apply as one transaction serialized on the auction row.
//
// The bid amount is reserved from the bidder's balance immediately and only
// refunded at settlement, even if the bidder is outbid in the meantime.
func (u *Usecase) PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (*BidDTO, error) {
	if u.tx == nil {
		return nil, domain.ErrNotFound
	}
	var dto *BidDTO

	err := u.tx.WithinAuctionTx(ctx, auctionID, func(r uow.Repos, a *domain.Auction) error {
		if bidderID == a.OwnerID {
			return domain.ErrOwnBid
		}
		if a.Status != domain.StatusActive {
			return domain.ErrNotActive
		}
		if time.Now().UTC().After(a.EndDate) {
			return domain.ErrEnded
		}
		if amount < a.ReservePrice {
			return domain.ErrBelowReserve
		}
		if amount <= a.CurrentBid {
			return domain.ErrBidTooLow
		}

		bidder, err := r.Users.GetByUserIDForUpdate(ctx, bidderID)
		if err != nil {
			return userDomain.ErrNotFound
		}
		if bidder.SavingsBalance < amount {
			return userDomain.ErrInsufficientFunds
		}

		if err := r.Users.IncrementSavings(ctx, bidderID, -amount); err != nil {
			return err
		}
		b := &domain.Bid{
			BidID:     id.NewID32(),
			AuctionID: a.ID,
			BidderID:  bidderID,
			Amount:    amount,
			Status:    domain.BidStatusActive,
			CreatedAt: time.Now().UTC(),
		}
		if err := r.Bids.Create(ctx, b); err != nil {
			return err
		}
		a.CurrentBid = amount
		if err := r.Auctions.Save(ctx, a); err != nil {
			return err
		}

		dto = &BidDTO{
			BidID:     b.BidID,
			AuctionID: a.AuctionID,
			BidderID:  b.BidderID,
			Amount:    b.Amount,
			Status:    string(b.Status),
			CreatedAt: b.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Close settles an active auction. With no bids it simply closes. Otherwise
// the highest bid wins (earliest bid breaks amount ties), the winning amount
// is paid to the owner, the investment changes hands, and every other bid is
// refunded. Settlement runs exactly once: a second close fails the status
// guard and mutates nothing.
func (u *Usecase) Close(ctx context.Context, auctionID string) (*SettlementDTO, error) {
	if u.tx == nil {
		return nil, domain.ErrNotFound
	}
	var dto *SettlementDTO
	var winnerEmail string
	var winnerAmount float64
	var auctionName string

	err := u.tx.WithinAuctionTx(ctx, auctionID, func(r uow.Repos, a *domain.Auction) error {
		if a.Status != domain.StatusActive {
			return domain.ErrNotActive
		}

		now := time.Now().UTC()
		a.EndDate = now
		a.Status = domain.StatusClosed
		dto = &SettlementDTO{AuctionID: a.AuctionID, Status: string(domain.StatusClosed)}

		if a.CurrentBid > 0 {
			bids, err := r.Bids.ListByAuctionID(ctx, a.ID)
			if err != nil {
				return err
			}
			if len(bids) == 0 {
				return domain.ErrBidNotFound
			}
			winner := &bids[0]

			winner.Status = domain.BidStatusWon
			if err := r.Bids.Save(ctx, winner); err != nil {
				return err
			}
			if err := r.Users.IncrementSavings(ctx, a.OwnerID, winner.Amount); err != nil {
				return err
			}
			if err := r.Investments.TransferOwner(ctx, a.InvestmentID, winner.BidderID); err != nil {
				return err
			}
			for i := 1; i < len(bids); i++ {
				b := &bids[i]
				b.Status = domain.BidStatusRefunded
				if err := r.Bids.Save(ctx, b); err != nil {
					return err
				}
				if err := r.Users.IncrementSavings(ctx, b.BidderID, b.Amount); err != nil {
					return err
				}
			}

			a.Status = domain.StatusCompleted
			dto.Status = string(domain.StatusCompleted)
			dto.WinningBidID = winner.BidID
			dto.WinnerID = winner.BidderID
			dto.WinningAmount = winner.Amount
			dto.RefundedBids = len(bids) - 1

			if w, err := r.Users.GetByUserID(ctx, winner.BidderID); err == nil {
				winnerEmail = w.Email
			}
			winnerAmount = winner.Amount
			auctionName = a.Name
		}

		return r.Auctions.Save(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	if u.notifier != nil && winnerEmail != "" {
		go func() {
			if err := u.notifier.AuctionWon(winnerEmail, auctionName, winnerAmount); err != nil {
				log.Printf("auction %s: winner notice failed: %v", auctionID, err)
			}
		}()
	}
	return dto, nil
}

// Cancel withdraws an auction that has attracted no bids yet. Once a bid
// exists the auction can only be closed, so reserved funds are resolved.
func (u *Usecase) Cancel(ctx context.Context, auctionID string) (*AuctionDTO, error) {
	if u.tx == nil {
		return nil, domain.ErrNotFound
	}
	var dto *AuctionDTO
	err := u.tx.WithinAuctionTx(ctx, auctionID, func(r uow.Repos, a *domain.Auction) error {
		if a.Status != domain.StatusActive {
			return domain.ErrNotActive
		}
		if a.CurrentBid > 0 {
			return domain.ErrHasBids
		}
		a.Status = domain.StatusCancelled
		if err := r.Auctions.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, auctionID string) (*AuctionDTO, error) {
	a, err := u.repo.GetByAuctionID(ctx, auctionID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toDTO(a), nil
}

func (u *Usecase) ListActive(ctx context.Context) ([]AuctionDTO, error) {
	as, err := u.repo.ListByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	out := make([]AuctionDTO, 0, len(as))
	for i := range as {
		out = append(out, *toDTO(&as[i]))
	}
	return out, nil
}
