package uow

import (
	"context"

	"coopvault-backend/internal/domain/auction"
	"coopvault-backend/internal/domain/investment"
	"coopvault-backend/internal/domain/loan"
	"coopvault-backend/internal/domain/repayment"
	"coopvault-backend/internal/domain/settings"
	"coopvault-backend/internal/domain/user"
)

// Repos bundles every repository bound to the same transaction.
type Repos struct {
	Loans       loan.Repository
	Repayments  repayment.Repository
	Auctions    auction.Repository
	Bids        auction.BidRepository
	Users       user.Repository
	Investments investment.Repository
	Settings    settings.Repository
}

// UnitOfWork runs a function inside one database transaction so every engine
// operation applies all-or-nothing.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row up-front; concurrent repayment
	// approvals against the same loan serialize here.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
	// WithinAuctionTx locks the auction row up-front; concurrent bids on the
	// same auction serialize here, so two bids can never both pass the
	// exceeds-current-bid check.
	WithinAuctionTx(ctx context.Context, auctionID string, fn func(r Repos, a *auction.Auction) error) error
}
