package uowmock

import (
	"context"
	"errors"

	"coopvault-backend/internal/domain/auction"
	"coopvault-backend/internal/domain/loan"
	"coopvault-backend/internal/domain/uow"
)

// Compile-time compliance.
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Fill in the
// function fields a test needs; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn    func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
	WithinAuctionTxFn func(ctx context.Context, auctionID string, fn func(r uow.Repos, a *auction.Auction) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinAuctionTx(ctx context.Context, auctionID string, fn func(r uow.Repos, a *auction.Auction) error) error {
	if m.WithinAuctionTxFn != nil {
		return m.WithinAuctionTxFn(ctx, auctionID, fn)
	}
	return errUnimplemented
}
