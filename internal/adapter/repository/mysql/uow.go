package mysql

import (
	"context"
	"errors"

	"coopvault-backend/internal/domain/auction"
	"coopvault-backend/internal/domain/loan"
	"coopvault-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Loans:       &LoanRepository{db: tx},
		Repayments:  &RepaymentRepository{db: tx},
		Auctions:    &AuctionRepository{db: tx},
		Bids:        &BidRepository{db: tx},
		Users:       &UserRepository{db: tx},
		Investments: &InvestmentRepository{db: tx},
		Settings:    &SettingsRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the loan row up-front so concurrent approvals serialize
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.ErrNotFound
			}
			return err
		}
		return fn(r, l)
	})
}

func (u *GormUoW) WithinAuctionTx(ctx context.Context, auctionID string, fn func(r uow.Repos, a *auction.Auction) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the auction row up-front so concurrent bids serialize
		a, err := r.Auctions.GetByAuctionIDForUpdate(ctx, auctionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return auction.ErrNotFound
			}
			return err
		}
		return fn(r, a)
	})
}
