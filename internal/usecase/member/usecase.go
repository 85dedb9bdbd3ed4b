package member

import (
	"context"

	investmentDomain "coopvault-backend/internal/domain/investment"
	loanDomain "coopvault-backend/internal/domain/loan"
	userDomain "coopvault-backend/internal/domain/user"
	"coopvault-backend/internal/usecase/loancalc"
)

type Usecase struct {
	users       userDomain.Repository
	investments investmentDomain.Repository
	loans       loanDomain.Repository
}

func NewUsecase(users userDomain.Repository, investments investmentDomain.Repository, loans loanDomain.Repository) *Usecase {
	return &Usecase{users: users, investments: investments, loans: loans}
}

type GuarantorScoreDTO struct {
	UserID          string  `json:"user_id"`
	Score           float64 `json:"score"`
	SavingsBalance  float64 `json:"savings_balance"`
	InvestmentTotal float64 `json:"investment_total"`
	HasActiveLoan   bool    `json:"has_active_loan"`
	Eligible        bool    `json:"eligible"`
}

// Weighting for the guarantor heuristic: savings count in full, investments
// at half, and an outstanding loan halves the result.
const (
	investmentWeight  = 0.5
	activeLoanPenalty = 0.5
	eligibleThreshold = 10000
)

// GuarantorScore ranks a member's suitability to back another member's loan
// from their savings, their investment holdings, and whether they are
// carrying a loan of their own.
func (u *Usecase) GuarantorScore(ctx context.Context, userID string) (*GuarantorScoreDTO, error) {
	member, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, userDomain.ErrNotFound
	}

	invs, err := u.investments.ListByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	var invTotal float64
	for i := range invs {
		invTotal += invs[i].Amount
	}

	hasLoan, err := u.loans.HasOutstandingLoan(ctx, userID)
	if err != nil {
		return nil, err
	}

	score := member.SavingsBalance + invTotal*investmentWeight
	if hasLoan {
		score *= activeLoanPenalty
	}
	score = loancalc.Round2(score)

	return &GuarantorScoreDTO{
		UserID:          userID,
		Score:           score,
		SavingsBalance:  member.SavingsBalance,
		InvestmentTotal: loancalc.Round2(invTotal),
		HasActiveLoan:   hasLoan,
		Eligible:        score >= eligibleThreshold,
	}, nil
}
