package member

import (
	"context"
	"errors"
	"testing"

	investmentDomain "coopvault-backend/internal/domain/investment"
	userDomain "coopvault-backend/internal/domain/user"
	"coopvault-backend/internal/testutil/investmentmock"
	"coopvault-backend/internal/testutil/loanmock"
	"coopvault-backend/internal/testutil/usermock"
)

func TestGuarantorScore(t *testing.T) {
	userWith := func(savings float64) *usermock.Repo {
		return &usermock.Repo{GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			return &userDomain.User{UserID: userID, SavingsBalance: savings}, nil
		}}
	}
	investmentsWith := func(amounts ...float64) *investmentmock.Repo {
		return &investmentmock.Repo{ListByOwnerIDFn: func(ctx context.Context, ownerID string) ([]investmentDomain.Investment, error) {
			out := make([]investmentDomain.Investment, 0, len(amounts))
			for _, a := range amounts {
				out = append(out, investmentDomain.Investment{OwnerID: ownerID, Amount: a})
			}
			return out, nil
		}}
	}
	withLoan := &loanmock.Repo{HasOutstandingLoanFn: func(ctx context.Context, borrowerID string) (bool, error) {
		return true, nil
	}}

	tests := []struct {
		name        string
		users       *usermock.Repo
		investments *investmentmock.Repo
		loans       *loanmock.Repo
		wantScore   float64
		wantLoan    bool
		wantElig    bool
	}{
		{
			name:        "savings plus half of investments",
			users:       userWith(8000),
			investments: investmentsWith(3000, 1000),
			loans:       &loanmock.Repo{},
			wantScore:   10000,
			wantElig:    true,
		},
		{
			name:        "outstanding loan halves the score",
			users:       userWith(8000),
			investments: investmentsWith(3000, 1000),
			loans:       withLoan,
			wantScore:   5000,
			wantLoan:    true,
			wantElig:    false,
		},
		{
			name:        "no investments",
			users:       userWith(12000),
			investments: &investmentmock.Repo{},
			loans:       &loanmock.Repo{},
			wantScore:   12000,
			wantElig:    true,
		},
		{
			name:        "below threshold",
			users:       userWith(500),
			investments: investmentsWith(1000),
			loans:       &loanmock.Repo{},
			wantScore:   1000,
			wantElig:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUsecase(tt.users, tt.investments, tt.loans)
			dto, err := uc.GuarantorScore(context.Background(), "member-1")
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if dto.Score != tt.wantScore {
				t.Fatalf("score = %v, want %v", dto.Score, tt.wantScore)
			}
			if dto.HasActiveLoan != tt.wantLoan || dto.Eligible != tt.wantElig {
				t.Fatalf("flags mismatch: %+v", dto)
			}
		})
	}

	t.Run("unknown member", func(t *testing.T) {
		uc := NewUsecase(&usermock.Repo{}, &investmentmock.Repo{}, &loanmock.Repo{})
		if _, err := uc.GuarantorScore(context.Background(), "ghost"); !errors.Is(err, userDomain.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})
}
