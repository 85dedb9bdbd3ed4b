package repayment

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "coopvault-backend/internal/domain/loan"
	domain "coopvault-backend/internal/domain/repayment"
	"coopvault-backend/internal/domain/uow"
	"coopvault-backend/internal/testutil/loanmock"
	"coopvault-backend/internal/testutil/repaymentmock"
	"coopvault-backend/internal/testutil/uowmock"
)

func passthroughTx(repos uow.Repos) *uowmock.UoW {
	return &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinLoanTxFn: func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loanDomain.Loan) error) error {
			l, err := repos.Loans.GetByLoanIDForUpdate(ctx, loanID)
			if err != nil {
				return loanDomain.ErrNotFound
			}
			return fn(repos, l)
		},
	}
}

func TestSubmit(t *testing.T) {
	activeLoan := &loanDomain.Loan{ID: 3, LoanID: "LN-1", Status: loanDomain.StatusActive}

	t.Run("claim starts pending review and loan is untouched", func(t *testing.T) {
		var created *domain.Repayment
		var loanSaved bool
		repos := uow.Repos{
			Loans: &loanmock.Repo{
				GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
					return activeLoan, nil
				},
				SaveFn: func(ctx context.Context, l *loanDomain.Loan) error {
					loanSaved = true
					return nil
				},
			},
			Repayments: &repaymentmock.Repo{CreateFn: func(ctx context.Context, r *domain.Repayment) error {
				created = r
				return nil
			}},
		}
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))

		dto, err := uc.Submit(context.Background(), SubmitInput{LoanID: "LN-1", Amount: 9166.67, ProofURL: "https://img/p.jpg"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if created == nil || created.Status != domain.StatusPendingReview {
			t.Fatalf("claim not pending_review: %+v", created)
		}
		if created.LoanID != 3 || created.LoanRef != "LN-1" {
			t.Fatalf("loan refs mismatch: %+v", created)
		}
		if loanSaved {
			t.Fatal("submit must not touch the loan")
		}
		if dto.Status != string(domain.StatusPendingReview) {
			t.Fatalf("dto status = %s", dto.Status)
		}
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(uow.Repos{}))
		if _, err := uc.Submit(context.Background(), SubmitInput{LoanID: "LN-1", Amount: 0}); !errors.Is(err, loanDomain.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})

	t.Run("pending loan cannot receive claims", func(t *testing.T) {
		repos := uow.Repos{
			Loans: &loanmock.Repo{GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
				return &loanDomain.Loan{ID: 3, LoanID: "LN-1", Status: loanDomain.StatusPending}, nil
			}},
		}
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))
		if _, err := uc.Submit(context.Background(), SubmitInput{LoanID: "LN-1", Amount: 100}); !errors.Is(err, loanDomain.ErrInvalidTransition) {
			t.Fatalf("want ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("missing loan leaves no side effects", func(t *testing.T) {
		var created bool
		repos := uow.Repos{
			Loans: &loanmock.Repo{},
			Repayments: &repaymentmock.Repo{CreateFn: func(ctx context.Context, r *domain.Repayment) error {
				created = true
				return nil
			}},
		}
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))
		if _, err := uc.Submit(context.Background(), SubmitInput{LoanID: "nope", Amount: 100}); !errors.Is(err, loanDomain.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
		if created {
			t.Fatal("claim must not be created for a missing loan")
		}
	})
}

func TestApprove(t *testing.T) {
	newClaim := func(amount float64) *domain.Repayment {
		return &domain.Repayment{
			ID: 11, RepaymentID: "RP-1", LoanID: 3, LoanRef: "LN-1",
			Amount: amount, Status: domain.StatusPendingReview,
			SubmittedAt: time.Now().UTC(),
		}
	}
	newLoan := func() *loanDomain.Loan {
		return &loanDomain.Loan{
			ID: 3, LoanID: "LN-1", BorrowerID: "b1",
			Status:           loanDomain.StatusApproved,
			TotalAmount:      110000,
			RemainingBalance: 110000,
			PaidAmount:       0,
		}
	}

	t.Run("partial repayment activates the loan", func(t *testing.T) {
		claim := newClaim(9166.67)
		l := newLoan()
		var payment *loanDomain.Payment
		repos := uow.Repos{
			Loans: &loanmock.Repo{
				GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
					return l, nil
				},
				AppendPaymentFn: func(ctx context.Context, p *loanDomain.Payment) error {
					payment = p
					return nil
				},
			},
			Repayments: &repaymentmock.Repo{
				GetByRepaymentIDForUpdateFn: func(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
					return claim, nil
				},
			},
		}
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))

		dto, err := uc.Approve(context.Background(), ReviewInput{RepaymentID: "RP-1", ReviewerID: "admin"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if l.PaidAmount != 9166.67 {
			t.Fatalf("paid = %v", l.PaidAmount)
		}
		if l.RemainingBalance != 100833.33 {
			t.Fatalf("remaining = %v, want 100833.33", l.RemainingBalance)
		}
		if l.Status != loanDomain.StatusActive {
			t.Fatalf("loan status = %s, want active", l.Status)
		}
		if payment == nil || payment.Type != loanDomain.PaymentTypeRepayment {
			t.Fatalf("payment record mismatch: %+v", payment)
		}
		if dto.LoanStatus != string(loanDomain.StatusActive) || dto.LoanRemaining != 100833.33 {
			t.Fatalf("dto loan view mismatch: %+v", dto)
		}
		if claim.Status != domain.StatusApproved || claim.ReviewedBy != "admin" || claim.ReviewedAt == nil {
			t.Fatalf("claim review fields mismatch: %+v", claim)
		}
	})

	t.Run("final repayment completes the loan", func(t *testing.T) {
		claim := newClaim(10000)
		l := newLoan()
		l.PaidAmount = 100000
		l.RemainingBalance = 10000
		repos := uow.Repos{
			Loans: &loanmock.Repo{GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
				return l, nil
			}},
			Repayments: &repaymentmock.Repo{GetByRepaymentIDForUpdateFn: func(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
				return claim, nil
			}},
		}
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))

		dto, err := uc.Approve(context.Background(), ReviewInput{RepaymentID: "RP-1", ReviewerID: "admin"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if l.RemainingBalance != 0 || l.Status != loanDomain.StatusCompleted {
			t.Fatalf("loan not completed: remaining=%v status=%s", l.RemainingBalance, l.Status)
		}
		if dto.LoanStatus != string(loanDomain.StatusCompleted) {
			t.Fatalf("dto loan status = %s", dto.LoanStatus)
		}
	})

	t.Run("overpayment clamps the balance at zero", func(t *testing.T) {
		claim := newClaim(20000)
		l := newLoan()
		l.PaidAmount = 100000
		l.RemainingBalance = 10000
		repos := uow.Repos{
			Loans: &loanmock.Repo{GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
				return l, nil
			}},
			Repayments: &repaymentmock.Repo{GetByRepaymentIDForUpdateFn: func(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
				return claim, nil
			}},
		}
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))

		if _, err := uc.Approve(context.Background(), ReviewInput{RepaymentID: "RP-1"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if l.RemainingBalance != 0 {
			t.Fatalf("remaining = %v, want 0", l.RemainingBalance)
		}
		if l.Status != loanDomain.StatusCompleted {
			t.Fatalf("loan status = %s", l.Status)
		}
	})

	t.Run("already reviewed claim", func(t *testing.T) {
		claim := newClaim(100)
		claim.Status = domain.StatusApproved
		repos := uow.Repos{
			Repayments: &repaymentmock.Repo{GetByRepaymentIDForUpdateFn: func(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
				return claim, nil
			}},
		}
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))
		if _, err := uc.Approve(context.Background(), ReviewInput{RepaymentID: "RP-1"}); !errors.Is(err, domain.ErrAlreadyReviewed) {
			t.Fatalf("want ErrAlreadyReviewed, got %v", err)
		}
	})

	t.Run("missing claim", func(t *testing.T) {
		repos := uow.Repos{Repayments: &repaymentmock.Repo{}}
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))
		if _, err := uc.Approve(context.Background(), ReviewInput{RepaymentID: "nope"}); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("claim against a missing loan mutates nothing", func(t *testing.T) {
		claim := newClaim(100)
		var saved bool
		repos := uow.Repos{
			Loans: &loanmock.Repo{},
			Repayments: &repaymentmock.Repo{
				GetByRepaymentIDForUpdateFn: func(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
					return claim, nil
				},
				SaveFn: func(ctx context.Context, r *domain.Repayment) error {
					saved = true
					return nil
				},
			},
		}
		uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))
		if _, err := uc.Approve(context.Background(), ReviewInput{RepaymentID: "RP-1"}); !errors.Is(err, loanDomain.ErrNotFound) {
			t.Fatalf("want loan ErrNotFound, got %v", err)
		}
		if saved || claim.Status != domain.StatusPendingReview {
			t.Fatal("claim must stay pending when the loan is missing")
		}
	})
}

func TestReject(t *testing.T) {
	claim := &domain.Repayment{ID: 11, RepaymentID: "RP-1", LoanID: 3, LoanRef: "LN-1", Amount: 500, Status: domain.StatusPendingReview}
	var loanTouched bool
	repos := uow.Repos{
		Loans: &loanmock.Repo{SaveFn: func(ctx context.Context, l *loanDomain.Loan) error {
			loanTouched = true
			return nil
		}},
		Repayments: &repaymentmock.Repo{GetByRepaymentIDForUpdateFn: func(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
			return claim, nil
		}},
	}
	uc := NewUsecase(&repaymentmock.Repo{}, passthroughTx(repos))

	dto, err := uc.Reject(context.Background(), ReviewInput{RepaymentID: "RP-1", ReviewerID: "admin", Notes: "blurry proof"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dto.Status != string(domain.StatusRejected) || dto.ReviewNotes != "blurry proof" {
		t.Fatalf("dto mismatch: %+v", dto)
	}
	if loanTouched {
		t.Fatal("rejection must never touch the loan")
	}

	// a second review attempt fails
	if _, err := uc.Reject(context.Background(), ReviewInput{RepaymentID: "RP-1"}); !errors.Is(err, domain.ErrAlreadyReviewed) {
		t.Fatalf("want ErrAlreadyReviewed, got %v", err)
	}
}
