package loan

import (
	"context"
	"log"
	"time"

	domain "coopvault-backend/internal/domain/loan"
	"coopvault-backend/internal/domain/uow"
	"coopvault-backend/internal/usecase/loancalc"
	"coopvault-backend/pkg/id"
)

// Notifier sends fire-and-forget member notifications. Failures are logged
// by the caller and never roll back a state change.
type Notifier interface {
	LoanApproved(email string, loanID string, total, installment float64) error
}

type Usecase struct {
	repo     domain.Repository
	tx       uow.UnitOfWork
	notifier Notifier
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, n Notifier) *Usecase {
	return &Usecase{repo: repo, tx: tx, notifier: n}
}

// Apply registers a new loan application in the pending state. Details stay
// zero until approval.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if in.BorrowerID == "" || in.Principal <= 0 || in.DurationMonths <= 0 {
		return nil, domain.ErrInvalidInput
	}

	l := &domain.Loan{
		LoanID:          id.NewID32(),
		BorrowerID:      in.BorrowerID,
		Principal:       in.Principal,
		DurationMonths:  in.DurationMonths,
		Purpose:         in.Purpose,
		Status:          domain.StatusPending,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Approve transitions pending → approved. The repayment details are computed
// from the rate settings in effect right now and frozen onto the loan, and
// the borrower's aggregate loan total grows by the principal.
func (u *Usecase) Approve(ctx context.Context, loanID string) (*LoanDTO, error) {
	if u.tx == nil {
		return nil, domain.ErrInvalidTransition
	}
	var dto *LoanDTO
	var notifyEmail string
	var notified *domain.Loan

	err := u.tx.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}

		rates, err := r.Settings.Current(ctx)
		if err != nil {
			return err
		}
		d, err := loancalc.Compute(l.Principal, l.DurationMonths, rates.InterestRatePercent, rates.ProcessingFeeRatePercent)
		if err != nil {
			return err
		}

		l.ProcessingFee = d.ProcessingFee
		l.InterestRate = d.InterestRate
		l.InterestAmount = d.InterestAmount
		l.TotalAmount = d.TotalAmount
		l.MonthlyInstallment = d.MonthlyInstallment
		l.RemainingBalance = d.RemainingBalance
		l.PaidAmount = 0
		l.ProcessingFeePaid = false
		l.Status = domain.StatusApproved
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		if err := r.Users.IncrementTotalLoans(ctx, l.BorrowerID, l.Principal); err != nil {
			return err
		}
		if borrower, err := r.Users.GetByUserID(ctx, l.BorrowerID); err == nil {
			notifyEmail = borrower.Email
		}

		notified = l
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if u.notifier != nil && notifyEmail != "" {
		go func(email string, l domain.Loan) {
			if err := u.notifier.LoanApproved(email, l.LoanID, l.TotalAmount, l.MonthlyInstallment); err != nil {
				log.Printf("loan %s: approval notice failed: %v", l.LoanID, err)
			}
		}(notifyEmail, *notified)
	}
	return dto, nil
}

// Reject transitions pending → rejected. Terminal, no balance effects.
func (u *Usecase) Reject(ctx context.Context, loanID string) (*LoanDTO, error) {
	if u.tx == nil {
		return nil, domain.ErrInvalidTransition
	}
	var dto *LoanDTO
	err := u.tx.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}
		l.Status = domain.StatusRejected
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Liquidate is the admin early-payoff path: half the remaining balance is
// credited, the balance drops to zero, and the loan becomes liquidated.
// Only approved loans qualify; an active loan must run to completion.
func (u *Usecase) Liquidate(ctx context.Context, loanID string) (*LoanDTO, error) {
	if u.tx == nil {
		return nil, domain.ErrInvalidTransition
	}
	var dto *LoanDTO
	err := u.tx.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusApproved {
			return domain.ErrInvalidTransition
		}

		halfCredit := loancalc.Round2(l.RemainingBalance / 2)
		l.PaidAmount = loancalc.Round2(l.PaidAmount + halfCredit)
		l.RemainingBalance = 0
		l.Status = domain.StatusLiquidated
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		p := &domain.Payment{
			LoanID:      l.ID,
			Amount:      halfCredit,
			Type:        domain.PaymentTypeLiquidation,
			Description: "early payoff at 50% of remaining balance",
			PaidAt:      time.Now().UTC(),
		}
		if err := r.Loans.AppendPayment(ctx, p); err != nil {
			return err
		}

		if err := r.Users.IncrementTotalLoans(ctx, l.BorrowerID, -halfCredit); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// SetProcessingFeePaid flips the processing-fee flag without touching status.
func (u *Usecase) SetProcessingFeePaid(ctx context.Context, loanID string, paid bool) (*LoanDTO, error) {
	if u.tx == nil {
		return nil, domain.ErrInvalidTransition
	}
	var dto *LoanDTO
	err := u.tx.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		l.ProcessingFeePaid = paid
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string) ([]LoanDTO, error) {
	ls, err := u.repo.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}
