package repayment

import (
	"context"
	"time"

	loanDomain "coopvault-backend/internal/domain/loan"
	domain "coopvault-backend/internal/domain/repayment"
	"coopvault-backend/internal/domain/uow"
	"coopvault-backend/internal/usecase/loancalc"
	"coopvault-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	tx   uow.UnitOfWork
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, tx: tx}
}

type SubmitInput struct {
	LoanID   string  `json:"loan_id"`
	Amount   float64 `json:"amount"`
	ProofURL string  `json:"proof_url"`
}

type ReviewInput struct {
	RepaymentID string
	ReviewerID  string
	Notes       string
}

type RepaymentDTO struct {
	RepaymentID string     `json:"repayment_id"`
	LoanID      string     `json:"loan_id"`
	Amount      float64    `json:"amount"`
	ProofURL    string     `json:"proof_url"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy  string     `json:"reviewed_by,omitempty"`
	ReviewNotes string     `json:"review_notes,omitempty"`
	// LoanStatus and LoanRemaining reflect the loan after an approval.
	LoanStatus    string  `json:"loan_status,omitempty"`
	LoanRemaining float64 `json:"loan_remaining_balance"`
}

func toDTO(r *domain.Repayment) *RepaymentDTO {
	return &RepaymentDTO{
		RepaymentID: r.RepaymentID,
		LoanID:      r.LoanRef,
		Amount:      r.Amount,
		ProofURL:    r.ProofURL,
		Status:      string(r.Status),
		SubmittedAt: r.SubmittedAt,
		ReviewedAt:  r.ReviewedAt,
		ReviewedBy:  r.ReviewedBy,
		ReviewNotes: r.ReviewNotes,
	}
}

// Submit records a payment claim for review. The loan balance is untouched
// until an admin approves the claim.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*RepaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, loanDomain.ErrInvalidInput
	}
	if u.tx == nil {
		return nil, loanDomain.ErrNotFound
	}

	var dto *RepaymentDTO
	err := u.tx.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status != loanDomain.StatusApproved && l.Status != loanDomain.StatusActive {
			return loanDomain.ErrInvalidTransition
		}
		rp := &domain.Repayment{
			RepaymentID: id.NewID32(),
			LoanID:      l.ID,
			LoanRef:     l.LoanID,
			Amount:      in.Amount,
			ProofURL:    in.ProofURL,
			Status:      domain.StatusPendingReview,
			SubmittedAt: time.Now().UTC(),
		}
		if err := r.Repayments.Create(ctx, rp); err != nil {
			return err
		}
		dto = toDTO(rp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Approve applies a pending repayment to its loan: paidAmount grows, the
// remaining balance is clamped at zero, and the loan completes when the
// balance reaches zero. Repayment review and loan update share one
// transaction so a failure leaves no partial effect.
func (u *Usecase) Approve(ctx context.Context, in ReviewInput) (*RepaymentDTO, error) {
	if u.tx == nil {
		return nil, domain.ErrNotFound
	}
	var dto *RepaymentDTO

	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		rp, err := r.Repayments.GetByRepaymentIDForUpdate(ctx, in.RepaymentID)
		if err != nil {
			return domain.ErrNotFound
		}
		if rp.Status != domain.StatusPendingReview {
			return domain.ErrAlreadyReviewed
		}

		l, err := r.Loans.GetByLoanIDForUpdate(ctx, rp.LoanRef)
		if err != nil {
			return loanDomain.ErrNotFound
		}
		if l.Status != loanDomain.StatusApproved && l.Status != loanDomain.StatusActive {
			return loanDomain.ErrInvalidTransition
		}

		l.PaidAmount = loancalc.Round2(l.PaidAmount + rp.Amount)
		remaining := loancalc.Round2(l.TotalAmount - l.PaidAmount)
		if remaining < 0 {
			remaining = 0
		}
		l.RemainingBalance = remaining
		if remaining == 0 {
			l.Status = loanDomain.StatusCompleted
		} else {
			l.Status = loanDomain.StatusActive
		}
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		p := &loanDomain.Payment{
			LoanID:      l.ID,
			Amount:      rp.Amount,
			Type:        loanDomain.PaymentTypeRepayment,
			Description: "repayment " + rp.RepaymentID + " approved",
			PaidAt:      time.Now().UTC(),
		}
		if err := r.Loans.AppendPayment(ctx, p); err != nil {
			return err
		}

		now := time.Now().UTC()
		rp.Status = domain.StatusApproved
		rp.ReviewedAt = &now
		rp.ReviewedBy = in.ReviewerID
		rp.ReviewNotes = in.Notes
		if err := r.Repayments.Save(ctx, rp); err != nil {
			return err
		}

		dto = toDTO(rp)
		dto.LoanStatus = string(l.Status)
		dto.LoanRemaining = l.RemainingBalance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reject marks the claim rejected. The loan is never touched.
func (u *Usecase) Reject(ctx context.Context, in ReviewInput) (*RepaymentDTO, error) {
	if u.tx == nil {
		return nil, domain.ErrNotFound
	}
	var dto *RepaymentDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		rp, err := r.Repayments.GetByRepaymentIDForUpdate(ctx, in.RepaymentID)
		if err != nil {
			return domain.ErrNotFound
		}
		if rp.Status != domain.StatusPendingReview {
			return domain.ErrAlreadyReviewed
		}
		now := time.Now().UTC()
		rp.Status = domain.StatusRejected
		rp.ReviewedAt = &now
		rp.ReviewedBy = in.ReviewerID
		rp.ReviewNotes = in.Notes
		if err := r.Repayments.Save(ctx, rp); err != nil {
			return err
		}
		dto = toDTO(rp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, repaymentID string) (*RepaymentDTO, error) {
	rp, err := u.repo.GetByRepaymentID(ctx, repaymentID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toDTO(rp), nil
}
