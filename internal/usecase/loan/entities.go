package loan

import (
	"time"

	domain "coopvault-backend/internal/domain/loan"
)

type ApplyInput struct {
	BorrowerID     string  `json:"borrower_id"`
	Principal      float64 `json:"principal"`
	DurationMonths int     `json:"duration_months"`
	Purpose        string  `json:"purpose"`
}

type LoanDTO struct {
	LoanID             string    `json:"loan_id"`
	BorrowerID         string    `json:"borrower_id"`
	Principal          float64   `json:"principal"`
	DurationMonths     int       `json:"duration_months"`
	Purpose            string    `json:"purpose"`
	Status             string    `json:"status"`
	ProcessingFee      float64   `json:"processing_fee"`
	InterestRate       float64   `json:"interest_rate"`
	InterestAmount     float64   `json:"interest_amount"`
	TotalAmount        float64   `json:"total_amount"`
	MonthlyInstallment float64   `json:"monthly_installment"`
	RemainingBalance   float64   `json:"remaining_balance"`
	PaidAmount         float64   `json:"paid_amount"`
	ProcessingFeePaid  bool      `json:"processing_fee_paid"`
	CreatedAt          time.Time `json:"created_at"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:             l.LoanID,
		BorrowerID:         l.BorrowerID,
		Principal:          l.Principal,
		DurationMonths:     l.DurationMonths,
		Purpose:            l.Purpose,
		Status:             string(l.Status),
		ProcessingFee:      l.ProcessingFee,
		InterestRate:       l.InterestRate,
		InterestAmount:     l.InterestAmount,
		TotalAmount:        l.TotalAmount,
		MonthlyInstallment: l.MonthlyInstallment,
		RemainingBalance:   l.RemainingBalance,
		PaidAmount:         l.PaidAmount,
		ProcessingFeePaid:  l.ProcessingFeePaid,
		CreatedAt:          l.CreatedAt,
	}
}
