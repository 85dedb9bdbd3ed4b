package loancalc

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be positive")
	ErrInvalidDuration  = errors.New("duration must be at least one month")
)

// Details is the repayment breakdown snapshotted onto a loan at approval.
type Details struct {
	ProcessingFee      float64
	InterestRate       float64
	InterestAmount     float64
	TotalAmount        float64
	MonthlyInstallment float64
	RemainingBalance   float64
	PaidAmount         float64
	ProcessingFeePaid  bool
}

// Compute derives the loan repayment details from the principal, the duration
// in months, and the percentage rates in effect at approval time.
//
//	processingFee  = principal * feeRate
//	interestAmount = principal * interestRate * (months / 12)
//	totalAmount    = principal + interestAmount
//	installment    = totalAmount / months
func Compute(principal float64, durationMonths int, interestRatePercent, processingFeeRatePercent float64) (Details, error) {
	if principal <= 0 {
		return Details{}, ErrInvalidPrincipal
	}
	if durationMonths <= 0 {
		return Details{}, ErrInvalidDuration
	}

	interestRate := interestRatePercent / 100
	feeRate := processingFeeRatePercent / 100

	interestAmount := Round2(principal * interestRate * (float64(durationMonths) / 12))
	total := Round2(principal + interestAmount)

	return Details{
		ProcessingFee:      Round2(principal * feeRate),
		InterestRate:       interestRatePercent,
		InterestAmount:     interestAmount,
		TotalAmount:        total,
		MonthlyInstallment: Round2(total / float64(durationMonths)),
		RemainingBalance:   total,
		PaidAmount:         0,
		ProcessingFeePaid:  false,
	}, nil
}

// Round2 rounds to 2 decimal places, matching the decimal(18,2) columns.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
