package loancalc

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		months    int
		rate      float64
		fee       float64
		want      Details
		wantErr   error
	}{
		{
			name:      "one year at default rates",
			principal: 100000,
			months:    12,
			rate:      10,
			fee:       1,
			want: Details{
				ProcessingFee:      1000,
				InterestRate:       10,
				InterestAmount:     10000,
				TotalAmount:        110000,
				MonthlyInstallment: 9166.67,
				RemainingBalance:   110000,
			},
		},
		{
			name:      "six months halves the interest",
			principal: 100000,
			months:    6,
			rate:      10,
			fee:       1,
			want: Details{
				ProcessingFee:      1000,
				InterestRate:       10,
				InterestAmount:     5000,
				TotalAmount:        105000,
				MonthlyInstallment: 17500,
				RemainingBalance:   105000,
			},
		},
		{
			name:      "eighteen months",
			principal: 50000,
			months:    18,
			rate:      12,
			fee:       2,
			want: Details{
				ProcessingFee:      1000,
				InterestRate:       12,
				InterestAmount:     9000,
				TotalAmount:        59000,
				MonthlyInstallment: 3277.78,
				RemainingBalance:   59000,
			},
		},
		{
			name:      "zero duration rejected",
			principal: 100000,
			months:    0,
			rate:      10,
			fee:       1,
			wantErr:   ErrInvalidDuration,
		},
		{
			name:      "negative duration rejected",
			principal: 100000,
			months:    -3,
			rate:      10,
			fee:       1,
			wantErr:   ErrInvalidDuration,
		},
		{
			name:      "negative principal rejected",
			principal: -1,
			months:    12,
			rate:      10,
			fee:       1,
			wantErr:   ErrInvalidPrincipal,
		},
		{
			name:      "zero principal rejected",
			principal: 0,
			months:    12,
			rate:      10,
			fee:       1,
			wantErr:   ErrInvalidPrincipal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.principal, tt.months, tt.rate, tt.fee)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err=%v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !almostEqual(got.ProcessingFee, tt.want.ProcessingFee) {
				t.Errorf("ProcessingFee = %v, want %v", got.ProcessingFee, tt.want.ProcessingFee)
			}
			if !almostEqual(got.InterestAmount, tt.want.InterestAmount) {
				t.Errorf("InterestAmount = %v, want %v", got.InterestAmount, tt.want.InterestAmount)
			}
			if !almostEqual(got.TotalAmount, tt.want.TotalAmount) {
				t.Errorf("TotalAmount = %v, want %v", got.TotalAmount, tt.want.TotalAmount)
			}
			if !almostEqual(got.MonthlyInstallment, tt.want.MonthlyInstallment) {
				t.Errorf("MonthlyInstallment = %v, want %v", got.MonthlyInstallment, tt.want.MonthlyInstallment)
			}
			if !almostEqual(got.RemainingBalance, got.TotalAmount) {
				t.Errorf("RemainingBalance = %v, want TotalAmount %v", got.RemainingBalance, got.TotalAmount)
			}
			if got.PaidAmount != 0 || got.ProcessingFeePaid {
				t.Errorf("fresh details must start unpaid: %+v", got)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(9166.666666); got != 9166.67 {
		t.Fatalf("Round2 = %v, want 9166.67", got)
	}
	if got := Round2(27500.0); got != 27500.0 {
		t.Fatalf("Round2 = %v, want 27500", got)
	}
}
