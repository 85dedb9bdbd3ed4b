package settings

import (
	"context"

	domain "coopvault-backend/internal/domain/settings"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(repo domain.Repository) *Usecase { return &Usecase{repo: repo} }

type RatesDTO struct {
	InterestRatePercent      float64 `json:"interest_rate_percent"`
	ProcessingFeeRatePercent float64 `json:"processing_fee_rate_percent"`
}

type UpdateInput struct {
	InterestRatePercent      float64 `json:"interest_rate_percent"`
	ProcessingFeeRatePercent float64 `json:"processing_fee_rate_percent"`
	UpdatedBy                string  `json:"-"`
}

func (u *Usecase) Current(ctx context.Context) (*RatesDTO, error) {
	s, err := u.repo.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &RatesDTO{
		InterestRatePercent:      s.InterestRatePercent,
		ProcessingFeeRatePercent: s.ProcessingFeeRatePercent,
	}, nil
}

// Update stores new rates. Existing loans keep the snapshot taken at their
// approval; only future approvals see the change.
func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*RatesDTO, error) {
	if in.InterestRatePercent < 0 || in.InterestRatePercent > 100 ||
		in.ProcessingFeeRatePercent < 0 || in.ProcessingFeeRatePercent > 100 {
		return nil, domain.ErrInvalidRates
	}
	s := &domain.RateSettings{
		InterestRatePercent:      in.InterestRatePercent,
		ProcessingFeeRatePercent: in.ProcessingFeeRatePercent,
		UpdatedBy:                in.UpdatedBy,
	}
	if err := u.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return &RatesDTO{
		InterestRatePercent:      s.InterestRatePercent,
		ProcessingFeeRatePercent: s.ProcessingFeeRatePercent,
	}, nil
}
