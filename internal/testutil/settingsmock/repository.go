package settingsmock

import (
	"context"

	domain "coopvault-backend/internal/domain/settings"
)

// Repo is a function-backed mock that satisfies settings.Repository. The
// zero value serves the built-in defaults.
type Repo struct {
	CurrentFn func(ctx context.Context) (domain.RateSettings, error)
	UpsertFn  func(ctx context.Context, s *domain.RateSettings) error
}

func (m *Repo) Current(ctx context.Context) (domain.RateSettings, error) {
	if m.CurrentFn != nil {
		return m.CurrentFn(ctx)
	}
	return domain.Default(), nil
}

func (m *Repo) Upsert(ctx context.Context, s *domain.RateSettings) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, s)
	}
	return nil
}
