package settings

import "context"

type Repository interface {
	// Current returns the stored settings, or Default() when none exist.
	Current(ctx context.Context) (RateSettings, error)
	Upsert(ctx context.Context, s *RateSettings) error
}
