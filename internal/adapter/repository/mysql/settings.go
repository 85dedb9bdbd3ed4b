package mysql

import (
	"context"
	"errors"

	settingsDomain "coopvault-backend/internal/domain/settings"

	"gorm.io/gorm"
)

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{db: db} }

// Current returns the singleton row, falling back to the compiled-in
// defaults when nothing has been stored yet.
func (r *SettingsRepository) Current(ctx context.Context) (settingsDomain.RateSettings, error) {
	var out settingsDomain.RateSettings
	res := r.db.WithContext(ctx).Order("id ASC").First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return settingsDomain.Default(), nil
		}
		return settingsDomain.RateSettings{}, res.Error
	}
	return out, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *settingsDomain.RateSettings) error {
	var existing settingsDomain.RateSettings
	res := r.db.WithContext(ctx).Order("id ASC").First(&existing)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(s).Error
		}
		return res.Error
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(s).Error
}
