package mysql

import (
	"context"

	investmentDomain "coopvault-backend/internal/domain/investment"

	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investmentDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) Save(ctx context.Context, inv *investmentDomain.Investment) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*investmentDomain.Investment, error) {
	var out investmentDomain.Investment
	res := r.db.WithContext(ctx).Where("investment_id = ?", investmentID).First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) TransferOwner(ctx context.Context, investmentID, newOwnerID string) error {
	res := r.db.WithContext(ctx).
		Model(&investmentDomain.Investment{}).
		Where("investment_id = ?", investmentID).
		UpdateColumn("owner_id", newOwnerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return investmentDomain.ErrNotFound
	}
	return nil
}
