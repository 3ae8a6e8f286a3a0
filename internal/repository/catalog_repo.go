package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/venuecraft/banquet-service/internal/models"
)

// MenuRepository resolves menu/addon ids to priced records for the pricing
// calculator.
type MenuRepository interface {
	FindByIDs(ctx context.Context, tenantID string, ids []uint) ([]models.MenuItem, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) FindByIDs(ctx context.Context, tenantID string, ids []uint) ([]models.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
