// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/integration/persistence/model"
)

type budgetConfigRepository struct {
	db *gorm.DB
}

// NewBudgetConfigRepository creates a new budget config repository instance.
func NewBudgetConfigRepository(db *gorm.DB) adapter.BudgetConfigRepository {
	return &budgetConfigRepository{db: db}
}

// FindByUser returns the user's configuration or ErrBudgetConfigNotFound.
func (r *budgetConfigRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.BudgetConfig, error) {
	var configModel model.BudgetConfigModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&configModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetConfigNotFound
		}
		return nil, result.Error
	}
	return configModel.ToEntity(), nil
}

// Upsert inserts the row or replaces every column of the user's existing row.
func (r *budgetConfigRepository) Upsert(ctx context.Context, config *entity.BudgetConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"base_income",
				"investment_percentage",
				"essentials_percentage",
				"lifestyle_percentage",
				"free_spending_amount",
				"credit_card_green",
				"credit_card_yellow",
				"credit_card_red",
				"updated_at",
			}),
		}).
		Create(model.BudgetConfigFromEntity(config)).Error
}
