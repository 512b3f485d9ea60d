// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/integration/persistence/model"
)

type focusTaskRepository struct {
	db *gorm.DB
}

// NewFocusTaskRepository creates a new focus task repository instance.
func NewFocusTaskRepository(db *gorm.DB) adapter.FocusTaskRepository {
	return &focusTaskRepository{db: db}
}

// Create inserts a task.
func (r *focusTaskRepository) Create(ctx context.Context, task *entity.FocusTask) error {
	return r.db.WithContext(ctx).Create(model.FocusTaskFromEntity(task)).Error
}

// FindByID retrieves a task by its ID, scoped to the user.
func (r *focusTaskRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.FocusTask, error) {
	var taskModel model.FocusTaskModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&taskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaskNotFound
		}
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// FindByUser lists tasks newest first. A non-nil date keeps inbox tasks
// plus tasks scheduled on that day.
func (r *focusTaskRepository) FindByUser(ctx context.Context, userID uuid.UUID, date *time.Time) ([]*entity.FocusTask, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != nil {
		query = query.Where("(status = ? OR scheduled_date = ?)", string(entity.TaskStatusInbox), *date)
	}

	var taskModels []model.FocusTaskModel
	if err := query.Order("created_at DESC").Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]*entity.FocusTask, len(taskModels))
	for i := range taskModels {
		tasks[i] = taskModels[i].ToEntity()
	}
	return tasks, nil
}

// Update saves every column of the task. Clearing the schedule writes NULLs.
func (r *focusTaskRepository) Update(ctx context.Context, task *entity.FocusTask) error {
	return r.db.WithContext(ctx).Save(model.FocusTaskFromEntity(task)).Error
}

// Delete removes a task.
func (r *focusTaskRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FocusTaskModel{}, "id = ? AND user_id = ?", id, userID).Error
}
