// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// CreateBatch inserts every row in a single statement.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID, scoped to the user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter lists transactions ordered by date desc, newest first.
	FindByFilter(ctx context.Context, filter entity.TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Delete removes a single transaction.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
