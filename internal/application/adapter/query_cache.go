// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// Cached tables. Each has its own per-user generation.
const (
	TableCategories        = "categories"
	TableTransactions      = "transactions"
	TableBudgetConfig      = "budget_config"
	TableFocusTasks        = "focus_tasks"
	TableInvestmentBuckets = "investment_buckets"
	TableAssets            = "assets"
)

// AllTables lists every cached table.
var AllTables = []string{
	TableCategories,
	TableTransactions,
	TableBudgetConfig,
	TableFocusTasks,
	TableInvestmentBuckets,
	TableAssets,
}

// QueryCache stores serialized query results per user and table.
// Invalidate makes every entry previously stored for the table unreachable.
type QueryCache interface {
	// Get returns the cached payload, the table generation the lookup saw
	// and whether the payload was found.
	Get(ctx context.Context, userID uuid.UUID, table, key string) (payload []byte, generation int64, found bool, err error)

	// Set stores the payload under the given generation, normally the one
	// returned by the Get that preceded the load. A payload loaded while
	// the table was invalidated lands under a generation nobody reads.
	Set(ctx context.Context, userID uuid.UUID, table string, generation int64, key string, payload []byte) error

	// Invalidate bumps the generation of the given tables.
	Invalidate(ctx context.Context, userID uuid.UUID, tables ...string) error
}
