// Package model defines database models for persistence layer.
package model

// All returns every persisted model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&CategoryModel{},
		&TransactionModel{},
		&BudgetConfigModel{},
		&FocusTaskModel{},
		&InvestmentBucketModel{},
		&AssetModel{},
	}
}
