// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentBucket is a portfolio slice with a target share of the total.
type InvestmentBucket struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	TargetPercentage decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewInvestmentBucket creates a new InvestmentBucket.
func NewInvestmentBucket(userID uuid.UUID, name string, targetPercentage decimal.Decimal) *InvestmentBucket {
	now := time.Now().UTC()
	return &InvestmentBucket{
		ID:               uuid.New(),
		UserID:           userID,
		Name:             name,
		TargetPercentage: targetPercentage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Asset is a holding inside a bucket.
type Asset struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	BucketID                 uuid.UUID
	Ticker                   string
	Name                     *string
	Quantity                 decimal.Decimal
	TargetPercentageInBucket decimal.Decimal
	IsManual                 bool
	ManualPrice              *decimal.Decimal
	LastPriceFetch           *decimal.Decimal
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// NewAsset creates a new Asset.
func NewAsset(userID, bucketID uuid.UUID, ticker string, quantity, targetInBucket decimal.Decimal) *Asset {
	now := time.Now().UTC()
	return &Asset{
		ID:                       uuid.New(),
		UserID:                   userID,
		BucketID:                 bucketID,
		Ticker:                   ticker,
		Quantity:                 quantity,
		TargetPercentageInBucket: targetInBucket,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
}

// Price is the manual price for manual assets, otherwise the last fetched
// price, otherwise zero.
func (a *Asset) Price() decimal.Decimal {
	if a.IsManual && a.ManualPrice != nil {
		return *a.ManualPrice
	}
	if a.LastPriceFetch != nil {
		return *a.LastPriceFetch
	}
	return decimal.Zero
}

// Value is quantity times price.
func (a *Asset) Value() decimal.Decimal {
	return a.Quantity.Mul(a.Price())
}

// DisplayName returns the asset name, falling back to the ticker.
func (a *Asset) DisplayName() string {
	if a.Name != nil && *a.Name != "" {
		return *a.Name
	}
	return a.Ticker
}
