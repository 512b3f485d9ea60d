// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
)

// InvestmentBucketModel represents the investment_buckets table in the database.
type InvestmentBucketModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name             string          `gorm:"type:varchar(100);not null"`
	TargetPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentBucketModel.
func (InvestmentBucketModel) TableName() string {
	return "investment_buckets"
}

// ToEntity converts the model to a domain InvestmentBucket entity.
func (m *InvestmentBucketModel) ToEntity() *entity.InvestmentBucket {
	return &entity.InvestmentBucket{
		ID:               m.ID,
		UserID:           m.UserID,
		Name:             m.Name,
		TargetPercentage: m.TargetPercentage,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// InvestmentBucketFromEntity creates an InvestmentBucketModel from a domain entity.
func InvestmentBucketFromEntity(b *entity.InvestmentBucket) *InvestmentBucketModel {
	return &InvestmentBucketModel{
		ID:               b.ID,
		UserID:           b.UserID,
		Name:             b.Name,
		TargetPercentage: b.TargetPercentage,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// AssetModel represents the assets table in the database.
type AssetModel struct {
	ID                       uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID                   uuid.UUID        `gorm:"type:uuid;not null;index"`
	BucketID                 uuid.UUID        `gorm:"type:uuid;not null;index"`
	Ticker                   string           `gorm:"type:varchar(20);not null"`
	Name                     *string          `gorm:"type:varchar(100)"`
	Quantity                 decimal.Decimal  `gorm:"type:decimal(20,8);not null;default:0"`
	TargetPercentageInBucket decimal.Decimal  `gorm:"type:decimal(5,2);not null;default:0"`
	IsManual                 bool             `gorm:"default:false"`
	ManualPrice              *decimal.Decimal `gorm:"type:decimal(15,2)"`
	LastPriceFetch           *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt                time.Time        `gorm:"not null"`
	UpdatedAt                time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for the AssetModel.
func (AssetModel) TableName() string {
	return "assets"
}

// ToEntity converts the model to a domain Asset entity.
func (m *AssetModel) ToEntity() *entity.Asset {
	return &entity.Asset{
		ID:                       m.ID,
		UserID:                   m.UserID,
		BucketID:                 m.BucketID,
		Ticker:                   m.Ticker,
		Name:                     m.Name,
		Quantity:                 m.Quantity,
		TargetPercentageInBucket: m.TargetPercentageInBucket,
		IsManual:                 m.IsManual,
		ManualPrice:              m.ManualPrice,
		LastPriceFetch:           m.LastPriceFetch,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

// AssetFromEntity creates an AssetModel from a domain Asset entity.
func AssetFromEntity(a *entity.Asset) *AssetModel {
	return &AssetModel{
		ID:                       a.ID,
		UserID:                   a.UserID,
		BucketID:                 a.BucketID,
		Ticker:                   a.Ticker,
		Name:                     a.Name,
		Quantity:                 a.Quantity,
		TargetPercentageInBucket: a.TargetPercentageInBucket,
		IsManual:                 a.IsManual,
		ManualPrice:              a.ManualPrice,
		LastPriceFetch:           a.LastPriceFetch,
		CreatedAt:                a.CreatedAt,
		UpdatedAt:                a.UpdatedAt,
	}
}
