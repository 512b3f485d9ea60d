// Package portfolio contains investment bucket and asset use cases.
package portfolio

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
)

// NewAssetTicker labels a suggestion for a bucket that holds no assets yet.
const NewAssetTicker = "(new asset)"

// noiseThreshold drops suggestions too small to act on.
var noiseThreshold = decimal.NewFromFloat(0.01)

// Suggestion is one line of a contribution plan.
type Suggestion struct {
	BucketID    uuid.UUID       `json:"bucket_id"`
	BucketName  string          `json:"bucket_name"`
	AssetTicker string          `json:"asset_ticker"`
	AssetName   *string         `json:"asset_name"`
	Amount      decimal.Decimal `json:"amount"`
}

type bucketDeficit struct {
	bucket  *entity.InvestmentBucket
	assets  []*entity.Asset
	value   decimal.Decimal
	deficit decimal.Decimal
}

type assetDeficit struct {
	asset   *entity.Asset
	deficit decimal.Decimal
}

// Rebalance splits a contribution across buckets and assets, filling the
// largest deficits first. It is greedy: a large contribution can overshoot
// smaller buckets rather than minimize tracking error.
//
// Any amount left after every positive deficit is filled is added to the
// last suggestion, so the plan sums to contribution whenever it is not
// empty. An empty plan means no bucket is below target.
func Rebalance(contribution decimal.Decimal, buckets []*entity.InvestmentBucket, assets []*entity.Asset) []Suggestion {
	// Current portfolio value and assets grouped by bucket
	total := decimal.Zero
	byBucket := make(map[uuid.UUID][]*entity.Asset, len(buckets))
	for _, a := range assets {
		total = total.Add(a.Value())
		byBucket[a.BucketID] = append(byBucket[a.BucketID], a)
	}
	newTotal := total.Add(contribution)

	// Bucket deficits against the post-contribution total
	deficits := make([]bucketDeficit, len(buckets))
	for i, b := range buckets {
		held := byBucket[b.ID]
		value := decimal.Zero
		for _, a := range held {
			value = value.Add(a.Value())
		}
		target := b.TargetPercentage.Div(hundred).Mul(newTotal)
		deficits[i] = bucketDeficit{bucket: b, assets: held, value: value, deficit: target.Sub(value)}
	}
	sort.SliceStable(deficits, func(i, j int) bool {
		return deficits[i].deficit.GreaterThan(deficits[j].deficit)
	})

	var result []Suggestion
	remaining := contribution
	for _, d := range deficits {
		if !remaining.IsPositive() {
			break
		}
		if !d.deficit.IsPositive() {
			continue
		}

		bucketContribution := decimal.Min(d.deficit, remaining)

		// Empty bucket: suggest buying something new
		if len(d.assets) == 0 {
			result = append(result, Suggestion{
				BucketID:    d.bucket.ID,
				BucketName:  d.bucket.Name,
				AssetTicker: NewAssetTicker,
				Amount:      bucketContribution,
			})
			remaining = remaining.Sub(bucketContribution)
			continue
		}

		// Split the bucket's share across its assets the same way
		newBucketValue := d.value.Add(bucketContribution)
		assetDeficits := make([]assetDeficit, len(d.assets))
		for i, a := range d.assets {
			target := a.TargetPercentageInBucket.Div(hundred).Mul(newBucketValue)
			assetDeficits[i] = assetDeficit{asset: a, deficit: target.Sub(a.Value())}
		}
		sort.SliceStable(assetDeficits, func(i, j int) bool {
			return assetDeficits[i].deficit.GreaterThan(assetDeficits[j].deficit)
		})

		bucketRemaining := bucketContribution
		for _, ad := range assetDeficits {
			if !bucketRemaining.IsPositive() {
				break
			}
			if !ad.deficit.IsPositive() {
				continue
			}
			amount := decimal.Min(ad.deficit, bucketRemaining)
			result = append(result, Suggestion{
				BucketID:    d.bucket.ID,
				BucketName:  d.bucket.Name,
				AssetTicker: ad.asset.Ticker,
				AssetName:   ad.asset.Name,
				Amount:      amount,
			})
			bucketRemaining = bucketRemaining.Sub(amount)
		}

		remaining = remaining.Sub(bucketContribution.Sub(bucketRemaining))
	}

	// Leftover goes to the last suggestion
	if remaining.IsPositive() && len(result) > 0 {
		last := &result[len(result)-1]
		last.Amount = last.Amount.Add(remaining)
	}

	// Drop noise
	filtered := make([]Suggestion, 0, len(result))
	for _, s := range result {
		if s.Amount.GreaterThan(noiseThreshold) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
