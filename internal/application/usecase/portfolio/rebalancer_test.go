package portfolio

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bucket(name, target string) *entity.InvestmentBucket {
	return entity.NewInvestmentBucket(uuid.Nil, name, d(target))
}

func holding(b *entity.InvestmentBucket, ticker, quantity, price, target string) *entity.Asset {
	a := entity.NewAsset(uuid.Nil, b.ID, ticker, d(quantity), d(target))
	p := d(price)
	a.IsManual = true
	a.ManualPrice = &p
	return a
}

func sumSuggestions(s []Suggestion) decimal.Decimal {
	total := decimal.Zero
	for _, x := range s {
		total = total.Add(x.Amount)
	}
	return total
}

type expected struct {
	ticker string
	amount string
}

func assertPlan(t *testing.T, got []Suggestion, want []expected) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d suggestions %+v, want %d", len(got), got, len(want))
	}
	for i, w := range want {
		if got[i].AssetTicker != w.ticker {
			t.Errorf("suggestion %d ticker = %s, want %s", i, got[i].AssetTicker, w.ticker)
		}
		if !got[i].Amount.Equal(d(w.amount)) {
			t.Errorf("suggestion %d amount = %s, want %s", i, got[i].Amount, w.amount)
		}
	}
}

func TestRebalance(t *testing.T) {
	t.Run("largest bucket deficit is filled first", func(t *testing.T) {
		stocks := bucket("Stocks", "60")
		bonds := bucket("Bonds", "40")
		assets := []*entity.Asset{
			holding(stocks, "VTI", "6", "100", "100"),
			holding(bonds, "BND", "1", "100", "50"),
			holding(bonds, "TIP", "3", "100", "50"),
		}

		got := Rebalance(d("500"), []*entity.InvestmentBucket{bonds, stocks}, assets)
		assertPlan(t, got, []expected{{"VTI", "300"}, {"BND", "200"}})
		if got[0].BucketName != "Stocks" || got[0].BucketID != stocks.ID {
			t.Errorf("first suggestion bucket = %s, want Stocks", got[0].BucketName)
		}
	})

	t.Run("balanced portfolio receives a proportional split", func(t *testing.T) {
		stocks := bucket("Stocks", "60")
		bonds := bucket("Bonds", "40")
		assets := []*entity.Asset{
			holding(stocks, "VTI", "6", "100", "100"),
			holding(bonds, "BND", "4", "100", "100"),
		}

		got := Rebalance(d("100"), []*entity.InvestmentBucket{stocks, bonds}, assets)
		assertPlan(t, got, []expected{{"VTI", "60"}, {"BND", "40"}})
	})

	t.Run("empty bucket gets a new asset placeholder", func(t *testing.T) {
		crypto := bucket("Crypto", "100")

		got := Rebalance(d("250"), []*entity.InvestmentBucket{crypto}, nil)
		assertPlan(t, got, []expected{{NewAssetTicker, "250"}})
		if got[0].AssetName != nil {
			t.Error("placeholder must not carry an asset name")
		}
	})

	t.Run("leftover is added to the last suggestion", func(t *testing.T) {
		half := bucket("Half", "50")
		assets := []*entity.Asset{holding(half, "VTI", "1", "50", "100")}

		got := Rebalance(d("100"), []*entity.InvestmentBucket{half}, assets)
		assertPlan(t, got, []expected{{"VTI", "100"}})
	})

	t.Run("bucket whose assets are all on target passes its share on", func(t *testing.T) {
		parked := bucket("Parked", "60")
		growth := bucket("Growth", "40")
		assets := []*entity.Asset{
			holding(parked, "CASH", "0", "1", "0"),
			holding(growth, "QQQ", "0", "1", "100"),
		}

		got := Rebalance(d("100"), []*entity.InvestmentBucket{parked, growth}, assets)
		assertPlan(t, got, []expected{{"QQQ", "100"}})
	})

	t.Run("suggestions at the noise threshold are dropped", func(t *testing.T) {
		a := bucket("A", "50")
		b := bucket("B", "50")
		assets := []*entity.Asset{
			holding(a, "AAA", "1", "500", "100"),
			holding(b, "BBB", "1", "499.99", "100"),
		}

		got := Rebalance(d("0.01"), []*entity.InvestmentBucket{a, b}, assets)
		if len(got) != 0 {
			t.Errorf("expected empty plan, got %+v", got)
		}
	})

	t.Run("no positive deficit yields an empty plan", func(t *testing.T) {
		idle := bucket("Idle", "0")
		assets := []*entity.Asset{holding(idle, "VTI", "10", "100", "100")}

		if got := Rebalance(d("100"), []*entity.InvestmentBucket{idle}, assets); len(got) != 0 {
			t.Errorf("expected empty plan, got %+v", got)
		}
		if got := Rebalance(d("100"), nil, nil); len(got) != 0 {
			t.Errorf("expected empty plan without buckets, got %+v", got)
		}
	})
}

func TestRebalanceSumsToContribution(t *testing.T) {
	stocks := bucket("Stocks", "50")
	bonds := bucket("Bonds", "30")
	reits := bucket("REITs", "20")
	assets := []*entity.Asset{
		holding(stocks, "VTI", "3", "211.37", "70"),
		holding(stocks, "VXUS", "7", "58.12", "30"),
		holding(bonds, "BND", "2", "72.05", "100"),
	}
	buckets := []*entity.InvestmentBucket{stocks, bonds, reits}

	for _, c := range []string{"0.5", "10", "333.33", "1000", "25000"} {
		got := Rebalance(d(c), buckets, assets)
		if len(got) == 0 {
			t.Fatalf("contribution %s: expected suggestions", c)
		}
		if !sumSuggestions(got).Equal(d(c)) {
			t.Errorf("contribution %s: suggestions sum to %s", c, sumSuggestions(got))
		}
	}
}
