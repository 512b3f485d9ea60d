package portfolio

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

type holdingsStore struct {
	buckets map[uuid.UUID]*entity.InvestmentBucket
	assets  map[uuid.UUID]*entity.Asset
}

func newHoldingsStore() *holdingsStore {
	return &holdingsStore{
		buckets: map[uuid.UUID]*entity.InvestmentBucket{},
		assets:  map[uuid.UUID]*entity.Asset{},
	}
}

type memoryBucketRepo struct{ *holdingsStore }

func (r memoryBucketRepo) Create(_ context.Context, b *entity.InvestmentBucket) error {
	r.buckets[b.ID] = b
	return nil
}

func (r memoryBucketRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.InvestmentBucket, error) {
	b, ok := r.buckets[id]
	if !ok || b.UserID != userID {
		return nil, domainerror.ErrBucketNotFound
	}
	return b, nil
}

func (r memoryBucketRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.InvestmentBucket, error) {
	var out []*entity.InvestmentBucket
	for _, b := range r.buckets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memoryBucketRepo) Update(_ context.Context, b *entity.InvestmentBucket) error {
	r.buckets[b.ID] = b
	return nil
}

func (r memoryBucketRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.buckets, id)
	for assetID, a := range r.assets {
		if a.BucketID == id {
			delete(r.assets, assetID)
		}
	}
	return nil
}

type memoryAssetRepo struct{ *holdingsStore }

func (r memoryAssetRepo) Create(_ context.Context, a *entity.Asset) error {
	r.assets[a.ID] = a
	return nil
}

func (r memoryAssetRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.Asset, error) {
	a, ok := r.assets[id]
	if !ok || a.UserID != userID {
		return nil, domainerror.ErrAssetNotFound
	}
	return a, nil
}

func (r memoryAssetRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range r.assets {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out, nil
}

func (r memoryAssetRepo) Update(_ context.Context, a *entity.Asset) error {
	r.assets[a.ID] = a
	return nil
}

func (r memoryAssetRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.assets, id)
	return nil
}

func assertPortfolioCode(t *testing.T, err error, want domainerror.PortfolioErrorCode) {
	t.Helper()
	var portErr *domainerror.PortfolioError
	if !errors.As(err, &portErr) {
		t.Fatalf("expected PortfolioError, got %v", err)
	}
	if portErr.Code != want {
		t.Errorf("code = %s, want %s", portErr.Code, want)
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateBucketValidation(t *testing.T) {
	store := newHoldingsStore()
	uc := NewCreateBucketUseCase(memoryBucketRepo{store}, nil)
	userID := uuid.New()

	tests := []struct {
		name  string
		input CreateBucketInput
		want  domainerror.PortfolioErrorCode
	}{
		{"empty name", CreateBucketInput{UserID: userID, Name: " ", TargetPercentage: d("10")}, domainerror.ErrCodeMissingPortfolioFields},
		{"negative target", CreateBucketInput{UserID: userID, Name: "Stocks", TargetPercentage: d("-1")}, domainerror.ErrCodeInvalidPercentage},
		{"target above 100", CreateBucketInput{UserID: userID, Name: "Stocks", TargetPercentage: d("100.01")}, domainerror.ErrCodeInvalidPercentage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assertPortfolioCode(t, err, tt.want)
		})
	}
	if len(store.buckets) != 0 {
		t.Errorf("expected no bucket stored, got %d", len(store.buckets))
	}
}

func TestAssetLifecycle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newHoldingsStore()
	buckets := memoryBucketRepo{store}
	assets := memoryAssetRepo{store}

	b, err := NewCreateBucketUseCase(buckets, nil).Execute(ctx, CreateBucketInput{UserID: userID, Name: "Stocks", TargetPercentage: d("100")})
	if err != nil {
		t.Fatalf("create bucket: %v", err)
	}

	_, err = NewCreateAssetUseCase(assets, buckets, nil).Execute(ctx, CreateAssetInput{
		UserID: userID, BucketID: uuid.New(), Ticker: "vti", Quantity: d("1"), TargetPercentageInBucket: d("100"),
	})
	assertPortfolioCode(t, err, domainerror.ErrCodeBucketNotFound)

	_, err = NewCreateAssetUseCase(assets, buckets, nil).Execute(ctx, CreateAssetInput{
		UserID: uuid.New(), BucketID: b.ID, Ticker: "vti", Quantity: d("1"), TargetPercentageInBucket: d("100"),
	})
	assertPortfolioCode(t, err, domainerror.ErrCodeBucketNotFound)

	_, err = NewCreateAssetUseCase(assets, buckets, nil).Execute(ctx, CreateAssetInput{
		UserID: userID, BucketID: b.ID, Ticker: "vti", Quantity: d("-1"), TargetPercentageInBucket: d("100"),
	})
	assertPortfolioCode(t, err, domainerror.ErrCodeInvalidQuantity)

	created, err := NewCreateAssetUseCase(assets, buckets, nil).Execute(ctx, CreateAssetInput{
		UserID: userID, BucketID: b.ID, Ticker: " vti ", Name: ptr("Total Market"),
		Quantity: d("10"), TargetPercentageInBucket: d("100"), IsManual: true, ManualPrice: ptr(d("250.5")),
	})
	if err != nil {
		t.Fatalf("create asset: %v", err)
	}
	if created.Ticker != "VTI" {
		t.Errorf("ticker = %s, want VTI", created.Ticker)
	}
	if !created.Value.Equal(d("2505")) {
		t.Errorf("value = %s, want 2505", created.Value)
	}

	updated, err := NewUpdateAssetUseCase(assets, buckets, nil).Execute(ctx, UpdateAssetInput{
		UserID: userID, AssetID: created.ID, IsManual: ptr(false),
	})
	if err != nil {
		t.Fatalf("update asset: %v", err)
	}
	if updated.ManualPrice != nil || !updated.Value.IsZero() {
		t.Errorf("manual price should be cleared, got %v / value %s", updated.ManualPrice, updated.Value)
	}
	if updated.Name == nil || *updated.Name != "Total Market" {
		t.Errorf("name should be kept, got %v", updated.Name)
	}

	_, err = NewUpdateAssetPriceUseCase(assets, nil).Execute(ctx, UpdateAssetPriceInput{UserID: userID, AssetID: created.ID, Price: d("-3")})
	assertPortfolioCode(t, err, domainerror.ErrCodeInvalidPrice)

	priced, err := NewUpdateAssetPriceUseCase(assets, nil).Execute(ctx, UpdateAssetPriceInput{UserID: userID, AssetID: created.ID, Price: d("300")})
	if err != nil {
		t.Fatalf("update price: %v", err)
	}
	if !priced.IsManual || !priced.Value.Equal(d("3000")) {
		t.Errorf("priced asset = manual %v value %s, want manual 3000", priced.IsManual, priced.Value)
	}

	if err := NewDeleteBucketUseCase(buckets, nil).Execute(ctx, userID, b.ID); err != nil {
		t.Fatalf("delete bucket: %v", err)
	}
	if len(store.assets) != 0 {
		t.Errorf("bucket delete must remove its assets, %d left", len(store.assets))
	}
}

func TestGetOverview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newHoldingsStore()

	stocks := entity.NewInvestmentBucket(userID, "Stocks", d("60"))
	bonds := entity.NewInvestmentBucket(userID, "Bonds", d("40"))
	store.buckets[stocks.ID] = stocks
	store.buckets[bonds.ID] = bonds
	for _, a := range []*entity.Asset{
		holding(stocks, "VTI", "5", "100", "100"),
		holding(bonds, "BND", "5", "100", "100"),
	} {
		a.UserID = userID
		store.assets[a.ID] = a
	}

	out, err := NewGetOverviewUseCase(memoryBucketRepo{store}, memoryAssetRepo{store}, nil).Execute(ctx, userID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if !out.TotalValue.Equal(d("1000")) || !out.AllocationValid {
		t.Errorf("total %s valid %v, want 1000 and valid", out.TotalValue, out.AllocationValid)
	}

	byName := map[string]*BucketAllocation{}
	for _, b := range out.Buckets {
		byName[b.Name] = b
	}
	if s := byName["Stocks"]; !s.CurrentPercentage.Equal(d("50")) || !s.Difference.Equal(d("-10")) || !s.BelowTarget {
		t.Errorf("stocks = %+v, want 50%% current, -10 difference, below target", s)
	}
	if b := byName["Bonds"]; b.BelowTarget || !b.Difference.Equal(d("10")) {
		t.Errorf("bonds = %+v, want +10 difference, not below target", b)
	}
	if a := byName["Stocks"].Assets[0]; !a.CurrentPercentageInBucket.Equal(d("100")) {
		t.Errorf("asset share = %s, want 100", a.CurrentPercentageInBucket)
	}
}

func TestBuildOverviewInvalidAllocation(t *testing.T) {
	out := BuildOverview([]*entity.InvestmentBucket{bucket("A", "50"), bucket("B", "49.98")}, nil)
	if out.AllocationValid {
		t.Error("targets summing to 99.98 must not be valid")
	}
	if !out.Buckets[0].CurrentPercentage.IsZero() {
		t.Errorf("empty portfolio share = %s, want 0", out.Buckets[0].CurrentPercentage)
	}

	out = BuildOverview([]*entity.InvestmentBucket{bucket("A", "50"), bucket("B", "49.995")}, nil)
	if !out.AllocationValid {
		t.Error("targets within 0.01 of 100 must be valid")
	}
}

func TestSimulateContribution(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newHoldingsStore()
	uc := NewSimulateContributionUseCase(memoryBucketRepo{store}, memoryAssetRepo{store}, nil)

	_, err := uc.Execute(ctx, SimulateContributionInput{UserID: userID, Amount: decimal.Zero})
	assertPortfolioCode(t, err, domainerror.ErrCodeInvalidContribution)

	out, err := uc.Execute(ctx, SimulateContributionInput{UserID: userID, Amount: d("100")})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !out.Balanced || len(out.Suggestions) != 0 {
		t.Errorf("no buckets should be reported balanced, got %+v", out)
	}

	crypto := entity.NewInvestmentBucket(userID, "Crypto", d("100"))
	store.buckets[crypto.ID] = crypto

	out, err = uc.Execute(ctx, SimulateContributionInput{UserID: userID, Amount: d("100")})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if out.Balanced || !out.SuggestedTotal.Equal(d("100")) {
		t.Errorf("plan = %+v, want 100 suggested", out)
	}
}
