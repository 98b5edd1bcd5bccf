package catalog

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/driftlab/trendfuse/internal/social"
	"github.com/driftlab/trendfuse/internal/source"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveOrCreate_CreatesNewProduct(t *testing.T) {
	cat := New(testLogger(), nil)

	p := cat.ResolveOrCreate("Wireless Earbuds Pro")
	if p.Name != "Wireless Earbuds Pro" {
		t.Errorf("expected canonical name 'Wireless Earbuds Pro', got %q", p.Name)
	}
	if p.ID == uuid.Nil {
		t.Error("expected a non-zero product ID")
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if cat.Len() != 1 {
		t.Errorf("expected 1 product, got %d", cat.Len())
	}
}

func TestResolveOrCreate_MergesSimilarNames(t *testing.T) {
	cat := New(testLogger(), nil)

	first := cat.ResolveOrCreate("Car Phone Holder Mount")
	second := cat.ResolveOrCreate("Phone Holder Car Mount")

	if first != second {
		t.Error("expected reordered token names to resolve to the same product")
	}
	if cat.Len() != 1 {
		t.Errorf("expected 1 product after merge, got %d", cat.Len())
	}
}

func TestResolveOrCreate_KeepsDistinctProducts(t *testing.T) {
	cat := New(testLogger(), nil)

	first := cat.ResolveOrCreate("Wireless Earbuds")
	second := cat.ResolveOrCreate("LED Strip Lights")

	if first == second {
		t.Error("expected unrelated names to create distinct products")
	}
	if cat.Len() != 2 {
		t.Errorf("expected 2 products, got %d", cat.Len())
	}
}

func TestResolveOrCreate_FirstMatchWins(t *testing.T) {
	cat := New(testLogger(), nil)

	first := cat.ResolveOrCreate("car phone holder")
	second := cat.ResolveOrCreate("car phone mount")
	if first == second {
		t.Fatal("setup names should be distinct products")
	}

	// Similar to both existing products; the earlier insertion wins.
	resolved := cat.ResolveOrCreate("car phone holder mount")
	if resolved != first {
		t.Error("expected resolution to match the earliest similar product")
	}
	if cat.Len() != 2 {
		t.Errorf("expected 2 products, got %d", cat.Len())
	}
}

func TestResolveOrCreate_DegenerateNameIsSentinel(t *testing.T) {
	cat := New(testLogger(), nil)

	p := cat.ResolveOrCreate("!!")
	if p == nil {
		t.Fatal("expected a sentinel product, got nil")
	}
	if p.Name != "" {
		t.Errorf("expected empty sentinel name, got %q", p.Name)
	}
	if cat.Len() != 0 {
		t.Errorf("degenerate name must not enter the catalog, got %d products", cat.Len())
	}

	// Writes to the sentinel must not surface anywhere.
	p.AliOrders = 500
	if cat.Len() != 0 {
		t.Errorf("sentinel writes must not create products, got %d", cat.Len())
	}
}

func TestAddTrends_LastWriteWins(t *testing.T) {
	cat := New(testLogger(), nil)

	cat.AddTrends([]source.TrendRecord{
		{Keyword: "wireless earbuds", Momentum: 0.5, AvgInterest: 30},
		{Keyword: "wireless earbuds", Momentum: 1.2, AvgInterest: 45},
	})

	products := cat.Products()
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.TrendMomentum != 1.2 {
		t.Errorf("expected later record to win, momentum = %v", p.TrendMomentum)
	}
	if p.TrendAvgInterest != 45 {
		t.Errorf("expected later record to win, avg interest = %v", p.TrendAvgInterest)
	}
	if !p.HasTrendData {
		t.Error("expected HasTrendData to be set")
	}
}

func TestAddSources_MergeAcrossSources(t *testing.T) {
	cat := New(testLogger(), nil)

	cat.AddTrends([]source.TrendRecord{
		{Keyword: "magnetic phone case", Momentum: 1.0, AvgInterest: 50},
	})
	cat.AddAliExpress([]source.AliExpressRecord{
		{Name: "Magnetic Phone Case", Orders: 12000, Reviews: 800, Rating: 4.6, Price: 9.99},
	})
	cat.AddAmazon([]source.AmazonRecord{
		{Name: "magnetic phone case", Reviews: 3000, Rating: 4.4, Price: 14.99, BSR: 120},
	})

	if cat.Len() != 1 {
		t.Fatalf("expected all sources to merge into 1 product, got %d", cat.Len())
	}
	p := cat.Products()[0]
	if !p.HasTrendData || !p.HasAliData || !p.HasAmzData {
		t.Errorf("expected trend, ali, and amz flags set, got %v %v %v",
			p.HasTrendData, p.HasAliData, p.HasAmzData)
	}
	if p.SourceCount() != 3 {
		t.Errorf("expected source count 3, got %d", p.SourceCount())
	}
	if p.AliOrders != 12000 || p.AmzBSR != 120 {
		t.Errorf("unexpected merged fields: orders=%d bsr=%d", p.AliOrders, p.AmzBSR)
	}
}

func TestAddAmazon_MissingBSRDefaultsDeep(t *testing.T) {
	cat := New(testLogger(), nil)

	cat.AddAmazon([]source.AmazonRecord{
		{Name: "portable blender bottle", Reviews: 100, Rating: 4.0},
	})

	p := cat.Products()[0]
	if p.AmzBSR != 999 {
		t.Errorf("expected missing rank to default to 999, got %d", p.AmzBSR)
	}
}

func TestAddTikTok_MergesAggregates(t *testing.T) {
	cat := New(testLogger(), nil)

	cat.AddTikTok([]social.Aggregate{
		{
			Keyword:       "galaxy projector light",
			VideoCount:    2,
			TotalViews:    3000000,
			TotalLikes:    250000,
			TotalComments: 4000,
			TotalShares:   9000,
			AvgViews:      1500000,
			SampleURL:     "https://tiktok.example/v/1",
		},
	})

	p := cat.Products()[0]
	if !p.HasTikTokData {
		t.Error("expected HasTikTokData to be set")
	}
	if p.TikTokTotalViews != 3000000 || p.TikTokVideoCount != 2 {
		t.Errorf("unexpected tiktok fields: views=%d videos=%d",
			p.TikTokTotalViews, p.TikTokVideoCount)
	}
	if p.TikTokURL != "https://tiktok.example/v/1" {
		t.Errorf("unexpected sample URL %q", p.TikTokURL)
	}
}

func TestProducts_ReturnsCopyOfSlice(t *testing.T) {
	cat := New(testLogger(), nil)
	cat.ResolveOrCreate("wireless earbuds")

	products := cat.Products()
	products[0] = nil
	if cat.Products()[0] == nil {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}

func TestResolveOrCreate_DeterministicTimestamps(t *testing.T) {
	cat := New(testLogger(), nil)
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cat.timeNow = func() time.Time { return fixed }

	p := cat.ResolveOrCreate("wireless earbuds")
	if !p.CreatedAt.Equal(fixed) {
		t.Errorf("expected CreatedAt %v, got %v", fixed, p.CreatedAt)
	}
}
