package catalog

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/driftlab/trendfuse/internal/canonical"
	"github.com/driftlab/trendfuse/internal/metrics"
	"github.com/driftlab/trendfuse/internal/social"
	"github.com/driftlab/trendfuse/internal/source"
)

// Catalog owns the in-memory Product set and resolves incoming records
// to canonical entities by name similarity. It is not safe for
// concurrent use: resolution scans the complete current Product set, so
// ingestion calls must run one at a time.
type Catalog struct {
	products []*Product
	logger   *slog.Logger
	metrics  *metrics.Pipeline
	timeNow  func() time.Time // For testability
}

// New creates an empty Catalog. logger may be nil, in which case the
// default slog logger is used. pipelineMetrics may be nil to disable
// instrumentation.
func New(logger *slog.Logger, pipelineMetrics *metrics.Pipeline) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		logger:  logger,
		metrics: pipelineMetrics,
		timeNow: time.Now,
	}
}

// Products returns the current Product set in insertion order. The
// slice is a copy; the pointed-to Products are the live entities.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of canonical products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ResolveOrCreate canonicalizes rawName and returns the first existing
// Product (in insertion order) whose name is similar to it, creating
// and appending a new Product when none matches.
//
// A degenerate canonical name (empty or shorter than three characters)
// returns a detached sentinel Product that is not added to the catalog,
// so the caller's subsequent field merge becomes a no-op. This is an
// explicit degenerate case, not an error.
func (c *Catalog) ResolveOrCreate(rawName string) *Product {
	cleanName := canonical.Canonicalize(rawName)
	if canonical.Degenerate(cleanName) {
		if c.metrics != nil {
			c.metrics.IncDegenerateNames()
		}
		c.logger.Debug("dropping degenerate product name", "raw", rawName)
		return &Product{}
	}

	for _, product := range c.products {
		if canonical.Similar(product.Name, cleanName) {
			if c.metrics != nil {
				c.metrics.IncProductsMerged()
			}
			return product
		}
	}

	product := &Product{
		ID:        uuid.New(),
		Name:      cleanName,
		CreatedAt: c.timeNow(),
	}
	c.products = append(c.products, product)
	if c.metrics != nil {
		c.metrics.IncProductsCreated()
	}
	return product
}

// AddTrends merges trend records into the catalog. Within the trend
// source, a later record for the same entity fully replaces the
// earlier one's trend fields.
func (c *Catalog) AddTrends(records []source.TrendRecord) {
	c.logger.Info("adding trend data", "records", len(records))

	for _, rec := range records {
		if c.metrics != nil {
			c.metrics.IncRecordsIngested(source.NameTrends)
		}
		product := c.ResolveOrCreate(rec.Keyword)
		product.TrendMomentum = rec.Momentum
		product.TrendAvgInterest = rec.AvgInterest
		product.TrendMaxInterest = rec.MaxInterest
		product.RelatedQueries = rec.RelatedQueries
		product.HasTrendData = true
	}
}

// AddAliExpress merges AliExpress listings into the catalog.
func (c *Catalog) AddAliExpress(records []source.AliExpressRecord) {
	c.logger.Info("adding aliexpress data", "records", len(records))

	for _, rec := range records {
		if c.metrics != nil {
			c.metrics.IncRecordsIngested(source.NameAliExpress)
		}
		product := c.ResolveOrCreate(rec.Name)
		product.AliOrders = rec.Orders
		product.AliReviews = rec.Reviews
		product.AliRating = rec.Rating
		product.AliPrice = rec.Price
		product.AliURL = rec.URL
		product.HasAliData = true
	}
}

// AddAmazon merges Amazon listings into the catalog. A listing without
// a best-sellers rank is treated as deeply ranked rather than rank
// zero, which would otherwise read as the best possible rank.
func (c *Catalog) AddAmazon(records []source.AmazonRecord) {
	c.logger.Info("adding amazon data", "records", len(records))

	for _, rec := range records {
		if c.metrics != nil {
			c.metrics.IncRecordsIngested(source.NameAmazon)
		}
		bsr := rec.BSR
		if bsr <= 0 {
			bsr = 999
		}
		product := c.ResolveOrCreate(rec.Name)
		product.AmzReviews = rec.Reviews
		product.AmzRating = rec.Rating
		product.AmzPrice = rec.Price
		product.AmzBSR = bsr
		product.AmzIsPrime = rec.IsPrime
		product.AmzURL = rec.URL
		product.HasAmzData = true
	}
}

// AddTikTok merges per-keyword social aggregates into the catalog.
// Each aggregate is resolved exactly once.
func (c *Catalog) AddTikTok(aggregates []social.Aggregate) {
	c.logger.Info("adding tiktok data", "keywords", len(aggregates))

	for _, agg := range aggregates {
		if c.metrics != nil {
			c.metrics.IncRecordsIngested(source.NameTikTok)
		}
		product := c.ResolveOrCreate(agg.Keyword)
		product.TikTokVideoCount = agg.VideoCount
		product.TikTokTotalViews = agg.TotalViews
		product.TikTokTotalLikes = agg.TotalLikes
		product.TikTokTotalComments = agg.TotalComments
		product.TikTokTotalShares = agg.TotalShares
		product.TikTokAvgViews = agg.AvgViews
		product.TikTokURL = agg.SampleURL
		product.TikTokSampleVideos = agg.SampleVideos
		product.HasTikTokData = true
	}
}
