package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/driftlab/trendfuse/internal/report"
)

// csvColumns is the fixed CSV column order. List-valued fields are
// serialized as "; "-joined strings; related queries are capped at the
// top three.
var csvColumns = []string{
	"product_name", "score", "trend_momentum", "trend_slope",
	"ali_orders", "orders", "ali_reviews", "amz_reviews", "reviews",
	"tiktok_total_views", "tiktok_views", "tiktok_videos",
	"ali_price", "amz_price", "ali_rating", "amz_rating",
	"link_ali", "link_amazon", "link_tiktok",
	"data_sources", "related_queries",
}

// maxRelatedQueries caps the related-query list in the CSV export.
const maxRelatedQueries = 3

// WriteCSV writes the ranked display records to a CSV file with the
// fixed column layout. Exporting an empty set returns ErrNoProducts and
// writes nothing.
func WriteCSV(path string, records []report.DisplayRecord) error {
	if len(records) == 0 {
		return ErrNoProducts
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		if err := w.Write(csvRow(rec)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// csvRow renders one display record in csvColumns order.
func csvRow(rec report.DisplayRecord) []string {
	related := rec.RelatedQueries
	if len(related) > maxRelatedQueries {
		related = related[:maxRelatedQueries]
	}

	return []string{
		rec.ProductName,
		formatFloat(rec.Score),
		formatFloat(rec.TrendMomentum),
		formatFloat(rec.TrendSlope),
		strconv.Itoa(rec.AliOrders),
		strconv.Itoa(rec.Orders),
		strconv.Itoa(rec.AliReviews),
		strconv.Itoa(rec.AmzReviews),
		strconv.Itoa(rec.Reviews),
		strconv.FormatInt(rec.TikTokTotalViews, 10),
		rec.TikTokViews,
		strconv.Itoa(rec.TikTokVideos),
		formatFloat(rec.AliPrice),
		formatFloat(rec.AmzPrice),
		formatFloat(rec.AliRating),
		formatFloat(rec.AmzRating),
		rec.LinkAli,
		rec.LinkAmazon,
		rec.LinkTikTok,
		strings.Join(rec.DataSources, "; "),
		strings.Join(related, "; "),
	}
}

// formatFloat renders a float without a fixed precision; display
// records are already rounded.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
