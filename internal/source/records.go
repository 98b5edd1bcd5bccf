// Package source defines the flat record shapes produced by the external
// collectors (Google Trends, AliExpress, Amazon, TikTok) and utilities
// for loading them from JSON files. Records are best-effort: missing
// fields simply decode to their zero values and are never an error.
package source

// Name identifies a collector. The values double as stable keys for
// metrics labels and log attributes.
const (
	NameTrends     = "trends"
	NameAliExpress = "aliexpress"
	NameAmazon     = "amazon"
	NameTikTok     = "tiktok"
)

// TrendRecord is one keyword's search-interest snapshot from the trend
// collector.
type TrendRecord struct {
	Keyword        string   `json:"keyword"`
	Momentum       float64  `json:"momentum"`
	AvgInterest    float64  `json:"avg_interest"`
	MaxInterest    float64  `json:"max_interest"`
	RelatedQueries []string `json:"related_queries"`
}

// AliExpressRecord is one marketplace listing from the AliExpress
// collector.
type AliExpressRecord struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Reviews int     `json:"reviews"`
	Rating  float64 `json:"rating"`
	Price   float64 `json:"price"`
	URL     string  `json:"url"`
}

// AmazonRecord is one marketplace listing from the Amazon collector.
// BSR is the best-sellers rank; lower is better.
type AmazonRecord struct {
	Name    string  `json:"name"`
	Reviews int     `json:"reviews"`
	Rating  float64 `json:"rating"`
	Price   float64 `json:"price"`
	BSR     int     `json:"bsr"`
	IsPrime bool    `json:"is_prime"`
	URL     string  `json:"url"`
}

// TikTokRecord is one short video's engagement snapshot from the TikTok
// collector.
type TikTokRecord struct {
	Title    string   `json:"title"`
	Hashtags []string `json:"hashtags"`
	Views    int64    `json:"views"`
	Likes    int64    `json:"likes"`
	Comments int64    `json:"comments"`
	Shares   int64    `json:"shares"`
	URL      string   `json:"url"`
}
