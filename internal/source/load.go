package source

import (
	"encoding/json"
	"fmt"
	"os"
)

// loadJSON reads a JSON array of records from a file. A collector that
// timed out or failed upstream writes an empty array, which loads as a
// zero-length slice and is treated downstream as "no contributions this
// run".
func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file %s: %w", path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records file %s: %w", path, err)
	}
	return records, nil
}

// LoadTrends loads trend records from a JSON file.
func LoadTrends(path string) ([]TrendRecord, error) {
	return loadJSON[TrendRecord](path)
}

// LoadAliExpress loads AliExpress listing records from a JSON file.
func LoadAliExpress(path string) ([]AliExpressRecord, error) {
	return loadJSON[AliExpressRecord](path)
}

// LoadAmazon loads Amazon listing records from a JSON file.
func LoadAmazon(path string) ([]AmazonRecord, error) {
	return loadJSON[AmazonRecord](path)
}

// LoadTikTok loads TikTok video records from a JSON file.
func LoadTikTok(path string) ([]TikTokRecord, error) {
	return loadJSON[TikTokRecord](path)
}
