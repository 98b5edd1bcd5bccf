// Package social derives candidate product keywords from unstructured
// short-video titles and hashtags, and aggregates per-keyword engagement
// across videos before handing the result to the resolver.
//
// The keyword extraction is heuristic by nature; it lives behind a small
// function surface so it can be swapped without touching the resolver or
// scorer contracts.
package social

import (
	"regexp"
	"strings"

	"github.com/driftlab/trendfuse/internal/canonical"
)

// MaxCandidatesPerVideo caps extraction output per video.
const MaxCandidatesPerVideo = 5

// MaxSampleVideos is how many videos are retained per keyword for audit
// and display.
const MaxSampleVideos = 3

// minCandidateLength is the minimum cleaned-candidate length; shorter
// phrases are too generic to identify a product.
const minCandidateLength = 5

// stopHashtags are platform-generic hashtags that never identify a
// product.
var stopHashtags = map[string]bool{
	"viral":    true,
	"trending": true,
	"fyp":      true,
	"foryou":   true,
	"tiktok":   true,
}

// productPatterns pull 1-2-word phrases around review/shopping/superlative
// cues in lowercased video titles.
var productPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\w+\s+\w+)\s+(?:review|unboxing|haul)`),
	regexp.MustCompile(`(?:review|trying|testing)\s+(\w+\s+\w+)`),
	regexp.MustCompile(`(\w+\s+\w+)\s+(?:from|on)\s+(?:amazon|aliexpress)`),
	regexp.MustCompile(`(?:amazing|viral|must.have)\s+(\w+(?:\s+\w+)?)`),
}

// ExtractCandidateKeywords derives up to MaxCandidatesPerVideo canonical
// product keywords from a video title and its hashtags. Candidates are
// kept only if the cleaned form is longer than minCandidateLength and
// has at least two tokens.
func ExtractCandidateKeywords(title string, hashtags []string) []string {
	if title == "" {
		return nil
	}

	var raw []string
	seen := make(map[string]bool)
	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || seen[candidate] {
			return
		}
		seen[candidate] = true
		raw = append(raw, candidate)
	}

	titleLower := strings.ToLower(title)
	for _, pattern := range productPatterns {
		for _, match := range pattern.FindAllStringSubmatch(titleLower, -1) {
			add(match[1])
		}
	}

	for _, hashtag := range hashtags {
		if len(hashtag) > 3 && !stopHashtags[strings.ToLower(hashtag)] {
			add(hashtag)
		}
	}

	var keywords []string
	kept := make(map[string]bool)
	for _, candidate := range raw {
		cleaned := canonical.Canonicalize(candidate)
		if len(cleaned) <= minCandidateLength || len(strings.Fields(cleaned)) < 2 {
			continue
		}
		if kept[cleaned] {
			continue
		}
		kept[cleaned] = true
		keywords = append(keywords, cleaned)
		if len(keywords) == MaxCandidatesPerVideo {
			break
		}
	}
	return keywords
}
