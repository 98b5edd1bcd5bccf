package social

import (
	"reflect"
	"testing"
)

func TestExtractCandidateKeywords(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		hashtags []string
		want     []string
	}{
		{
			name:  "review pattern",
			title: "Wireless Earbuds review!",
			want:  []string{"wireless earbuds"},
		},
		{
			name:  "trying pattern",
			title: "trying galaxy projector for the first time",
			want:  []string{"galaxy projector"},
		},
		{
			name:  "marketplace pattern",
			title: "phone holder from amazon is actually good",
			want:  []string{"phone holder"},
		},
		{
			name:  "superlative pattern",
			title: "this viral magnetic phone case is everywhere",
			want:  []string{"magnetic phone"},
		},
		{
			name:     "generic hashtags filtered",
			title:    "check this out",
			hashtags: []string{"fyp", "viral", "trending", "led"},
			want:     nil,
		},
		{
			name:     "hashtag must exceed minimum candidate shape",
			title:    "daily haulz",
			hashtags: []string{"ledstriplights"},
			want:     nil,
		},
		{
			name:  "empty title yields nothing",
			title: "",
			want:  nil,
		},
		{
			name:  "single word candidates dropped",
			title: "amazing lamp",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCandidateKeywords(tt.title, tt.hashtags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCandidateKeywords(%q, %v) = %v, want %v",
					tt.title, tt.hashtags, got, tt.want)
			}
		})
	}
}

func TestExtractCandidateKeywords_CapsPerVideo(t *testing.T) {
	title := "wireless earbuds review, trying galaxy projector, phone holder from amazon, " +
		"amazing magnetic case, testing neck massager, sunset lamp review"
	got := ExtractCandidateKeywords(title, []string{"posture corrector", "mini printer"})
	if len(got) > MaxCandidatesPerVideo {
		t.Errorf("expected at most %d candidates, got %d: %v",
			MaxCandidatesPerVideo, len(got), got)
	}
}

func TestExtractCandidateKeywords_Deduplicates(t *testing.T) {
	title := "wireless earbuds review and wireless earbuds unboxing"
	got := ExtractCandidateKeywords(title, nil)
	if len(got) != 1 || got[0] != "wireless earbuds" {
		t.Errorf("expected a single deduplicated keyword, got %v", got)
	}
}
