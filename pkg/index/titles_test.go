package index

import (
	"strings"
	"testing"
)

func TestFriendlyTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"numeric prefix and filler", "01_Introduction_to_Finance", "Introduction Finance"},
		{"extension stripped", "strategy-overview.pdf", "Strategy Overview"},
		{"stoplist words dropped", "course-introduction", "Introduction"},
		{"collapses to placeholder", "01_to", "Content"},
		{"empty input", "", "Content"},
		{"plain name", "Marketing Fundamentals", "Marketing Fundamentals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FriendlyTitle(tt.in); got != tt.want {
				t.Errorf("FriendlyTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFriendlyTitleCasingFixes(t *testing.T) {
	got := FriendlyTitle("module-4-ROI-Analysis-part-ii")
	if !strings.Contains(got, "ROI") {
		t.Errorf("FriendlyTitle() = %q, want ROI preserved", got)
	}
	if !strings.HasSuffix(got, "II") {
		t.Errorf("FriendlyTitle() = %q, want II suffix", got)
	}
}
