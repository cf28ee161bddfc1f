package index

import (
	"strings"

	"github.com/danielshue/notebook-automation/pkg/models"
)

// CategoryTag returns the structural tag for a content category, or "" for
// excluded content.
func CategoryTag(cat models.ContentCategory) string {
	if cat == models.CategoryExcluded || cat == "" {
		return ""
	}
	return "#" + string(cat)
}

// TypeTags returns the tags an index document of the given type carries:
// #index plus the hierarchy level tag where one exists.
func TypeTags(t models.IndexType) []string {
	tags := []string{"#index"}
	if level := t.LevelTag(); level != "" {
		tags = append(tags, level)
	}
	return tags
}

// cognitiveKeywords maps filename substrings to advisory tags.
var cognitiveKeywords = []struct {
	substr string
	tag    string
}{
	{"lecture", "#lecture"},
	{"case", "#case-study"},
	{"summary", "#summary"},
	{"exercise", "#exercise"},
}

// CognitiveTags derives advisory tags from substrings of a filename. Tags
// are metadata only; an empty result never blocks assembly.
func CognitiveTags(name string) []string {
	lower := strings.ToLower(name)
	var tags []string
	for _, kw := range cognitiveKeywords {
		if strings.Contains(lower, kw.substr) {
			tags = append(tags, kw.tag)
		}
	}
	return tags
}

// ItemTags combines the structural and cognitive tags for one listed item.
func ItemTags(entry models.ContentEntry) []string {
	tags := []string{}
	if t := CategoryTag(entry.Category); t != "" {
		tags = append(tags, t)
	}
	return append(tags, CognitiveTags(entry.Name)...)
}
