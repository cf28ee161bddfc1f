package index

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	leadingOrdinal = regexp.MustCompile(`^[0-9]+[\s._-]*`)
	knownExtension = regexp.MustCompile(`\.[A-Za-z0-9]{1,5}$`)

	titleCaser = cases.Title(language.English)
)

// Structural filler words dropped from titles.
var titleStopwords = map[string]bool{
	"lesson": true,
	"module": true,
	"course": true,
	"and":    true,
	"to":     true,
	"of":     true,
}

// casingFixes restores acronyms and the Roman numeral II that title-casing
// flattens.
var casingFixes = map[string]string{
	"Ii":   "II",
	"Roi":  "ROI",
	"Mba":  "MBA",
	"Ai":   "AI",
	"Kpi":  "KPI",
	"Hr":   "HR",
	"Ceo":  "CEO",
	"Cfo":  "CFO",
	"Swot": "SWOT",
	"Faq":  "FAQ",
	"Pdf":  "PDF",
}

// FriendlyTitle turns a file or directory name into a display title: the
// extension and any leading numeric ordering prefix are stripped, separators
// become spaces, structural filler words and bare numbers are dropped, and
// the remainder is title-cased with acronym fixes. A name that cleans down to
// under 3 characters becomes "Content" rather than an empty heading.
func FriendlyTitle(name string) string {
	stem := knownExtension.ReplaceAllString(name, "")
	stem = leadingOrdinal.ReplaceAllString(stem, "")
	stem = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(stem)

	var words []string
	for _, w := range strings.Fields(stem) {
		if titleStopwords[strings.ToLower(w)] || isNumeric(w) {
			continue
		}
		w = titleCaser.String(w)
		if fixed, ok := casingFixes[w]; ok {
			w = fixed
		}
		words = append(words, w)
	}

	title := strings.Join(words, " ")
	if len(title) < 3 {
		return "Content"
	}
	return title
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
