package scan

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/danielshue/notebook-automation/pkg/models"
)

var segmentCaser = cases.Title(language.English)

// InferContext derives the program and course a directory belongs to from
// its path segments. The offsets assume the standard
// program/course/class/module/lesson layout; when a tree is shallower than
// the offsets reach, the affected fields stay empty.
func InferContext(path string, t models.IndexType) models.Context {
	segments := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")

	segment := func(fromEnd int) string {
		i := len(segments) - fromEnd
		if i < 0 || i >= len(segments) {
			return ""
		}
		return cleanSegment(segments[i])
	}

	switch t {
	case models.TypeLesson, models.TypeModule, models.TypeClass, models.TypeCaseStudies:
		// Exact for modules; one level off for the others when the tree is
		// deeper or shallower than the standard layout. That imprecision is
		// accepted rather than corrected.
		return models.Context{Program: segment(4), Course: segment(3)}
	case models.TypeCourse:
		return models.Context{Program: segment(2), Course: segment(1)}
	case models.TypeProgram:
		return models.Context{Program: segment(1)}
	default:
		return models.Context{}
	}
}

// cleanSegment turns a raw path segment into display form: separators become
// spaces and words are title-cased.
func cleanSegment(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return segmentCaser.String(s)
}
