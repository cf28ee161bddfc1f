package scan

import (
	"strings"

	"github.com/danielshue/notebook-automation/pkg/models"
)

// depthTypes is the default depth-to-type table for directories whose names
// do not trigger a special type.
var depthTypes = []models.IndexType{
	models.TypeMain,
	models.TypeProgram,
	models.TypeCourse,
	models.TypeClass,
	models.TypeModule,
	models.TypeLesson,
}

// ClassifyLevel maps a directory's depth and name to its index type.
// Name-based rules win over the depth table; depths past the table's end are
// lessons.
func ClassifyLevel(depth int, name string) models.IndexType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "live session"):
		return models.TypeLiveSession
	case strings.Contains(lower, "case"):
		return models.TypeCaseStudies
	case strings.Contains(lower, "reading"):
		return models.TypeReadings
	case strings.Contains(lower, "resource"):
		return models.TypeResources
	}

	if depth >= 0 && depth < len(depthTypes) {
		return depthTypes[depth]
	}
	return models.TypeLesson
}

// MatchesTypeName reports whether a directory name triggers the given
// special type. Used by the assembler to group subfolders with the same
// keywords that drive classification.
func MatchesTypeName(name string, t models.IndexType) bool {
	lower := strings.ToLower(name)
	switch t {
	case models.TypeLiveSession:
		return strings.Contains(lower, "live session")
	case models.TypeCaseStudies:
		return strings.Contains(lower, "case")
	case models.TypeReadings:
		return strings.Contains(lower, "reading")
	case models.TypeResources:
		return strings.Contains(lower, "resource")
	default:
		return false
	}
}
