package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielshue/notebook-automation/pkg/models"
)

func TestClassifyLevelDepthTable(t *testing.T) {
	tests := []struct {
		depth int
		want  models.IndexType
	}{
		{0, models.TypeMain},
		{1, models.TypeProgram},
		{2, models.TypeCourse},
		{3, models.TypeClass},
		{4, models.TypeModule},
		{5, models.TypeLesson},
		{6, models.TypeLesson},
		{12, models.TypeLesson},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLevel(tt.depth, "Ordinary Name"), "depth %d", tt.depth)
	}
}

func TestClassifyLevelNameOverrides(t *testing.T) {
	tests := []struct {
		name string
		want models.IndexType
	}{
		{"Live Session Recordings", models.TypeLiveSession},
		{"live session 3", models.TypeLiveSession},
		{"Case Studies", models.TypeCaseStudies},
		{"Harvard Cases", models.TypeCaseStudies},
		{"Required Readings", models.TypeReadings},
		{"Reading List", models.TypeReadings},
		{"Resources", models.TypeResources},
		{"Extra Resources", models.TypeResources},
	}

	for _, tt := range tests {
		// Name rules must win at every depth.
		assert.Equal(t, tt.want, ClassifyLevel(2, tt.name), tt.name)
		assert.Equal(t, tt.want, ClassifyLevel(5, tt.name), tt.name)
	}
}

func TestMatchesTypeName(t *testing.T) {
	assert.True(t, MatchesTypeName("Live Session Week 2", models.TypeLiveSession))
	assert.True(t, MatchesTypeName("case studies", models.TypeCaseStudies))
	assert.True(t, MatchesTypeName("Required Readings", models.TypeReadings))
	assert.True(t, MatchesTypeName("Resources", models.TypeResources))
	assert.False(t, MatchesTypeName("Module 1", models.TypeLiveSession))
	assert.False(t, MatchesTypeName("Module 1", models.TypeCourse))
}
