package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielshue/notebook-automation/pkg/models"
)

func TestAssembleBodyMain(t *testing.T) {
	node := &models.DirectoryNode{
		Name:  "Vault",
		Depth: 0,
		Children: []*models.DirectoryNode{
			{Name: "MBA Program"},
			{Name: "Data Science Program"},
		},
	}

	body := AssembleBody(node, nil, models.TypeMain)

	assert.Contains(t, body, "## Programs")
	assert.Contains(t, body, "[MBA Program](MBA%20Program/MBA%20Program.md)")
	assert.Contains(t, body, "[Data Science Program](Data%20Science%20Program/Data%20Science%20Program.md)")
	assert.NotContains(t, body, "Back to")
}

func TestAssembleBodyCourseLayout(t *testing.T) {
	node := &models.DirectoryNode{
		Name:  "corporate-finance",
		Depth: 2,
		Children: []*models.DirectoryNode{
			{Name: "Week 1"},
			{Name: "Live Session Recordings"},
			{Name: "Case Studies"},
			{Name: "Required Readings"},
		},
	}

	body := AssembleBody(node, &models.DirectoryNode{Name: "mba", Depth: 1}, models.TypeCourse)

	// Fixed section order, each present group followed by a rule.
	classes := strings.Index(body, "## Classes")
	live := strings.Index(body, "## Live Sessions")
	cases := strings.Index(body, "## Case Studies")
	readings := strings.Index(body, "## Required Readings")
	assert.True(t, classes >= 0 && classes < live && live < cases && cases < readings, body)
	assert.Contains(t, body, "\n---\n")

	// No Resources subfolder means no Resources heading.
	assert.NotContains(t, body, "## Resources")

	// Special folders are not listed as classes.
	classSection := body[classes:live]
	assert.Contains(t, classSection, "Week 1")
	assert.NotContains(t, classSection, "Live Session")
}

func TestAssembleBodyModuleGroups(t *testing.T) {
	node := &models.DirectoryNode{
		Name:  "module-1",
		Depth: 4,
		Children: []*models.DirectoryNode{
			{Name: "lesson-1"},
			{Name: "Live Session"},
			{Name: "lesson-2"},
		},
	}

	body := AssembleBody(node, &models.DirectoryNode{Name: "week-1", Depth: 3}, models.TypeModule)

	live := strings.Index(body, "## Live Sessions")
	lessons := strings.Index(body, "## Lessons")
	assert.True(t, live >= 0 && live < lessons, "live sessions come before lessons:\n%s", body)
}

func TestAssembleBodyLessonSections(t *testing.T) {
	node := &models.DirectoryNode{
		Name:  "lesson-1",
		Depth: 5,
		Entries: []models.ContentEntry{
			{Name: "chapter-3.pdf", Category: models.CategoryReading},
			{Name: "lecture.mp4", Category: models.CategoryVideo},
			{Name: "lecture-transcript.md", Category: models.CategoryTranscript},
			{Name: "scratch-notes.md", Category: models.CategoryNote},
			{Name: "week-quiz.md", Category: models.CategoryQuiz},
		},
	}

	body := AssembleBody(node, &models.DirectoryNode{Name: "module-1", Depth: 4}, models.TypeLesson)

	readings := strings.Index(body, "## Readings")
	av := strings.Index(body, "## Videos & Transcripts")
	notes := strings.Index(body, "## Notes")
	quizzes := strings.Index(body, "## Quizzes")
	assert.True(t, readings >= 0 && readings < av && av < notes && notes < quizzes, body)

	// Videos and transcripts merge under one heading.
	avSection := body[av:notes]
	assert.Contains(t, avSection, "lecture.mp4")
	assert.Contains(t, avSection, "lecture-transcript.md")

	// Item lines carry icon, link, and tags.
	assert.Contains(t, body, "🎥 [Lecture](lecture.mp4) #video #lecture")
	assert.Contains(t, body, "#quiz")
}

func TestAssembleBodyLessonSkipsEmptySections(t *testing.T) {
	node := &models.DirectoryNode{
		Name:  "lesson-2",
		Depth: 5,
		Entries: []models.ContentEntry{
			{Name: "article.pdf", Category: models.CategoryReading},
		},
	}

	body := AssembleBody(node, &models.DirectoryNode{Name: "module-1", Depth: 4}, models.TypeLesson)

	assert.Contains(t, body, "## Readings")
	assert.NotContains(t, body, "## Videos & Transcripts")
	assert.NotContains(t, body, "## Notes")
	assert.NotContains(t, body, "## Quizzes")
}

func TestAssembleBodyResourcesListsFiles(t *testing.T) {
	node := &models.DirectoryNode{
		Name:  "Resources",
		Depth: 3,
		Entries: []models.ContentEntry{
			{Name: "cheat sheet.pdf", Category: models.CategoryReading},
			{Name: "ignored.xlsx", Category: models.CategoryExcluded},
		},
	}

	body := AssembleBody(node, &models.DirectoryNode{Name: "finance", Depth: 2}, models.TypeResources)

	assert.Contains(t, body, "## Resources")
	assert.Contains(t, body, "[Cheat Sheet](cheat%20sheet.pdf)")
	assert.NotContains(t, body, "ignored.xlsx")
}

func TestAssembleBodyEndsWithNavigation(t *testing.T) {
	node := &models.DirectoryNode{Name: "lesson-1", Depth: 5}
	body := AssembleBody(node, &models.DirectoryNode{Name: "module-1", Depth: 4}, models.TypeLesson)

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, "Back to Module Index")
	assert.Contains(t, last, "[[Assignments]]")
}
