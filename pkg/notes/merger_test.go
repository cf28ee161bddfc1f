package notes

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielshue/notebook-automation/pkg/frontmatter"
	"github.com/danielshue/notebook-automation/pkg/models"
)

func testMerger() *Merger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	m := NewMerger(log)
	m.Now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return m
}

func videoItem() SourceItem {
	return SourceItem{
		Path:     "/vault/mba/finance/week-1/module-1/lesson-1/lecture.mp4",
		Name:     "lecture.mp4",
		Category: models.CategoryVideo,
		Program:  "Mba",
		Course:   "Finance",
	}
}

func TestRegenerateFromScratch(t *testing.T) {
	m := testMerger()

	content, err := m.Regenerate("", videoItem())
	require.NoError(t, err)

	block, body, err := frontmatter.Parse(content)
	require.NoError(t, err)
	require.NotNil(t, block)

	assert.Equal(t, "Lecture", block.Get(frontmatter.KeyTitle))
	assert.Equal(t, "video-reference", block.Get(frontmatter.KeyType))
	assert.Equal(t, string(models.LockWritable), block.Get(frontmatter.KeyAutoState))
	assert.Equal(t, "2024-03-01", block.Get(frontmatter.KeyCreated))
	assert.Equal(t, "unstarted", block.Get(frontmatter.KeyStatus))
	assert.Equal(t, "Mba", block.Get(frontmatter.KeyProgram))

	assert.Contains(t, body, "## Summary")
	assert.True(t, strings.HasSuffix(strings.TrimRight(body, "\n"), PreservedHeading),
		"new note ends with an empty preserved region:\n%s", body)
}

func TestRegeneratePreservesUserNotes(t *testing.T) {
	m := testMerger()

	first, err := m.Regenerate("", videoItem())
	require.NoError(t, err)

	// The user writes into the preserved region and fills a progress field.
	edited := strings.Replace(first, PreservedHeading, PreservedHeading+"\n\nThese are my custom notes.", 1)
	block, body, err := frontmatter.Parse(edited)
	require.NoError(t, err)
	block.Set(frontmatter.KeyStatus, "in-progress")
	block.Set(frontmatter.KeyComprehension, "4")
	edited = frontmatter.BuildContent(block, body)

	second, err := m.Regenerate(edited, videoItem())
	require.NoError(t, err)

	assert.Contains(t, second, "These are my custom notes.")

	newBlock, newBody, err := frontmatter.Parse(second)
	require.NoError(t, err)
	assert.Equal(t, "in-progress", newBlock.Get(frontmatter.KeyStatus))
	assert.Equal(t, "4", newBlock.Get(frontmatter.KeyComprehension))

	// The preserved region stays the last block in the document.
	i := strings.Index(newBody, PreservedHeading)
	require.True(t, i >= 0)
	assert.Equal(t, PreservedHeading+"\n\nThese are my custom notes.", strings.TrimRight(newBody[i:], "\n"))
}

func TestRegenerateResetsEmptyProgressFields(t *testing.T) {
	m := testMerger()

	existing := `---
title: Lecture
status: ""
completion-date: ""
---

# Lecture

## Notes
`
	content, err := m.Regenerate(existing, videoItem())
	require.NoError(t, err)

	block, _, err := frontmatter.Parse(content)
	require.NoError(t, err)
	assert.Equal(t, "unstarted", block.Get(frontmatter.KeyStatus))
	assert.Equal(t, "", block.Get(frontmatter.KeyCompletion))
}

func TestRegenerateMalformedExistingDegradesToFresh(t *testing.T) {
	m := testMerger()

	content, err := m.Regenerate("---\ntitle: [broken\n---\nbody", videoItem())
	require.NoError(t, err)

	assert.Contains(t, content, "## Summary")
	assert.Contains(t, content, PreservedHeading)
	// Nothing of the malformed document survives.
	assert.NotContains(t, content, "broken")
}

func TestRegenerateKeepsCreatedDate(t *testing.T) {
	m := testMerger()

	existing := `---
title: Lecture
date-created: 2023-11-20
---

## Notes

old thoughts
`
	content, err := m.Regenerate(existing, videoItem())
	require.NoError(t, err)

	block, _, err := frontmatter.Parse(content)
	require.NoError(t, err)
	assert.Equal(t, "2023-11-20", block.Get(frontmatter.KeyCreated))
	assert.Contains(t, content, "old thoughts")
}

func TestRegenerateUsesProviders(t *testing.T) {
	m := testMerger()
	m.Summarize = stubSummarizer{"A crisp summary."}
	m.Share = stubShare{"https://example.com/s/abc"}

	content, err := m.Regenerate("", videoItem())
	require.NoError(t, err)

	assert.Contains(t, content, "A crisp summary.")
	assert.Contains(t, content, "https://example.com/s/abc")
}

func TestExtractPreserved(t *testing.T) {
	region, ok := ExtractPreserved("# Title\n\n## Summary\n\nx\n\n## Notes\n\nkeep me\n")
	assert.True(t, ok)
	assert.Equal(t, "## Notes\n\nkeep me\n", region)

	region, ok = ExtractPreserved("## Notes\n\nat the very top")
	assert.True(t, ok)
	assert.Equal(t, "## Notes\n\nat the very top", region)

	_, ok = ExtractPreserved("no region here")
	assert.False(t, ok)
}

type stubSummarizer struct{ text string }

func (s stubSummarizer) Summarize(string) (string, error) { return s.text, nil }

type stubShare struct{ url string }

func (s stubShare) ShareLink(string) (string, error) { return s.url, nil }
