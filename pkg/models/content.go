package models

// ContentCategory classifies a single source file within the vault.
type ContentCategory string

const (
	CategoryReading    ContentCategory = "reading"
	CategoryVideo      ContentCategory = "video"
	CategoryTranscript ContentCategory = "transcript"
	CategoryNote       ContentCategory = "note"
	CategoryQuiz       ContentCategory = "quiz"
	CategoryAssignment ContentCategory = "assignment"
	CategoryExcluded   ContentCategory = "excluded"
)

// ContentEntry is a classified source file. Entries are immutable once
// classified; a new scan produces new entries.
type ContentEntry struct {
	Path     string          `json:"path"`
	Name     string          `json:"name"`
	Ext      string          `json:"ext"`
	Category ContentCategory `json:"category"`
}

// DirectoryNode is one directory in the scanned content tree. Depth is
// relative to the scan root (root = 0). Nodes are rebuilt from disk on every
// run and never mutated in place.
type DirectoryNode struct {
	Path     string           `json:"path"`
	Name     string           `json:"name"`
	Depth    int              `json:"depth"`
	Children []*DirectoryNode `json:"children,omitempty"`
	Entries  []ContentEntry   `json:"entries,omitempty"`
}

// ByCategory groups the node's entries, preserving their on-disk order.
func (n *DirectoryNode) ByCategory() map[ContentCategory][]ContentEntry {
	groups := make(map[ContentCategory][]ContentEntry)
	for _, e := range n.Entries {
		if e.Category == CategoryExcluded {
			continue
		}
		groups[e.Category] = append(groups[e.Category], e)
	}
	return groups
}

// CategoryOrder is the fixed global ordering of content sections in an index
// document.
var CategoryOrder = []ContentCategory{
	CategoryReading,
	CategoryVideo,
	CategoryTranscript,
	CategoryNote,
	CategoryQuiz,
	CategoryAssignment,
}

// CategoryIcons maps a category to the icon used for its listing lines.
var CategoryIcons = map[ContentCategory]string{
	CategoryReading:    "📖",
	CategoryVideo:      "🎥",
	CategoryTranscript: "📜",
	CategoryNote:       "📝",
	CategoryQuiz:       "❓",
	CategoryAssignment: "📋",
}

// CategoryHeadings maps a category to its section heading.
var CategoryHeadings = map[ContentCategory]string{
	CategoryReading:    "Readings",
	CategoryVideo:      "Videos",
	CategoryTranscript: "Transcripts",
	CategoryNote:       "Notes",
	CategoryQuiz:       "Quizzes",
	CategoryAssignment: "Assignments",
}
