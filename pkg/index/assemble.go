package index

import (
	"fmt"
	"strings"

	"github.com/danielshue/notebook-automation/pkg/models"
	"github.com/danielshue/notebook-automation/pkg/scan"
)

const folderIcon = "🗂️"

// AssembleBody renders the body of an index document: title heading, the
// type-specific content sections, and the navigation footer. A section
// heading is only emitted when it has at least one item.
func AssembleBody(node *models.DirectoryNode, parent *models.DirectoryNode, t models.IndexType) string {
	var sb strings.Builder
	sb.WriteString("# " + FriendlyTitle(node.Name) + "\n")

	switch t {
	case models.TypeMain:
		writeSection(&sb, "Programs", folderLines(node.Children))

	case models.TypeCourse:
		assembleCourse(&sb, node)

	case models.TypeModule:
		writeSection(&sb, "Live Sessions", folderLines(filterChildren(node, models.TypeLiveSession)))
		writeSection(&sb, "Lessons", folderLines(plainChildren(node)))

	case models.TypeCaseStudies, models.TypeReadings, models.TypeResources:
		heading := map[models.IndexType]string{
			models.TypeCaseStudies: "Case Studies",
			models.TypeReadings:    "Readings",
			models.TypeResources:   "Resources",
		}[t]
		writeSection(&sb, heading, entryLines(allEntries(node)))

	case models.TypeLesson:
		assembleLesson(&sb, node)

	default:
		writeSection(&sb, t.ChildHeading(), folderLines(node.Children))
		groups := node.ByCategory()
		for _, cat := range models.CategoryOrder {
			writeSection(&sb, models.CategoryHeadings[cat], entryLines(groups[cat]))
		}
	}

	sb.WriteString("\n" + NavigationLine(node, parent) + "\n")
	return sb.String()
}

// assembleCourse writes the fixed course layout: classes first, then each
// name-filtered special group, every non-empty section followed by a
// horizontal rule.
func assembleCourse(sb *strings.Builder, node *models.DirectoryNode) {
	sections := []struct {
		heading string
		lines   []string
	}{
		{"Classes", folderLines(plainChildren(node))},
		{"Live Sessions", folderLines(filterChildren(node, models.TypeLiveSession))},
		{"Case Studies", folderLines(filterChildren(node, models.TypeCaseStudies))},
		{"Required Readings", folderLines(filterChildren(node, models.TypeReadings))},
		{"Resources", folderLines(filterChildren(node, models.TypeResources))},
	}
	for _, s := range sections {
		if len(s.lines) == 0 {
			continue
		}
		writeSection(sb, s.heading, s.lines)
		sb.WriteString("\n---\n")
	}
}

// assembleLesson writes the fixed lesson layout: readings, a merged videos
// and transcripts section, notes, then the remaining categories.
func assembleLesson(sb *strings.Builder, node *models.DirectoryNode) {
	groups := node.ByCategory()

	writeSection(sb, "Readings", entryLines(groups[models.CategoryReading]))

	av := append(append([]models.ContentEntry{}, groups[models.CategoryVideo]...), groups[models.CategoryTranscript]...)
	writeSection(sb, "Videos & Transcripts", entryLines(av))

	writeSection(sb, "Notes", entryLines(groups[models.CategoryNote]))

	for _, cat := range models.CategoryOrder {
		switch cat {
		case models.CategoryReading, models.CategoryVideo, models.CategoryTranscript, models.CategoryNote:
			continue
		}
		writeSection(sb, models.CategoryHeadings[cat], entryLines(groups[cat]))
	}
}

// writeSection emits one "## heading" block, skipping empty sections
// entirely.
func writeSection(sb *strings.Builder, heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	sb.WriteString("\n## " + heading + "\n\n")
	for _, line := range lines {
		sb.WriteString(line + "\n")
	}
}

// folderLines renders one listing line per subfolder, linking to its index
// document.
func folderLines(children []*models.DirectoryNode) []string {
	var lines []string
	for _, child := range children {
		link := EscapePath(child.Name + "/" + IndexFileName(child.Name))
		lines = append(lines, fmt.Sprintf("- %s [%s](%s)", folderIcon, FriendlyTitle(child.Name), link))
	}
	return lines
}

// entryLines renders one listing line per content entry: icon, linked
// friendly title, then tags.
func entryLines(entries []models.ContentEntry) []string {
	var lines []string
	for _, e := range entries {
		icon := models.CategoryIcons[e.Category]
		line := fmt.Sprintf("- %s [%s](%s)", icon, FriendlyTitle(e.Name), EscapePath(e.Name))
		if tags := ItemTags(e); len(tags) > 0 {
			line += " " + strings.Join(tags, " ")
		}
		lines = append(lines, line)
	}
	return lines
}

// plainChildren returns the subfolders whose names trigger no special type.
func plainChildren(node *models.DirectoryNode) []*models.DirectoryNode {
	var out []*models.DirectoryNode
	for _, child := range node.Children {
		if isSpecialName(child.Name) {
			continue
		}
		out = append(out, child)
	}
	return out
}

// filterChildren returns the subfolders matching one special type's naming
// keywords.
func filterChildren(node *models.DirectoryNode, t models.IndexType) []*models.DirectoryNode {
	var out []*models.DirectoryNode
	for _, child := range node.Children {
		if scan.MatchesTypeName(child.Name, t) {
			out = append(out, child)
		}
	}
	return out
}

func isSpecialName(name string) bool {
	for _, t := range []models.IndexType{models.TypeLiveSession, models.TypeCaseStudies, models.TypeReadings, models.TypeResources} {
		if scan.MatchesTypeName(name, t) {
			return true
		}
	}
	return false
}

// allEntries returns the node's classified entries in on-disk order,
// excluded files dropped.
func allEntries(node *models.DirectoryNode) []models.ContentEntry {
	var out []models.ContentEntry
	for _, e := range node.Entries {
		if e.Category == models.CategoryExcluded {
			continue
		}
		out = append(out, e)
	}
	return out
}
