package index

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/danielshue/notebook-automation/pkg/models"
)

// Breadcrumb links a directory's index document to its parent's and
// children's index documents.
type Breadcrumb struct {
	Up   string
	Down []string
}

// IndexFileName returns the deterministic index document name for a
// directory. The document is the directory's folder note: it lives inside
// the directory and shares its name.
func IndexFileName(dirName string) string {
	return dirName + ".md"
}

// BuildBreadcrumb computes the up/down links for a node. Up is empty at the
// scan root. Down is sorted so regeneration is deterministic.
func BuildBreadcrumb(node *models.DirectoryNode, parent *models.DirectoryNode) Breadcrumb {
	bc := Breadcrumb{}
	if parent != nil {
		bc.Up = "../" + IndexFileName(parent.Name)
	}
	for _, child := range node.Children {
		bc.Down = append(bc.Down, child.Name+"/"+IndexFileName(child.Name))
	}
	sort.Strings(bc.Down)
	return bc
}

// backLabels picks the "back to <parent-level> index" label by the current
// directory's depth. Index 0 is unused: the root has nothing above it.
var backLabels = []string{
	"",
	"Back to Main Index",
	"Back to Program Index",
	"Back to Course Index",
	"Back to Class Index",
	"Back to Module Index",
}

// BackLabel returns the navigation label for a directory at the given depth,
// or "" at the root.
func BackLabel(depth int) string {
	if depth <= 0 {
		return ""
	}
	if depth < len(backLabels) {
		return backLabels[depth]
	}
	return "Back to Lesson Index"
}

// NavigationLine renders the human-facing navigation footer: a back link to
// the parent index (omitted at the root) followed by the three global
// shortcuts.
func NavigationLine(node *models.DirectoryNode, parent *models.DirectoryNode) string {
	parts := []string{}
	if parent != nil {
		up := "../" + IndexFileName(parent.Name)
		parts = append(parts, fmt.Sprintf("🔙 [%s](%s)", BackLabel(node.Depth), EscapePath(up)))
	}
	parts = append(parts,
		"🏠 [[Home]]",
		"📊 [[Dashboard]]",
		"📝 [[Assignments]]",
	)
	return strings.Join(parts, " | ")
}

// EscapePath URL-escapes each segment of a relative link target, leaving the
// separators alone.
func EscapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg == ".." || seg == "." {
			continue
		}
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
