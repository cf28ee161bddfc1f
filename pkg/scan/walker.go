package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danielshue/notebook-automation/pkg/models"
)

// TemplateFolderName is the reserved folder holding document templates. It is
// never traversed.
const TemplateFolderName = "templates"

// ExcludeFunc decides whether a directory or file entry is invisible to the
// scan. Excluding a directory prunes its whole subtree.
type ExcludeFunc func(name string) bool

// DefaultExclude hides dot-prefixed and underscore-prefixed entries and the
// reserved template folder.
func DefaultExclude(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	return strings.EqualFold(name, TemplateFolderName)
}

// Walk reads the tree rooted at root into DirectoryNodes using an explicit
// stack. Entry classification happens during the walk so downstream
// components never touch the filesystem.
func Walk(root string, exclude ExcludeFunc) (*models.DirectoryNode, error) {
	if exclude == nil {
		exclude = DefaultExclude
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root is not a directory: %s", root)
	}

	rootNode := &models.DirectoryNode{
		Path:  filepath.Clean(root),
		Name:  filepath.Base(filepath.Clean(root)),
		Depth: 0,
	}

	stack := []*models.DirectoryNode{rootNode}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(node.Path)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", node.Path, err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

		for _, entry := range entries {
			if exclude(entry.Name()) {
				continue
			}
			if entry.IsDir() {
				child := &models.DirectoryNode{
					Path:  filepath.Join(node.Path, entry.Name()),
					Name:  entry.Name(),
					Depth: node.Depth + 1,
				}
				node.Children = append(node.Children, child)
				continue
			}
			node.Entries = append(node.Entries, models.ContentEntry{
				Path:     filepath.Join(node.Path, entry.Name()),
				Name:     entry.Name(),
				Ext:      strings.ToLower(filepath.Ext(entry.Name())),
				Category: Classify(node.Name, entry.Name()),
			})
		}

		// Children were appended in sorted order; push in reverse so the
		// traversal visits them in that order.
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}

	return rootNode, nil
}

// Flatten returns the tree as a depth-first pre-order slice.
func Flatten(root *models.DirectoryNode) []*models.DirectoryNode {
	if root == nil {
		return nil
	}
	var out []*models.DirectoryNode
	stack := []*models.DirectoryNode{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, node)
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
	return out
}
