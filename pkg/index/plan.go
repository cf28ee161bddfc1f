package index

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/danielshue/notebook-automation/pkg/frontmatter"
	"github.com/danielshue/notebook-automation/pkg/models"
	"github.com/danielshue/notebook-automation/pkg/scan"
	"github.com/danielshue/notebook-automation/pkg/templates"
)

// Doc is one planned index document: the computed content for a directory
// plus where it goes. Plans are built fully in memory; nothing touches disk
// until the apply phase.
type Doc struct {
	Dir     string
	Path    string
	Type    models.IndexType
	Title   string
	Context models.Context
	Content string
}

// Planner runs the pure compute phase of index generation. When Types is
// non-empty only directories of those types are planned; filtered-out
// directories get no document and no lock check later.
type Planner struct {
	Store *templates.Store
	Types []models.IndexType
	Log   *logrus.Logger
}

// Plan walks the scanned tree and produces the documents to write, in
// traversal order.
func (p *Planner) Plan(root *models.DirectoryNode) []Doc {
	mb := &MetadataBuilder{Store: p.Store, Log: p.Log}

	var docs []Doc
	type frame struct {
		node   *models.DirectoryNode
		parent *models.DirectoryNode
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := scan.ClassifyLevel(f.node.Depth, f.node.Name)
		if p.wants(t) {
			ctx := scan.InferContext(f.node.Path, t)
			block := mb.Build(f.node, f.parent, t, ctx)
			body := AssembleBody(f.node, f.parent, t)
			docs = append(docs, Doc{
				Dir:     f.node.Path,
				Path:    filepath.Join(f.node.Path, IndexFileName(f.node.Name)),
				Type:    t,
				Title:   block.Get(frontmatter.KeyTitle),
				Context: ctx,
				Content: frontmatter.BuildContent(block, body),
			})
		}

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], parent: f.node})
		}
	}
	return docs
}

func (p *Planner) wants(t models.IndexType) bool {
	if len(p.Types) == 0 {
		return true
	}
	for _, want := range p.Types {
		if want == t {
			return true
		}
	}
	return false
}
