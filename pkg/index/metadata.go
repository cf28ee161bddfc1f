package index

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/danielshue/notebook-automation/pkg/frontmatter"
	"github.com/danielshue/notebook-automation/pkg/models"
	"github.com/danielshue/notebook-automation/pkg/templates"
)

// MetadataBuilder produces the metadata block for a directory's index
// document. The template store is read-only; every build works on a clone.
type MetadataBuilder struct {
	Store *templates.Store
	Log   *logrus.Logger
}

// Build assembles the metadata block for one directory.
func (mb *MetadataBuilder) Build(node *models.DirectoryNode, parent *models.DirectoryNode, t models.IndexType, ctx models.Context) *frontmatter.Block {
	var block *frontmatter.Block
	if tmpl, ok := mb.Store.Get(t); ok {
		block = tmpl.Fields.Clone()
	} else {
		if mb.Log != nil {
			mb.Log.WithFields(logrus.Fields{"type": t, "dir": node.Path}).
				Warn("no template for index type, synthesizing fallback")
		}
		block = fallbackTemplate(t)
	}

	block.Set(frontmatter.KeyTitle, FriendlyTitle(node.Name))
	if !block.Has(frontmatter.KeyType) {
		block.Set(frontmatter.KeyType, string(t)+"-index")
	}
	if !block.Has(frontmatter.KeyAutoState) {
		block.Set(frontmatter.KeyAutoState, string(models.LockWritable))
	}

	// Program and course placement is meaningless at the top two levels.
	if t != models.TypeMain && t != models.TypeProgram {
		block.Set(frontmatter.KeyProgram, ctx.Program)
		block.Set(frontmatter.KeyCourse, ctx.Course)
	}

	if t == models.TypeLesson {
		block.Set(frontmatter.KeyStatus, "unstarted")
		block.Set(frontmatter.KeyCompletion, "")
	}

	bc := BuildBreadcrumb(node, parent)
	if bc.Up != "" {
		block.Set(frontmatter.KeyUp, bc.Up)
	}
	if len(bc.Down) > 0 {
		block.SetList(frontmatter.KeyDown, bc.Down)
	}

	block.SetList(frontmatter.KeyTags, bareTags(TypeTags(t)))
	return block
}

// fallbackTemplate synthesizes the minimal metadata block used when the
// store has no template for a type.
func fallbackTemplate(t models.IndexType) *frontmatter.Block {
	b := frontmatter.NewBlock()
	b.Set(frontmatter.KeyTitle, "")
	b.Set(frontmatter.KeyType, string(t)+"-index")
	b.Set(frontmatter.KeyAutoState, string(models.LockWritable))
	return b
}

// bareTags strips the inline # marker; frontmatter tag lists carry bare
// names.
func bareTags(tags []string) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = strings.TrimPrefix(tag, "#")
	}
	return out
}
