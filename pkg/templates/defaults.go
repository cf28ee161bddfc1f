package templates

import (
	"github.com/danielshue/notebook-automation/pkg/frontmatter"
	"github.com/danielshue/notebook-automation/pkg/models"
)

// builtinTemplates returns the default template per index type. A template
// file layered on top can override any of these.
func builtinTemplates() map[models.IndexType]Template {
	out := make(map[models.IndexType]Template, len(models.AllIndexTypes))
	for _, t := range models.AllIndexTypes {
		b := frontmatter.NewBlock()
		b.Set(frontmatter.KeyType, string(t)+"-index")
		b.Set(frontmatter.KeyAutoState, string(models.LockWritable))
		b.Set(frontmatter.KeyBanner, bannerFor(t))
		out[t] = Template{Type: t, Fields: b}
	}
	return out
}

func bannerFor(t models.IndexType) string {
	switch t {
	case models.TypeMain:
		return "![[banner-vault.png]]"
	case models.TypeProgram:
		return "![[banner-program.png]]"
	case models.TypeCourse:
		return "![[banner-course.png]]"
	default:
		return "![[banner-default.png]]"
	}
}
