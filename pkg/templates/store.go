package templates

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielshue/notebook-automation/pkg/frontmatter"
	"github.com/danielshue/notebook-automation/pkg/models"
)

// Template is the metadata seed for one index type. Its block is read-only;
// builders clone it before filling in computed fields.
type Template struct {
	Type   models.IndexType
	Fields *frontmatter.Block
}

// Store holds every loaded template for the duration of a run. It is built
// once at startup and passed explicitly to the components that need it.
type Store struct {
	byType map[models.IndexType]Template
}

// Get returns the template for an index type.
func (s *Store) Get(t models.IndexType) (Template, bool) {
	tmpl, ok := s.byType[t]
	return tmpl, ok
}

// Len returns the number of loaded templates.
func (s *Store) Len() int {
	return len(s.byType)
}

// Types returns the index types that have a template, in hierarchy order.
func (s *Store) Types() []models.IndexType {
	var out []models.IndexType
	for _, t := range models.AllIndexTypes {
		if _, ok := s.byType[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Load reads the template store. With an empty path the built-in defaults are
// used; with a path, file templates are layered over the defaults so a config
// only needs to override the types it cares about. A store that ends up empty
// is a fatal condition for the whole run.
func Load(path string) (*Store, error) {
	store := &Store{byType: builtinTemplates()}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read template file: %w", err)
		}
		if err := store.mergeYAML(data); err != nil {
			return nil, fmt.Errorf("parse template file %s: %w", path, err)
		}
	}

	if store.Len() == 0 {
		return nil, fmt.Errorf("no templates loaded")
	}
	return store, nil
}

// mergeYAML layers templates from a YAML document into the store. The
// document maps index-type names to ordered field maps:
//
//	templates:
//	  course:
//	    template-type: course-index
//	    banner: "![[banner-course.png]]"
func (s *Store) mergeYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("template file is not a mapping")
	}

	// Accept both a top-level "templates:" key and a bare type mapping.
	typeMap := root
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "templates" {
			typeMap = root.Content[i+1]
			break
		}
	}
	if typeMap.Kind != yaml.MappingNode {
		return fmt.Errorf("templates section is not a mapping")
	}

	for i := 0; i+1 < len(typeMap.Content); i += 2 {
		name := models.IndexType(typeMap.Content[i].Value)
		if !name.Valid() {
			return fmt.Errorf("unknown index type in template file: %q", name)
		}
		fields, err := blockFromNode(typeMap.Content[i+1])
		if err != nil {
			return fmt.Errorf("template %q: %w", name, err)
		}
		s.byType[name] = Template{Type: name, Fields: fields}
	}
	return nil
}

func blockFromNode(node *yaml.Node) (*frontmatter.Block, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("template body is not a mapping")
	}
	b := frontmatter.NewBlock()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch val.Kind {
		case yaml.SequenceNode:
			items := make([]string, 0, len(val.Content))
			for _, item := range val.Content {
				items = append(items, item.Value)
			}
			b.SetList(key.Value, items)
		default:
			b.Set(key.Value, val.Value)
		}
	}
	return b, nil
}
