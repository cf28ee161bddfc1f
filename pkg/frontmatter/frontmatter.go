package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielshue/notebook-automation/pkg/models"
)

// Well-known metadata keys used across generated documents.
const (
	KeyTitle     = "title"
	KeyType      = "template-type"
	KeyAutoState = "auto-generated-state"
	KeyProgram   = "program"
	KeyCourse    = "course"
	KeyBanner    = "banner"
	KeyCreated   = "date-created"
	KeyTags      = "tags"
	KeyUp        = "up"
	KeyDown      = "down"

	// Progress-tracking keys on per-item reference notes.
	KeyStatus        = "status"
	KeyCompletion    = "completion-date"
	KeyReview        = "review-date"
	KeyComprehension = "comprehension"
)

// Block is an ordered metadata block. Keys keep their insertion order so that
// Build emits byte-identical output for identical input, which is what makes
// regeneration idempotent.
type Block struct {
	keys   []string
	values map[string]any // string or []string
}

// NewBlock returns an empty metadata block.
func NewBlock() *Block {
	return &Block{values: make(map[string]any)}
}

// Set stores a scalar field, appending the key on first use.
func (b *Block) Set(key, value string) {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
}

// SetList stores a list field, appending the key on first use.
func (b *Block) SetList(key string, values []string) {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = values
}

// Get returns the scalar value for key, or "" when absent or non-scalar.
func (b *Block) Get(key string) string {
	if v, ok := b.values[key].(string); ok {
		return v
	}
	return ""
}

// GetList returns the list value for key, or nil when absent or scalar.
func (b *Block) GetList(key string) []string {
	if v, ok := b.values[key].([]string); ok {
		return v
	}
	return nil
}

// Has reports whether key is present.
func (b *Block) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

// Keys returns the field keys in emission order.
func (b *Block) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Clone returns a deep copy. Builders operate on copies so that shared
// templates are never mutated.
func (b *Block) Clone() *Block {
	c := NewBlock()
	for _, k := range b.keys {
		switch v := b.values[k].(type) {
		case []string:
			c.SetList(k, append([]string(nil), v...))
		case string:
			c.Set(k, v)
		}
	}
	return c
}

// Lock returns the block's lock state. A missing or unrecognized
// auto-generated-state field means Writable.
func (b *Block) Lock() models.LockState {
	if strings.EqualFold(b.Get(KeyAutoState), string(models.LockReadonly)) {
		return models.LockReadonly
	}
	return models.LockWritable
}

// Parse splits a document into its metadata block and body. A document
// without a leading block yields a nil Block and the content unchanged; a
// malformed block yields an error so callers can decide how to degrade.
func Parse(content string) (*Block, string, error) {
	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return nil, content, nil
	}
	raw, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		if trimmed, closed := strings.CutSuffix(rest, "\n---"); closed {
			raw, body = trimmed, ""
		} else {
			return nil, content, fmt.Errorf("unterminated metadata block")
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, content, fmt.Errorf("parse metadata block: %w", err)
	}
	if len(doc.Content) == 0 {
		return NewBlock(), body, nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, content, fmt.Errorf("metadata block is not a mapping")
	}

	b := NewBlock()
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valNode := mapping.Content[i], mapping.Content[i+1]
		switch valNode.Kind {
		case yaml.SequenceNode:
			items := make([]string, 0, len(valNode.Content))
			for _, item := range valNode.Content {
				items = append(items, item.Value)
			}
			b.SetList(keyNode.Value, items)
		default:
			b.Set(keyNode.Value, valNode.Value)
		}
	}
	return b, body, nil
}

// Build renders the metadata block, fields in insertion order.
func Build(b *Block) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	for _, k := range b.keys {
		switch v := b.values[k].(type) {
		case []string:
			sb.WriteString(fmt.Sprintf("%s: %s\n", k, formatYAMLArray(v)))
		case string:
			sb.WriteString(fmt.Sprintf("%s: %s\n", k, quoteIfNeeded(v)))
		}
	}
	sb.WriteString("---")
	return sb.String()
}

// BuildContent combines a metadata block and body into a complete document.
func BuildContent(b *Block, body string) string {
	block := Build(b)
	if !strings.HasPrefix(body, "\n") {
		return block + "\n\n" + body
	}
	return block + "\n" + body
}

// formatYAMLArray renders a string slice as a YAML flow-style array.
func formatYAMLArray(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quoteIfNeeded(item)
	}
	return fmt.Sprintf("[%s]", strings.Join(quoted, ", "))
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, ":[]{}\"'") || strings.HasPrefix(s, "#") || strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// MergeTags combines tag sources and removes duplicates, keeping first-seen
// order.
func MergeTags(sources ...[]string) []string {
	seen := make(map[string]bool)
	result := []string{}
	for _, tags := range sources {
		for _, tag := range tags {
			if tag != "" && !seen[tag] {
				seen[tag] = true
				result = append(result, tag)
			}
		}
	}
	return result
}
