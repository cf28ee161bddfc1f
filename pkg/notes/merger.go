package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danielshue/notebook-automation/pkg/frontmatter"
	"github.com/danielshue/notebook-automation/pkg/index"
	"github.com/danielshue/notebook-automation/pkg/models"
)

// PreservedHeading marks the user-editable region at the tail of a reference
// note. Everything above it is regenerated; everything from the heading on is
// carried over verbatim.
const PreservedHeading = "## Notes"

// progressKeys are the fields a user fills in over time. Regeneration keeps
// a non-empty value and resets an empty one to its default.
var progressKeys = []struct {
	key string
	def string
}{
	{frontmatter.KeyStatus, "unstarted"},
	{frontmatter.KeyCompletion, ""},
	{frontmatter.KeyReview, ""},
	{frontmatter.KeyComprehension, ""},
}

// SourceItem is one content file a reference note is generated for.
type SourceItem struct {
	Path     string
	Name     string
	Category models.ContentCategory
	Program  string
	Course   string
}

// Merger regenerates per-item reference notes while preserving the user's
// trailing notes region and progress fields.
type Merger struct {
	Share     ShareLinkProvider
	Summarize Summarizer
	Convert   MarkdownConverter
	Log       *logrus.Logger
	Now       func() time.Time
}

// NewMerger returns a Merger with inert providers.
func NewMerger(log *logrus.Logger) *Merger {
	return &Merger{
		Share:     NoopShareLink{},
		Summarize: NoopSummarizer{},
		Convert:   NoopConverter{},
		Log:       log,
		Now:       time.Now,
	}
}

// Regenerate produces the new document content for item, merging in the
// preserved parts of existing. An existing document that fails to parse is
// treated as absent; regeneration never aborts on it.
func (m *Merger) Regenerate(existing string, item SourceItem) (string, error) {
	var prevBlock *frontmatter.Block
	prevBody := ""
	if existing != "" {
		block, body, err := frontmatter.Parse(existing)
		if err != nil {
			if m.Log != nil {
				m.Log.WithError(err).WithField("path", item.Path).
					Warn("existing note is malformed, regenerating from scratch")
			}
		} else {
			prevBlock, prevBody = block, body
		}
	}

	block := m.buildMetadata(item, prevBlock)
	body, err := m.buildBody(item, prevBody)
	if err != nil {
		return "", err
	}
	return frontmatter.BuildContent(block, body), nil
}

func (m *Merger) buildMetadata(item SourceItem, prev *frontmatter.Block) *frontmatter.Block {
	b := frontmatter.NewBlock()
	b.Set(frontmatter.KeyTitle, index.FriendlyTitle(item.Name))
	b.Set(frontmatter.KeyType, string(item.Category)+"-reference")

	state := string(models.LockWritable)
	if prev != nil && prev.Get(frontmatter.KeyAutoState) != "" {
		state = prev.Get(frontmatter.KeyAutoState)
	}
	b.Set(frontmatter.KeyAutoState, state)

	created := m.Now().Format("2006-01-02")
	if prev != nil && prev.Get(frontmatter.KeyCreated) != "" {
		created = prev.Get(frontmatter.KeyCreated)
	}
	b.Set(frontmatter.KeyCreated, created)

	if item.Program != "" {
		b.Set(frontmatter.KeyProgram, item.Program)
	}
	if item.Course != "" {
		b.Set(frontmatter.KeyCourse, item.Course)
	}

	for _, p := range progressKeys {
		value := p.def
		if prev != nil && prev.Get(p.key) != "" {
			value = prev.Get(p.key)
		}
		b.Set(p.key, value)
	}

	tags := []string{strings.TrimPrefix(index.CategoryTag(item.Category), "#")}
	for _, tag := range index.CognitiveTags(item.Name) {
		tags = append(tags, strings.TrimPrefix(tag, "#"))
	}
	b.SetList(frontmatter.KeyTags, frontmatter.MergeTags(tags))
	return b
}

func (m *Merger) buildBody(item SourceItem, prevBody string) (string, error) {
	var sb strings.Builder
	sb.WriteString("# " + index.FriendlyTitle(item.Name) + "\n")

	summary, err := m.Summarize.Summarize(item.Path)
	if err != nil {
		return "", fmt.Errorf("summarize %s: %w", item.Path, err)
	}
	if summary == "" {
		summary = "*No summary available.*"
	}
	sb.WriteString("\n## Summary\n\n" + strings.TrimRight(summary, "\n") + "\n")

	var contentLines []string
	icon := models.CategoryIcons[item.Category]
	contentLines = append(contentLines,
		fmt.Sprintf("- %s [%s](%s)", icon, index.FriendlyTitle(item.Name), index.EscapePath(item.Name)))

	link, err := m.Share.ShareLink(item.Path)
	if err != nil {
		return "", fmt.Errorf("share link for %s: %w", item.Path, err)
	}
	if link != "" {
		contentLines = append(contentLines, fmt.Sprintf("- 🔗 [Shared copy](%s)", link))
	}
	sb.WriteString("\n## Content\n\n" + strings.Join(contentLines, "\n") + "\n")

	converted, err := m.Convert.Convert(item.Path)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", item.Path, err)
	}
	if converted != "" {
		sb.WriteString("\n## Document\n\n" + strings.TrimRight(converted, "\n") + "\n")
	}

	preserved, found := ExtractPreserved(prevBody)
	if !found {
		preserved = PreservedHeading + "\n\n"
	}
	sb.WriteString("\n" + preserved)
	return sb.String(), nil
}

// ExtractPreserved returns the preserved region of a note body, from its
// heading marker to the end, verbatim.
func ExtractPreserved(body string) (string, bool) {
	if strings.HasPrefix(body, PreservedHeading+"\n") || body == PreservedHeading {
		return body, true
	}
	if i := strings.Index(body, "\n"+PreservedHeading); i >= 0 {
		return body[i+1:], true
	}
	return "", false
}
