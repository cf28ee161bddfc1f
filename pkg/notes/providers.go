package notes

// The engine never talks to a network itself. Share links, summaries, and
// format conversion come from collaborators behind these seams; the defaults
// are inert so the pipeline works offline.

// ShareLinkProvider supplies a shareable URL for a source item, or "" when
// none is available.
type ShareLinkProvider interface {
	ShareLink(path string) (string, error)
}

// Summarizer supplies markdown summary text for a source item.
type Summarizer interface {
	Summarize(path string) (string, error)
}

// MarkdownConverter supplies a markdown rendition of a source document.
type MarkdownConverter interface {
	Convert(path string) (string, error)
}

// NoopShareLink is the default ShareLinkProvider; it supplies no link.
type NoopShareLink struct{}

func (NoopShareLink) ShareLink(string) (string, error) { return "", nil }

// NoopSummarizer is the default Summarizer; it supplies no summary.
type NoopSummarizer struct{}

func (NoopSummarizer) Summarize(string) (string, error) { return "", nil }

// NoopConverter is the default MarkdownConverter; it supplies no conversion.
type NoopConverter struct{}

func (NoopConverter) Convert(string) (string, error) { return "", nil }
