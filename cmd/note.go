package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danielshue/notebook-automation/pkg/frontmatter"
	"github.com/danielshue/notebook-automation/pkg/index"
	"github.com/danielshue/notebook-automation/pkg/models"
	"github.com/danielshue/notebook-automation/pkg/notes"
	"github.com/danielshue/notebook-automation/pkg/scan"
)

func NewNoteCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage per-item reference notes",
	}

	cmd.AddCommand(newNoteRefreshCmd(log))

	return cmd
}

func newNoteRefreshCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh <file>...",
		Short: "Regenerate reference notes for source files",
		Long: `Regenerate the reference note for one or more source content files.

Each source file gets a companion note next to it, named <stem>-notes.md.
Regeneration rebuilds the metadata and generated sections while keeping the
trailing "## Notes" region and any progress fields the user has filled in.
A note marked readonly is skipped entirely.

Examples:
  na note refresh lesson-video.mp4
  na note refresh readings/*.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merger := notes.NewMerger(log)

			var summary index.Summary
			for _, src := range args {
				written, err := refreshNote(merger, log, src)
				switch {
				case err != nil:
					summary.Failed++
					log.WithError(err).WithField("source", src).Error("refresh note")
				case written:
					summary.Written++
				default:
					summary.SkippedLocked++
				}
			}

			printSummary(summary)
			return nil
		},
	}

	return cmd
}

// refreshNote regenerates the companion note for one source file. It
// returns false with no error when the existing note is readonly.
func refreshNote(merger *notes.Merger, log *logrus.Logger, src string) (bool, error) {
	if _, err := os.Stat(src); err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}

	dir := filepath.Dir(src)
	name := filepath.Base(src)
	category := scan.Classify(filepath.Base(dir), name)
	if category == models.CategoryExcluded {
		return false, fmt.Errorf("source is not classifiable content")
	}

	ctx := scan.InferContext(dir, models.TypeLesson)
	item := notes.SourceItem{
		Path:     src,
		Name:     name,
		Category: category,
		Program:  ctx.Program,
		Course:   ctx.Course,
	}

	target := notePath(src)
	existing := ""
	if data, err := os.ReadFile(target); err == nil {
		existing = string(data)
		if block, _, err := frontmatter.Parse(existing); err == nil && block != nil && block.Lock() == models.LockReadonly {
			log.WithField("path", target).Debug("note is readonly, skipping")
			return false, nil
		}
	}

	content, err := merger.Regenerate(existing, item)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// notePath returns the companion note path for a source file. The -notes
// suffix keeps the note classified as a note rather than a reading.
func notePath(src string) string {
	stem := strings.TrimSuffix(src, filepath.Ext(src))
	return stem + "-notes.md"
}
