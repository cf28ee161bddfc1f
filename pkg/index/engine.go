package index

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/danielshue/notebook-automation/pkg/frontmatter"
	"github.com/danielshue/notebook-automation/pkg/models"
)

// Recorder receives the outcome of every applied document, written or not.
// The vault catalog implements it; tests use lighter fakes.
type Recorder interface {
	Record(doc Doc, lock models.LockState) error
}

// Summary is the per-run accounting reported to the user.
type Summary struct {
	Written       int
	SkippedLocked int
	Failed        int
}

// Applier is the side-effecting half of index generation. It lock-checks and
// writes the documents a Planner produced. One document failing never stops
// the rest of the run.
type Applier struct {
	Log      *logrus.Logger
	Recorder Recorder
	DryRun   bool
}

// Apply writes every planned document that is not locked and returns the run
// summary.
func (a *Applier) Apply(docs []Doc) Summary {
	var sum Summary
	for _, doc := range docs {
		lock := a.readLock(doc.Path)
		if lock == models.LockReadonly {
			sum.SkippedLocked++
			a.Log.WithField("path", doc.Path).Debug("document is readonly, skipping")
			a.record(doc, lock)
			continue
		}

		if !a.DryRun {
			if err := os.WriteFile(doc.Path, []byte(doc.Content), 0644); err != nil {
				sum.Failed++
				a.Log.WithError(err).WithField("path", doc.Path).Error("write index document")
				continue
			}
		}
		sum.Written++
		a.record(doc, lock)
	}
	return sum
}

// readLock inspects the existing document at path. A missing document or an
// unparseable metadata block both mean the write may proceed.
func (a *Applier) readLock(path string) models.LockState {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.LockWritable
	}
	block, _, err := frontmatter.Parse(string(content))
	if err != nil {
		a.Log.WithError(err).WithField("path", path).Warn("malformed metadata block, treating as writable")
		return models.LockWritable
	}
	if block == nil {
		return models.LockWritable
	}
	return block.Lock()
}

func (a *Applier) record(doc Doc, lock models.LockState) {
	if a.Recorder == nil {
		return
	}
	if err := a.Recorder.Record(doc, lock); err != nil {
		a.Log.WithError(err).WithField("path", doc.Path).Warn("record document in catalog")
	}
}

// String renders the summary in plain form, for logs and tests.
func (s Summary) String() string {
	return fmt.Sprintf("written=%d locked=%d failed=%d", s.Written, s.SkippedLocked, s.Failed)
}
