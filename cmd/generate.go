package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danielshue/notebook-automation/cmd/config"
	"github.com/danielshue/notebook-automation/pkg/catalog"
	"github.com/danielshue/notebook-automation/pkg/index"
	"github.com/danielshue/notebook-automation/pkg/models"
	"github.com/danielshue/notebook-automation/pkg/scan"
)

func NewGenerateCmd(log *logrus.Logger) *cobra.Command {
	var (
		typeFilters []string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "generate [root]",
		Short: "Generate index documents for a content tree",
		Long: `Scan a content tree and generate one index document per directory.

Generation runs in two phases: a pure planning phase that classifies every
directory and computes its document in memory, and an apply phase that
lock-checks existing documents and writes the rest. A document whose
auto-generated-state is readonly is never touched.

Examples:
  na generate                       # Generate for the configured vault root
  na generate ~/vault/mba           # Generate for an explicit root
  na generate --type course         # Only regenerate course indexes
  na generate --type module --type lesson --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.VaultRoot()
			if len(args) == 1 {
				root = args[0]
			}

			filter, err := parseTypeFilters(typeFilters)
			if err != nil {
				return err
			}

			store, err := config.LoadTemplates()
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}

			tree, err := scan.Walk(root, scan.DefaultExclude)
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}

			planner := &index.Planner{Store: store, Types: filter, Log: log}
			plan := planner.Plan(tree)
			log.WithFields(logrus.Fields{"root": root, "documents": len(plan)}).Debug("plan computed")

			if dryRun {
				for _, doc := range plan {
					fmt.Printf("%-14s %s\n", doc.Type, doc.Path)
				}
				fmt.Printf("\n%d documents planned (dry run, nothing written)\n", len(plan))
				return nil
			}

			cat, err := config.OpenCatalog()
			if err != nil {
				// The catalog is supporting infrastructure; generation
				// proceeds without it.
				log.WithError(err).Warn("open catalog, continuing without")
				cat = nil
			}
			if cat != nil {
				defer cat.Close()
			}

			applier := &index.Applier{Log: log, Recorder: catalogRecorder(cat)}
			summary := applier.Apply(plan)

			printSummary(summary)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&typeFilters, "type", "t", nil, "Only generate for these index types (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without writing anything")

	return cmd
}

func parseTypeFilters(raw []string) ([]models.IndexType, error) {
	var filter []models.IndexType
	for _, s := range raw {
		t := models.IndexType(s)
		if !t.Valid() {
			return nil, fmt.Errorf("unknown index type %q (valid: %v)", s, models.AllIndexTypes)
		}
		filter = append(filter, t)
	}
	return filter, nil
}

// catalogRecorder adapts the catalog to the applier's Recorder seam. A nil
// catalog yields a nil Recorder, which the applier ignores.
func catalogRecorder(cat *catalog.Catalog) index.Recorder {
	if cat == nil {
		return nil
	}
	return recorderFunc(func(doc index.Doc, lock models.LockState) error {
		return cat.Record(catalog.Document{
			Path:        doc.Path,
			Type:        string(doc.Type),
			Title:       doc.Title,
			Program:     doc.Context.Program,
			Course:      doc.Context.Course,
			Lock:        string(lock),
			GeneratedAt: time.Now(),
		})
	})
}

type recorderFunc func(index.Doc, models.LockState) error

func (f recorderFunc) Record(doc index.Doc, lock models.LockState) error {
	return f(doc, lock)
}
