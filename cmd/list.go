package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danielshue/notebook-automation/cmd/config"
	"github.com/danielshue/notebook-automation/pkg/catalog"
)

func NewListCmd(log *logrus.Logger) *cobra.Command {
	var (
		listType    string
		listProgram string
		listCourse  string
		listJSON    bool
		listLimit   int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List generated index documents",
		Aliases: []string{"ls"},
		Long: `List index documents recorded in the vault catalog.

Examples:
  na list                    # Most recently generated documents
  na list --type course      # Only course indexes
  na list --program "Mba"    # Filter by program`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := config.OpenCatalog()
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer cat.Close()

			docs, err := cat.List(&catalog.Options{
				Type:    listType,
				Program: listProgram,
				Course:  listCourse,
				Limit:   listLimit,
			})
			if err != nil {
				return fmt.Errorf("list documents: %w", err)
			}

			if listJSON {
				return outputJSON(docs)
			}
			printDocumentTable(docs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listType, "type", "t", "", "Filter by index type")
	cmd.Flags().StringVar(&listProgram, "program", "", "Filter by program")
	cmd.Flags().StringVar(&listCourse, "course", "", "Filter by course")
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&listLimit, "limit", 100, "Maximum number of results")

	return cmd
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printDocumentTable(docs []catalog.Document) {
	if len(docs) == 0 {
		fmt.Println("No documents found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tTITLE\tPROGRAM\tCOURSE\tLOCK\tPATH")
	for _, doc := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			doc.Type, doc.Title, doc.Program, doc.Course, doc.Lock, doc.Path)
	}
	w.Flush()
}
