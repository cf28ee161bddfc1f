package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danielshue/notebook-automation/cmd/config"
	"github.com/danielshue/notebook-automation/pkg/catalog"
)

func NewSearchCmd(log *logrus.Logger) *cobra.Command {
	var (
		searchType  string
		searchJSON  bool
		searchLimit int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search generated index documents",
		Long: `Full-text search over the vault catalog's titles and placement fields.

Examples:
  na search finance
  na search "roi analysis" --type lesson`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			cat, err := config.OpenCatalog()
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer cat.Close()

			docs, err := cat.Search(query, &catalog.Options{
				Type:  searchType,
				Limit: searchLimit,
			})
			if err != nil {
				return fmt.Errorf("search documents: %w", err)
			}

			if searchJSON {
				return outputJSON(docs)
			}
			printDocumentTable(docs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&searchType, "type", "t", "", "Filter by index type")
	cmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&searchLimit, "limit", 50, "Maximum number of results")

	return cmd
}
