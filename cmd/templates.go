package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danielshue/notebook-automation/cmd/config"
)

func NewTemplatesCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the loaded index templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.LoadTemplates()
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tFIELDS")
			for _, t := range store.Types() {
				tmpl, _ := store.Get(t)
				fmt.Fprintf(w, "%s\t%d\n", t, len(tmpl.Fields.Keys()))
			}
			return w.Flush()
		},
	}

	return cmd
}
