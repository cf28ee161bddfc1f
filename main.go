package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danielshue/notebook-automation/cmd"
	"github.com/danielshue/notebook-automation/cmd/config"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	rootCmd := &cobra.Command{
		Use:   "na",
		Short: "Generate and maintain an Obsidian-style vault from a course content tree",
		Long: `na mirrors a hierarchical tree of educational materials (videos, PDFs,
transcripts, notes) into a navigable markdown vault: one index document per
directory, one reference note per content item, with lock-respecting
regeneration throughout.`,
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if verbose, _ := c.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	config.AddGlobalFlags(rootCmd)
	cobra.OnInitialize(config.InitConfig)

	rootCmd.AddCommand(cmd.NewGenerateCmd(logger))
	rootCmd.AddCommand(cmd.NewNoteCmd(logger))
	rootCmd.AddCommand(cmd.NewListCmd(logger))
	rootCmd.AddCommand(cmd.NewSearchCmd(logger))
	rootCmd.AddCommand(cmd.NewTemplatesCmd(logger))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
