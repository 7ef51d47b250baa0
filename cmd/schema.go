package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ygelfand/tocview/internal/commands"
	"github.com/ygelfand/tocview/internal/presenters"
)

var schemaCmd = &cobra.Command{
	Use:     "schema",
	Short:   "List the columns that will be rendered",
	GroupID: "output",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := commands.CurrentOptions()
		return commands.Print(cmd.OutOrStdout(), &presenters.SchemaPresenter{
			Schema: opts.ActiveSchema(),
		}, opts)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
