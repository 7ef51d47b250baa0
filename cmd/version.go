package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ygelfand/tocview/internal/commands"
	"github.com/ygelfand/tocview/internal/config"
	"github.com/ygelfand/tocview/internal/presenters"
)

type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := commands.CurrentOptions()
		// the default html format has nothing to render, keep the plain string
		if opts.OutputFormat == config.FormatHTML {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.FullVersion())
			return err
		}

		return commands.Print(cmd.OutOrStdout(), presenters.SimplePresenter{
			T: "tocview",
			H: []string{"VERSION", "COMMIT", "DATE"},
			R: [][]string{{config.Version, config.GitCommit, config.BuildDate}},
			RawData: versionInfo{
				Version:   config.Version,
				GitCommit: config.GitCommit,
				BuildDate: config.BuildDate,
			},
		}, opts)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
