package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/ygelfand/tocview/internal/commands"
	"github.com/ygelfand/tocview/internal/config"
	"github.com/ygelfand/tocview/internal/export"
	"github.com/ygelfand/tocview/internal/presenters"
	"github.com/ygelfand/tocview/internal/tableview"
	"github.com/ygelfand/tocview/internal/ui"
)

var (
	renderOut  string
	renderOpen bool
)

var renderCmd = &cobra.Command{
	Use:     "render",
	Short:   "Render the table of contents",
	GroupID: "output",
	Example: `  tocview render
  tocview render -o table
  tocview render --columns title,author --out toc.html --open`,
	RunE: commands.RunWithView(runRender),
}

func runRender(ctx context.Context, view *tableview.TableView, cmd *cobra.Command, args []string, opts *commands.TocviewOptions) error {
	p := &presenters.TablePresenter{View: view}
	if renderOut == "" && !renderOpen {
		return commands.Print(cmd.OutOrStdout(), p, opts)
	}

	if renderOpen && opts.OutputFormat != config.FormatHTML {
		return fmt.Errorf("--open requires html output, got %s", opts.OutputFormat)
	}

	data, err := commands.Render(p, opts)
	if err != nil {
		return err
	}

	path := renderOut
	if path == "" {
		path, err = export.TempFile("tocview-*.html", data)
	} else {
		err = export.WriteFile(path, data)
	}
	if err != nil {
		return err
	}
	slog.Debug("Render: wrote output", "path", path, "format", opts.OutputFormat)
	ui.RenderSuccess(fmt.Sprintf("Wrote %s", path))

	if renderOpen {
		return export.Open(path)
	}
	return nil
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "", "write output to this file instead of stdout")
	renderCmd.Flags().BoolVar(&renderOpen, "open", false, "open the rendered html in the default browser")
	rootCmd.AddCommand(renderCmd)
}
