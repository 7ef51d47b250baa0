package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/ygelfand/tocview/internal/catalog"
	"github.com/ygelfand/tocview/internal/config"
	"github.com/ygelfand/tocview/internal/presenters"
	"github.com/ygelfand/tocview/internal/tableview"
	"github.com/ygelfand/tocview/internal/ui"
	"golang.org/x/net/html"
)

// RunnerFunc defines the signature for a command handler that receives a table view
type RunnerFunc func(ctx context.Context, view *tableview.TableView, cmd *cobra.Command, args []string, opts *TocviewOptions) error

// CurrentOptions builds options from the loaded configuration
func CurrentOptions() *TocviewOptions {
	cfg := config.Get()
	return &TocviewOptions{
		OutputFormat: cfg.OutputFormat,
		Verbosity:    cfg.Verbosity,
		Columns:      cfg.Columns,
		TableClass:   cfg.TableClass,
		HeadClass:    cfg.HeadClass,
	}
}

// ActiveSchema returns the configured column override, or the default schema
func (o *TocviewOptions) ActiveSchema() catalog.Schema {
	if s := catalog.ParseSchema(o.Columns); len(s) > 0 {
		return s
	}
	return catalog.DefaultSchema()
}

// NewView builds an unmounted table view for the given options, logging any
// schema/record inconsistencies. Inconsistencies never block rendering.
func NewView(opts *TocviewOptions) *tableview.TableView {
	schema := opts.ActiveSchema()
	for _, issue := range catalog.Lint(schema, catalog.Database()) {
		slog.Warn("Catalog: "+issue.Detail, "kind", issue.Kind)
	}

	slog.Debug("TableView: created", "columns", len(schema))
	return tableview.New(schema, catalog.Database,
		tableview.WithTableClass(opts.TableClass),
		tableview.WithHeadClass(opts.HeadClass),
		tableview.WithRenderHook(func(state tableview.State, _ *html.Node) {
			slog.Log(context.Background(), config.LevelTrace, "TableView: rendered", "state", state)
		}),
	)
}

// RunWithView wraps a cobra command RunE function to inject a table view
func RunWithView(runner RunnerFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		opts := CurrentOptions()
		return runner(cmd.Context(), NewView(opts), cmd, args, opts)
	}
}

// Print formats and prints data using the provided Presenter
func Print(w io.Writer, p presenters.Presenter, opts *TocviewOptions) error {
	data := ui.OutputData{
		Title:   p.Title(),
		Headers: p.Headers(),
		Rows:    p.Rows(),
		Raw:     p.Raw(),
	}
	if mp, ok := p.(presenters.MarkupPresenter); ok {
		data.HTML = mp.Markup()
	}

	return data.Write(w, opts.OutputFormat)
}

// Render formats the presenter into memory, for callers that write files
func Render(p presenters.Presenter, opts *TocviewOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Print(&buf, p, opts); err != nil {
		return nil, fmt.Errorf("failed to render %s output: %w", opts.OutputFormat, err)
	}
	return buf.Bytes(), nil
}
