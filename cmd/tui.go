package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/ygelfand/tocview/internal/commands"
	"github.com/ygelfand/tocview/internal/tableview"
	"github.com/ygelfand/tocview/internal/tui"
	"github.com/ygelfand/tocview/internal/ui"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Short:   "Browse the table of contents interactively",
	GroupID: "tui",
	RunE:    commands.RunWithView(runTUI),
}

func runTUI(ctx context.Context, view *tableview.TableView, cmd *cobra.Command, args []string, opts *commands.TocviewOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui requires an interactive terminal, use render instead")
	}

	slog.Info("TUI Starting", "columns", len(view.Schema()))
	p := tea.NewProgram(tui.New(view, ui.CurrentTheme()), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		slog.Error("TUI: Program run failed", "error", err)
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	slog.Info("TUI Finished normally")
	return nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
