package ui

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
	"github.com/olekukonko/tablewriter"
	"github.com/ygelfand/tocview/internal/config"
	"gopkg.in/yaml.v3"
)

var BookBlue = lipgloss.Color("#3b82f6")

type TocviewTint struct{}

func (t *TocviewTint) DisplayName() string { return "Tocview" }
func (t *TocviewTint) ID() string          { return "tocview" }
func (t *TocviewTint) About() string       { return "Tocview default theme" }

func (t *TocviewTint) Fg() lipgloss.TerminalColor          { return lipgloss.Color("#d4d4d4") }
func (t *TocviewTint) Bg() lipgloss.TerminalColor          { return lipgloss.Color("#212529") }
func (t *TocviewTint) SelectionBg() lipgloss.TerminalColor { return lipgloss.Color("#343a40") }
func (t *TocviewTint) Cursor() lipgloss.TerminalColor      { return BookBlue }

func (t *TocviewTint) BrightBlack() lipgloss.TerminalColor  { return lipgloss.Color("#6c757d") }
func (t *TocviewTint) BrightBlue() lipgloss.TerminalColor   { return lipgloss.Color("#60a5fa") }
func (t *TocviewTint) BrightCyan() lipgloss.TerminalColor   { return lipgloss.Color("#17a2b8") }
func (t *TocviewTint) BrightGreen() lipgloss.TerminalColor  { return lipgloss.Color("#28a745") }
func (t *TocviewTint) BrightPurple() lipgloss.TerminalColor { return lipgloss.Color("#6f42c1") }
func (t *TocviewTint) BrightRed() lipgloss.TerminalColor    { return lipgloss.Color("#dc3545") }
func (t *TocviewTint) BrightWhite() lipgloss.TerminalColor  { return lipgloss.Color("#ffffff") }
func (t *TocviewTint) BrightYellow() lipgloss.TerminalColor { return lipgloss.Color("#ffc107") }

func (t *TocviewTint) Black() lipgloss.TerminalColor  { return lipgloss.Color("#000000") }
func (t *TocviewTint) Blue() lipgloss.TerminalColor   { return lipgloss.Color("#007bff") }
func (t *TocviewTint) Cyan() lipgloss.TerminalColor   { return lipgloss.Color("#17a2b8") }
func (t *TocviewTint) Green() lipgloss.TerminalColor  { return lipgloss.Color("#28a745") }
func (t *TocviewTint) Purple() lipgloss.TerminalColor { return lipgloss.Color("#6f42c1") }
func (t *TocviewTint) Red() lipgloss.TerminalColor    { return lipgloss.Color("#dc3545") }
func (t *TocviewTint) White() lipgloss.TerminalColor  { return lipgloss.Color("#d4d4d4") }
func (t *TocviewTint) Yellow() lipgloss.TerminalColor { return lipgloss.Color("#ffc107") }

var TocviewTheme = &TocviewTint{}

// Themes returns every selectable theme, ours first
func Themes() []tint.Tint {
	return append([]tint.Tint{TocviewTheme}, tint.DefaultTints()...)
}

// ThemeByID returns the theme with the given id, or the default theme
func ThemeByID(id string) tint.Tint {
	for _, t := range Themes() {
		if t.ID() == id {
			return t
		}
	}
	return TocviewTheme
}

// CurrentTheme returns the theme currently configured in config.Get()
func CurrentTheme() tint.Tint {
	return ThemeByID(config.Get().Theme)
}

// Accent returns the primary accent color for the theme
func Accent(t tint.Tint) lipgloss.TerminalColor {
	if t.ID() == "tocview" {
		return BookBlue
	}
	return t.BrightCyan()
}

func TitleStyle(t tint.Tint) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent(t)).
		MarginBottom(1)
}

func LabelStyle(t tint.Tint) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.BrightWhite()).
		Width(20)
}

func ValueStyle(t tint.Tint) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.White())
}

func HintStyle(t tint.Tint) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.BrightBlack())
}

func ErrorStyle(t tint.Tint) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.BrightRed()).
		Bold(true)
}

func SuccessStyle(t tint.Tint) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.BrightGreen()).
		Bold(true)
}

// RenderError prints a styled error message
func RenderError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle(CurrentTheme()).Render("Error:"), err)
}

// RenderSuccess prints a styled success message to stderr so stdout stays clean
func RenderSuccess(msg string) {
	fmt.Fprintln(os.Stderr, SuccessStyle(CurrentTheme()).Render(msg))
}

// OutputData represents data that can be printed in multiple formats
type OutputData struct {
	Title   string
	Headers []string
	Rows    [][]string
	Raw     interface{} // Used for JSON/YAML
	HTML    string      // Used for html, empty falls back to a table built from Headers/Rows
}

// Print writes the data to w in the configured format
func (d OutputData) Print(w io.Writer) error {
	return d.Write(w, config.Get().OutputFormat)
}

// Write writes the data to w in the given format
func (d OutputData) Write(w io.Writer, format string) error {
	switch config.NormalizeFormat(format) {
	case config.FormatJSON:
		return d.printJSON(w)
	case config.FormatJSONPretty:
		return d.printJSONPretty(w)
	case config.FormatYAML:
		return d.printYAML(w)
	case config.FormatCSV:
		return d.printCSV(w)
	case config.FormatText, "text":
		return d.printText(w)
	case config.FormatTable:
		return d.printTable(w)
	case config.FormatHTML:
		fallthrough
	default:
		return d.printHTML(w)
	}
}

func (d OutputData) printHTML(w io.Writer) error {
	markup := d.HTML
	if markup == "" {
		markup = SimpleHTML(d.Headers, d.Rows)
	}
	_, err := fmt.Fprintln(w, markup)
	return err
}

// OrderedRaw is implemented by raw data whose JSON key order matters.
// Such data is indented as marshaled instead of being recolored through a map.
type OrderedRaw interface {
	KeepsKeyOrder()
}

func (d OutputData) printJSONPretty(w io.Writer) error {
	rawJSON, err := json.Marshal(d.Raw)
	if err != nil {
		return err
	}

	if _, ok := d.Raw.(OrderedRaw); ok {
		var buf bytes.Buffer
		if err := json.Indent(&buf, rawJSON, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = w.Write(buf.Bytes())
		return err
	}

	var obj any
	if err := json.Unmarshal(rawJSON, &obj); err != nil {
		return err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	b, err := f.Marshal(obj)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func (d OutputData) printJSON(w io.Writer) error {
	b, err := json.Marshal(d.Raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func (d OutputData) printYAML(w io.Writer) error {
	b, err := yaml.Marshal(d.Raw)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (d OutputData) printCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(d.Rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func (d OutputData) printText(w io.Writer) error {
	theme := CurrentTheme()
	if d.Title != "" {
		fmt.Fprintln(w, TitleStyle(theme).Render(d.Title))
	}
	for _, row := range d.Rows {
		for i, val := range row {
			if i < len(d.Headers) {
				fmt.Fprintf(w, "%s %s\n", LabelStyle(theme).Render(d.Headers[i]+":"), ValueStyle(theme).Render(val))
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

func (d OutputData) printTable(w io.Writer) error {
	if d.Title != "" {
		fmt.Fprintln(w, TitleStyle(CurrentTheme()).Render(d.Title))
	}

	table := tablewriter.NewWriter(w)
	table.Header(d.Headers)
	table.Bulk(d.Rows)
	return table.Render()
}

// SimpleHTML renders headers and rows into a bare table for presenters
// that do not produce their own markup
func SimpleHTML(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, h := range headers {
		b.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, c := range row {
			b.WriteString("<td>" + html.EscapeString(c) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
