package tableview

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/ygelfand/tocview/internal/catalog"
	"github.com/ygelfand/tocview/internal/config"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	DefaultTableClass = "table table-striped table-hover"
	DefaultHeadClass  = "thead-dark"
)

type State int

const (
	StateEmpty State = iota
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// Loader supplies the records copied into view state on initialization
type Loader func() []catalog.Record

// RenderHook is called with every rendered tree
type RenderHook func(state State, root *html.Node)

type Option func(*TableView)

func WithTableClass(class string) Option {
	return func(v *TableView) { v.tableClass = class }
}

func WithHeadClass(class string) Option {
	return func(v *TableView) { v.headClass = class }
}

func WithRenderHook(hook RenderHook) Option {
	return func(v *TableView) { v.hook = hook }
}

// TableView renders a schema and its records as an HTML table
type TableView struct {
	schema     catalog.Schema
	loader     Loader
	tableClass string
	headClass  string
	hook       RenderHook

	mu      sync.RWMutex
	state   State
	records []catalog.Record
	last    *html.Node

	initOnce  sync.Once
	mountOnce sync.Once
}

// New creates an empty view. A nil loader uses the compiled-in database.
func New(schema catalog.Schema, loader Loader, opts ...Option) *TableView {
	if loader == nil {
		loader = catalog.Database
	}
	s := make(catalog.Schema, len(schema))
	copy(s, schema)

	v := &TableView{
		schema:     s,
		loader:     loader,
		tableClass: DefaultTableClass,
		headClass:  DefaultHeadClass,
		records:    []catalog.Record{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount renders once, runs initialization, then re-renders with the populated
// state. Later calls return the current render without re-initializing.
func (v *TableView) Mount() *html.Node {
	v.mountOnce.Do(func() {
		slog.Log(context.Background(), config.LevelTrace, "TableView: first render", "columns", len(v.schema))
		v.commit(v.Render())
		v.Initialize()
	})
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.last
}

// Initialize copies the loader's records into view state. Only the first call
// has an effect.
func (v *TableView) Initialize() {
	v.initOnce.Do(func() {
		src := v.loader()
		records := make([]catalog.Record, len(src))
		copy(records, src)

		v.mu.Lock()
		v.records = records
		v.state = StatePopulated
		v.mu.Unlock()

		slog.Debug("TableView: populated", "records", len(records))
		v.commit(v.Render())
	})
}

func (v *TableView) commit(root *html.Node) {
	v.mu.Lock()
	v.last = root
	state := v.state
	v.mu.Unlock()

	if v.hook != nil {
		v.hook(state, root)
	}
}

// Render builds a fresh DOM tree from the schema and current view state
func (v *TableView) Render() *html.Node {
	v.mu.RLock()
	defer v.mu.RUnlock()

	table := element(atom.Table, v.tableClass)

	head := element(atom.Thead, v.headClass)
	headRow := element(atom.Tr, "")
	for _, field := range v.schema {
		headRow.AppendChild(cell(atom.Th, field))
	}
	head.AppendChild(headRow)
	table.AppendChild(head)

	body := element(atom.Tbody, "")
	for _, r := range v.records {
		row := element(atom.Tr, "")
		for _, field := range v.schema {
			// fields a record does not carry render blank
			val, _ := r.Field(field)
			row.AppendChild(cell(atom.Td, val))
		}
		body.AppendChild(row)
	}
	table.AppendChild(body)

	return table
}

// RenderHTML writes the serialized markup of Render to w
func (v *TableView) RenderHTML(w io.Writer) error {
	return html.Render(w, v.Render())
}

// Markup returns the serialized markup of Render
func (v *TableView) Markup() string {
	var b strings.Builder
	// strings.Builder never fails a write
	_ = v.RenderHTML(&b)
	return b.String()
}

func (v *TableView) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Records returns a copy of the records currently in view state
func (v *TableView) Records() []catalog.Record {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]catalog.Record, len(v.records))
	copy(out, v.records)
	return out
}

func (v *TableView) Schema() catalog.Schema {
	out := make(catalog.Schema, len(v.schema))
	copy(out, v.schema)
	return out
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func cell(a atom.Atom, text string) *html.Node {
	n := element(a, "")
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}
