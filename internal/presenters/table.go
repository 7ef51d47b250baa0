package presenters

import (
	"encoding/json"

	"github.com/ygelfand/tocview/internal/dom"
	"github.com/ygelfand/tocview/internal/tableview"
	"gopkg.in/yaml.v3"
)

// TablePresenter exposes a mounted TableView to every output format.
// Headers and rows are read back from the rendered DOM.
type TablePresenter struct {
	View *tableview.TableView
}

func (p *TablePresenter) Title() string {
	return "Table of Contents"
}

func (p *TablePresenter) Headers() []string {
	headers, _ := dom.Cells(p.View.Mount())
	return headers
}

func (p *TablePresenter) Rows() [][]string {
	_, rows := dom.Cells(p.View.Mount())
	return rows
}

// Raw returns one entry per record, keyed by schema field in schema order.
// A field repeated in the schema appears once, at its first position.
func (p *TablePresenter) Raw() interface{} {
	p.View.Mount()
	var fields []string
	seen := map[string]bool{}
	for _, f := range p.View.Schema() {
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}

	out := make(Entries, 0, len(p.View.Records()))
	for _, r := range p.View.Records() {
		e := Entry{}
		for _, f := range fields {
			v, _ := r.Field(f)
			e = append(e, EntryField{Key: f, Value: v})
		}
		out = append(out, e)
	}
	return out
}

func (p *TablePresenter) Markup() string {
	p.View.Mount()
	return p.View.Markup()
}

type EntryField struct {
	Key   string
	Value string
}

// Entry is a schema-ordered projection of a record
type Entry []EntryField

// Entries keeps key order through every output format
type Entries []Entry

func (Entries) KeepsKeyOrder() {}

// MarshalJSON keeps schema order, which a plain map would lose
func (e Entry) MarshalJSON() ([]byte, error) {
	b := []byte{'{'}
	for i, f := range e {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendJSONString(b, f.Key)
		b = append(b, ':')
		b = appendJSONString(b, f.Value)
	}
	return append(b, '}'), nil
}

// MarshalYAML emits a mapping node in schema order
func (e Entry) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range e {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}
	return n, nil
}

func appendJSONString(b []byte, s string) []byte {
	// marshaling a string cannot fail
	q, _ := json.Marshal(s)
	return append(b, q...)
}
