package presenters

import (
	"strconv"

	"github.com/ygelfand/tocview/internal/catalog"
)

type SchemaColumn struct {
	Position int    `json:"position" yaml:"position"`
	Field    string `json:"field" yaml:"field"`
	Known    bool   `json:"known" yaml:"known"`
}

// SchemaPresenter lists the active columns
type SchemaPresenter struct {
	Schema catalog.Schema
}

func (p *SchemaPresenter) Title() string {
	return "Columns"
}

func (p *SchemaPresenter) Headers() []string {
	return []string{"POSITION", "FIELD", "KNOWN"}
}

func (p *SchemaPresenter) Rows() [][]string {
	var rows [][]string
	for _, c := range p.columns() {
		rows = append(rows, []string{
			strconv.Itoa(c.Position),
			c.Field,
			strconv.FormatBool(c.Known),
		})
	}
	return rows
}

func (p *SchemaPresenter) Raw() interface{} {
	return p.columns()
}

func (p *SchemaPresenter) columns() []SchemaColumn {
	cols := make([]SchemaColumn, 0, len(p.Schema))
	for i, f := range p.Schema {
		cols = append(cols, SchemaColumn{Position: i + 1, Field: f, Known: catalog.IsField(f)})
	}
	return cols
}
