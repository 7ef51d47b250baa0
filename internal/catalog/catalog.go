package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is a single table of contents entry
type Record struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Date   string `json:"date" yaml:"date"` // calendar date literal, never parsed
}

// Field names understood by Record.Field
const (
	FieldID     = "id"
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldDate   = "date"
)

// Schema is the ordered list of fields that become table columns
type Schema []string

var database = []Record{
	{ID: 1, Title: "Book 1", Author: "Author 1", Date: "2023-02-28"},
	{ID: 2, Title: "Book 2", Author: "Author 2", Date: "2023-02-27"},
	{ID: 3, Title: "Book 3", Author: "Author 3", Date: "2023-02-26"},
}

var schema = Schema{FieldID, FieldTitle, FieldAuthor, FieldDate}

// Database returns a copy of the compiled-in records
func Database() []Record {
	out := make([]Record, len(database))
	copy(out, database)
	return out
}

// DefaultSchema returns a copy of the compiled-in column order
func DefaultSchema() Schema {
	out := make(Schema, len(schema))
	copy(out, schema)
	return out
}

// Field returns the stringified value of the named attribute.
// Names are case sensitive.
func (r Record) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return strconv.Itoa(r.ID), true
	case FieldTitle:
		return r.Title, true
	case FieldAuthor:
		return r.Author, true
	case FieldDate:
		return r.Date, true
	default:
		return "", false
	}
}

// IsField reports whether name is a Record attribute
func IsField(name string) bool {
	_, ok := Record{}.Field(name)
	return ok
}

// ParseSchema builds a schema from user supplied field names, dropping blanks
func ParseSchema(fields []string) Schema {
	var s Schema
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		s = append(s, f)
	}
	return s
}

type IssueKind string

const (
	IssueUnknownField IssueKind = "unknown_field"
	IssueDuplicateID  IssueKind = "duplicate_id"
)

// Issue describes a schema/record inconsistency. Rendering still proceeds.
type Issue struct {
	Kind   IssueKind
	Field  string
	ID     int
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
}

// Lint reports schema fields that no record carries and duplicate record ids
func Lint(s Schema, records []Record) []Issue {
	var issues []Issue
	for _, f := range s {
		if !IsField(f) {
			issues = append(issues, Issue{
				Kind:   IssueUnknownField,
				Field:  f,
				Detail: fmt.Sprintf("field %q is not a record attribute and will render blank", f),
			})
		}
	}

	seen := make(map[int]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			issues = append(issues, Issue{
				Kind:   IssueDuplicateID,
				ID:     r.ID,
				Detail: fmt.Sprintf("record id %d appears more than once", r.ID),
			})
			continue
		}
		seen[r.ID] = true
	}
	return issues
}
