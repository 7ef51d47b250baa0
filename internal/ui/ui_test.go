package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleData() OutputData {
	return OutputData{
		Title:   "Table of Contents",
		Headers: []string{"id", "title"},
		Rows:    [][]string{{"1", "Book 1"}, {"2", "Book, 2"}},
		Raw: []map[string]string{
			{"id": "1", "title": "Book 1"},
			{"id": "2", "title": "Book, 2"},
		},
		HTML: "<table></table>",
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleData().Write(&buf, "html"))
	assert.Equal(t, "<table></table>\n", buf.String())
}

func TestWriteHTMLFallback(t *testing.T) {
	d := sampleData()
	d.HTML = ""
	d.Rows = [][]string{{"1", "<i>x</i>"}}

	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf, "HTML"))
	assert.Equal(t,
		"<table><thead><tr><th>id</th><th>title</th></tr></thead><tbody><tr><td>1</td><td>&lt;i&gt;x&lt;/i&gt;</td></tr></tbody></table>\n",
		buf.String())
}

func TestWriteUnknownFallsBackToHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleData().Write(&buf, "xml"))
	assert.Equal(t, "<table></table>\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleData().Write(&buf, "csv"))
	assert.Equal(t, "id,title\n1,Book 1\n2,\"Book, 2\"\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleData().Write(&buf, "json"))
	assert.Equal(t, `[{"id":"1","title":"Book 1"},{"id":"2","title":"Book, 2"}]`+"\n", buf.String())
}

func TestWriteJSONPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleData().Write(&buf, "json-pretty"))
	assert.Contains(t, buf.String(), "Book 1")
	assert.Contains(t, buf.String(), "\n")
}

type orderedSample []json.RawMessage

func (orderedSample) KeepsKeyOrder() {}

func TestWriteJSONPrettyKeepsKeyOrder(t *testing.T) {
	d := sampleData()
	d.Raw = orderedSample{json.RawMessage(`{"title":"Book 1","id":"1"}`)}

	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf, "json-pretty"))
	out := buf.String()
	assert.Equal(t, "[\n  {\n    \"title\": \"Book 1\",\n    \"id\": \"1\"\n  }\n]\n", out)
	assert.Less(t, strings.Index(out, `"title"`), strings.Index(out, `"id"`))
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleData().Write(&buf, "yaml"))

	var decoded []map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleData().Raw, decoded)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleData().Write(&buf, "table"))
	out := buf.String()
	assert.Contains(t, out, "Table of Contents")
	assert.Contains(t, out, "Book 1")
	assert.Contains(t, out, "Book, 2")
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleData().Write(&buf, "txt"))
	out := buf.String()
	assert.Contains(t, out, "title:")
	assert.Contains(t, out, "Book 1")
}

func TestJSONIsValid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleData().Write(&buf, "json"))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestThemeByID(t *testing.T) {
	assert.Equal(t, "tocview", ThemeByID("").ID())
	assert.Equal(t, "tocview", ThemeByID("does-not-exist").ID())
	all := Themes()
	require.NotEmpty(t, all)
	last := all[len(all)-1]
	assert.Equal(t, last.ID(), ThemeByID(last.ID()).ID())
}

func TestColumns(t *testing.T) {
	cols := Columns([]string{"id", "title"}, [][]string{{"1", "Book 1"}, {"22"}})
	require.Len(t, cols, 2)
	assert.Equal(t, "id", cols[0].Title)
	assert.Equal(t, MinColumnWidth, cols[0].Width)
	assert.Equal(t, len("Book 1")+2, cols[1].Width)

	rows := TableRows(cols, [][]string{{"22"}})
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"22", ""}, []string(rows[0]))
}

func TestEllipsis(t *testing.T) {
	assert.Equal(t, "short", Ellipsis("short", 10))
	assert.Equal(t, "abc...", Ellipsis("abcdefghij", 6))
	assert.Equal(t, "..", Ellipsis("abcdef", 2))
}

func TestGetTableHeight(t *testing.T) {
	assert.Equal(t, 15, GetTableHeight(20))
	assert.Equal(t, 1, GetTableHeight(3))
}
