package tableview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ygelfand/tocview/internal/catalog"
	"github.com/ygelfand/tocview/internal/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestRendersTableHeaders(t *testing.T) {
	root := New(catalog.DefaultSchema(), nil).Mount()
	for _, s := range []string{"id", "title", "author", "date"} {
		assert.True(t, dom.HasText(root, s), "missing header %q", s)
	}
}

func TestRendersTableRows(t *testing.T) {
	root := New(catalog.DefaultSchema(), nil).Mount()
	for _, s := range []string{"Book 1", "Author 1", "2023-02-28"} {
		assert.True(t, dom.HasText(root, s), "missing cell %q", s)
	}
}

func TestDefaultMarkup(t *testing.T) {
	v := New(catalog.DefaultSchema(), nil)
	v.Mount()

	want := `<table class="table table-striped table-hover"><thead class="thead-dark">` +
		`<tr><th>id</th><th>title</th><th>author</th><th>date</th></tr></thead><tbody>` +
		`<tr><td>1</td><td>Book 1</td><td>Author 1</td><td>2023-02-28</td></tr>` +
		`<tr><td>2</td><td>Book 2</td><td>Author 2</td><td>2023-02-27</td></tr>` +
		`<tr><td>3</td><td>Book 3</td><td>Author 3</td><td>2023-02-26</td></tr>` +
		`</tbody></table>`
	assert.Equal(t, want, v.Markup())
}

func TestDefaultCells(t *testing.T) {
	headers, rows := dom.Cells(New(catalog.DefaultSchema(), nil).Mount())
	assert.Equal(t, []string{"id", "title", "author", "date"}, headers)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "Book 1", "Author 1", "2023-02-28"}, rows[0])
}

func TestStateTransition(t *testing.T) {
	v := New(catalog.DefaultSchema(), nil)
	assert.Equal(t, StateEmpty, v.State())
	assert.Empty(t, v.Records())

	_, rows := dom.Cells(v.Render())
	assert.Empty(t, rows)

	v.Mount()
	assert.Equal(t, StatePopulated, v.State())
	assert.Equal(t, catalog.Database(), v.Records())
	assert.Equal(t, "populated", v.State().String())
	assert.Equal(t, "empty", StateEmpty.String())
}

func TestMountInitializesOnce(t *testing.T) {
	loads := 0
	loader := func() []catalog.Record {
		loads++
		return catalog.Database()
	}

	var states []State
	v := New(catalog.DefaultSchema(), loader, WithRenderHook(func(s State, _ *html.Node) {
		states = append(states, s)
	}))

	first := v.Mount()
	second := v.Mount()
	v.Initialize()

	assert.Equal(t, 1, loads)
	assert.Same(t, first, second)
	assert.Equal(t, []State{StateEmpty, StatePopulated}, states)
}

func TestInitializeBeforeMount(t *testing.T) {
	var renders int
	v := New(catalog.DefaultSchema(), nil, WithRenderHook(func(State, *html.Node) { renders++ }))
	v.Initialize()
	assert.Equal(t, StatePopulated, v.State())

	root := v.Mount()
	_, rows := dom.Cells(root)
	assert.Len(t, rows, 3)
	assert.Equal(t, 2, renders)
}

func TestStateIsCopied(t *testing.T) {
	src := catalog.Database()
	v := New(catalog.DefaultSchema(), func() []catalog.Record { return src })
	v.Mount()

	src[0].Title = "mutated"
	got := v.Records()
	assert.Equal(t, "Book 1", got[0].Title)

	got[1].Title = "mutated"
	assert.Equal(t, "Book 2", v.Records()[1].Title)
}

func TestRenderCounts(t *testing.T) {
	testcases := []struct {
		name    string
		schema  catalog.Schema
		records []catalog.Record
	}{
		{"default", catalog.DefaultSchema(), catalog.Database()},
		{"empty records", catalog.DefaultSchema(), []catalog.Record{}},
		{"nil records", catalog.DefaultSchema(), nil},
		{"single column", catalog.Schema{"title"}, catalog.Database()},
		{"empty schema", catalog.Schema{}, catalog.Database()},
		{"repeated column", catalog.Schema{"id", "id"}, catalog.Database()[:1]},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			records := tc.records
			root := New(tc.schema, func() []catalog.Record { return records }).Mount()

			assert.Len(t, dom.FindAll(root, atom.Th), len(tc.schema))
			body := dom.FindAll(root, atom.Tbody)
			require.Len(t, body, 1)
			rows := dom.FindAll(body[0], atom.Tr)
			assert.Len(t, rows, len(tc.records))
			for _, tr := range rows {
				assert.Len(t, dom.FindAll(tr, atom.Td), len(tc.schema))
			}
		})
	}
}

func TestEmptyRecordsRenderHeadersOnly(t *testing.T) {
	v := New(catalog.DefaultSchema(), func() []catalog.Record { return nil })
	headers, rows := dom.Cells(v.Mount())
	assert.Equal(t, []string{"id", "title", "author", "date"}, headers)
	assert.Empty(t, rows)
	assert.Contains(t, v.Markup(), "<tbody></tbody>")
}

func TestUnknownFieldRendersBlank(t *testing.T) {
	v := New(catalog.Schema{"title", "isbn"}, nil)
	headers, rows := dom.Cells(v.Mount())
	assert.Equal(t, []string{"title", "isbn"}, headers)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, "", row[1])
	}
	assert.Contains(t, v.Markup(), "<td>Book 1</td><td></td>")
}

func TestRenderIsIdempotent(t *testing.T) {
	v := New(catalog.DefaultSchema(), nil)
	v.Mount()

	var a, b bytes.Buffer
	require.NoError(t, v.RenderHTML(&a))
	require.NoError(t, v.RenderHTML(&b))
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.String(), v.Markup())
}

func TestClassesAndEscaping(t *testing.T) {
	records := []catalog.Record{{ID: 7, Title: "<b>Bold</b> & co", Author: "A", Date: "2024-01-01"}}
	v := New(catalog.Schema{"title"}, func() []catalog.Record { return records },
		WithTableClass("toc"),
		WithHeadClass(""),
	)
	root := v.Mount()

	assert.Equal(t, "toc", dom.Class(root))
	assert.Equal(t, "", dom.Class(dom.FindAll(root, atom.Thead)[0]))
	assert.Contains(t, v.Markup(), "&lt;b&gt;Bold&lt;/b&gt; &amp; co")
	assert.True(t, dom.HasText(root, "<b>Bold</b> & co"))
}

func TestSchemaIsCopied(t *testing.T) {
	s := catalog.DefaultSchema()
	v := New(s, nil)
	s[0] = "changed"
	assert.Equal(t, "id", v.Schema()[0])

	got := v.Schema()
	got[1] = "changed"
	assert.Equal(t, "title", v.Schema()[1])
}
