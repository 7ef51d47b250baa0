package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FindAll returns every descendant element of n matching a, in document order.
// n itself is included when it matches.
func FindAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && c.DataAtom == a {
			out = append(out, c)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

// Text returns the whitespace-normalized text content of n
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// HasText reports whether any element under n has normalized text equal to s
func HasText(n *html.Node, s string) bool {
	want := strings.Join(strings.Fields(s), " ")
	var found bool
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if found {
			return
		}
		if c.Type == html.ElementNode && Text(c) == want {
			found = true
			return
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if n != nil {
		walk(n)
	}
	return found
}

// Cells projects a rendered table back into header and row strings
func Cells(n *html.Node) ([]string, [][]string) {
	headers := []string{}
	for _, head := range FindAll(n, atom.Thead) {
		for _, th := range FindAll(head, atom.Th) {
			headers = append(headers, Text(th))
		}
	}

	rows := [][]string{}
	for _, body := range FindAll(n, atom.Tbody) {
		for _, tr := range FindAll(body, atom.Tr) {
			row := []string{}
			for _, td := range FindAll(tr, atom.Td) {
				row = append(row, Text(td))
			}
			rows = append(rows, row)
		}
	}
	return headers, rows
}

// Class returns the class attribute of n
func Class(n *html.Node) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}
