// Package htmlgrid parses table cell grids out of HTML renditions of
// schedule documents, such as the output of an OCR-to-HTML converter. The
// grids feed the same extraction strategies as grids from a native
// table-structure reader.
package htmlgrid

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/archivista/schedula/model"
)

// blockTags are elements whose boundaries become line breaks inside a cell.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true,
}

// Parse reads an HTML document and returns one grid per table element, in
// document order. Tables without rows are dropped.
func Parse(r io.Reader) ([]model.Grid, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	var grids []model.Grid
	collectTables(doc, &grids)
	return grids, nil
}

func collectTables(n *html.Node, grids *[]model.Grid) {
	if n.Type == html.ElementNode && n.Data == "table" {
		if grid := parseTable(n); len(grid) > 0 {
			*grids = append(*grids, grid)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTables(c, grids)
	}
}

func parseTable(table *html.Node) model.Grid {
	var grid model.Grid
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if row := parseRow(n); len(row) > 0 {
				grid = append(grid, row)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)
	return grid
}

func parseRow(tr *html.Node) []string {
	var row []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row = append(row, cellText(c))
		}
	}
	return row
}

// cellText flattens a cell into newline-separated lines. Each br and each
// block element boundary ends a line; whitespace within a line is collapsed
// and empty lines are dropped.
func cellText(cell *html.Node) string {
	var lines []string
	var line strings.Builder

	endLine := func() {
		if s := strings.Join(strings.Fields(line.String()), " "); s != "" {
			lines = append(lines, s)
		}
		line.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			line.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "br":
				endLine()
				return
			case blockTags[n.Data]:
				endLine()
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c)
				}
				endLine()
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	endLine()

	return strings.Join(lines, "\n")
}
