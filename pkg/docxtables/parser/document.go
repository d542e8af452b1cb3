// Package parser reads WordprocessingML parts out of a .docx container.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/scalehub/calibration-tools/pkg/docxtables/models"
)

// NSW is the WordprocessingML main namespace. Only elements in this
// namespace are treated as tables, rows, cells and text runs.
const NSW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// DocumentPart is the container path of the main document body markup.
const DocumentPart = "word/document.xml"

// ErrPartNotFound indicates the container has no entry with the requested name.
var ErrPartNotFound = errors.New("part not found")

// ErrNoRootElement indicates the markup contains no element at all.
var ErrNoRootElement = errors.New("markup has no root element")

// ErrMalformedMarkup indicates markup that is well-formed for the decoder but
// not a valid namespaced document, such as a second root element.
var ErrMalformedMarkup = errors.New("malformed markup")

// xmlNamespace is the URI the decoder assigns to the predeclared xml prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

type elementKind int

const (
	kindOther elementKind = iota
	kindTable
	kindRow
	kindCell
	kindText
)

// node is a pruned markup element: only tbl/tr/tc/t are kept, and each is
// attached to its nearest kept ancestor so descendant order is preserved.
type node struct {
	kind     elementKind
	text     string
	children []*node
}

// ReadPart returns the contents of the named container entry.
func ReadPart(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, ErrPartNotFound
}

// ParseTables walks document markup and returns every table in document
// order. Rows, cells and text runs are matched anywhere below their parent,
// so rows of a nested table also count as rows of the enclosing table.
func ParseTables(data []byte) ([]models.Table, error) {
	root, err := buildTree(data)
	if err != nil {
		return nil, err
	}

	tblNodes := root.descendants(kindTable)
	tables := make([]models.Table, 0, len(tblNodes))
	for i, tbl := range tblNodes {
		rowNodes := tbl.descendants(kindRow)
		table := models.Table{
			Index: i + 1,
			Rows:  make([]models.Row, 0, len(rowNodes)),
		}
		for _, tr := range rowNodes {
			cellNodes := tr.descendants(kindCell)
			row := models.Row{Cells: make([]models.Cell, 0, len(cellNodes))}
			for _, tc := range cellNodes {
				row.Cells = append(row.Cells, models.Cell{Text: cellText(tc)})
			}
			table.Rows = append(table.Rows, row)
		}
		tables = append(tables, table)
	}

	return tables, nil
}

// cellText joins the text of all runs under a cell with single spaces.
// Runs without text contribute an empty string.
func cellText(tc *node) string {
	runs := tc.descendants(kindText)
	parts := make([]string, len(runs))
	for i, t := range runs {
		parts[i] = t.text
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func classify(name xml.Name) elementKind {
	if name.Space != NSW {
		return kindOther
	}
	switch name.Local {
	case "tbl":
		return kindTable
	case "tr":
		return kindRow
	case "tc":
		return kindCell
	case "t":
		return kindText
	}
	return kindOther
}

// buildTree decodes the markup into a pruned tree rooted at a synthetic node.
func buildTree(data []byte) (*node, error) {
	type frame struct {
		n          *node
		sawChild   bool
		namespaces []string
	}

	root := &node{}
	stack := []*frame{{n: root}}
	sawRoot := false

	nearest := func() *node {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].n != nil {
				return stack[i].n
			}
		}
		return root
	}

	// declared reports whether uri is bound by an xmlns attribute in scope.
	// The decoder leaves an undeclared prefix as the bare Name.Space.
	declared := func(uri string) bool {
		for i := len(stack) - 1; i >= 0; i-- {
			for _, ns := range stack[i].namespaces {
				if ns == uri {
					return true
				}
			}
		}
		return false
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if len(stack) == 1 && sawRoot {
				return nil, fmt.Errorf("%w: second root element <%s>", ErrMalformedMarkup, t.Name.Local)
			}
			sawRoot = true
			stack[len(stack)-1].sawChild = true

			// Namespaces declared on an element are in scope for its own name.
			f := &frame{}
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
					f.namespaces = append(f.namespaces, attr.Value)
				}
			}
			stack = append(stack, f)
			if t.Name.Space != "" && t.Name.Space != xmlNamespace && !declared(t.Name.Space) {
				return nil, fmt.Errorf("%w: undeclared prefix %q on <%s>", ErrMalformedMarkup, t.Name.Space, t.Name.Local)
			}
			for _, attr := range t.Attr {
				switch attr.Name.Space {
				case "", "xmlns", xmlNamespace:
					continue
				}
				if !declared(attr.Name.Space) {
					return nil, fmt.Errorf("%w: undeclared prefix %q on attribute %s", ErrMalformedMarkup, attr.Name.Space, attr.Name.Local)
				}
			}

			if kind := classify(t.Name); kind != kindOther {
				f.n = &node{kind: kind}
				parent := nearest()
				parent.children = append(parent.children, f.n)
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			// Text runs keep only the text before their first child element.
			top := stack[len(stack)-1]
			if top.n != nil && top.n.kind == kindText && !top.sawChild {
				top.n.text += string(t)
			}
		}
	}

	if !sawRoot {
		return nil, ErrNoRootElement
	}
	return root, nil
}

// descendants returns all nodes of the given kind below n, in pre-order.
func (n *node) descendants(kind elementKind) []*node {
	var out []*node
	var walk func(*node)
	walk = func(cur *node) {
		for _, c := range cur.children {
			if c.kind == kind {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}
