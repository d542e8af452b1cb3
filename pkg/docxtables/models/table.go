package models

// Table is an ordered sequence of rows, identified only by its position.
type Table struct {
	// Index is the table ordinal in document order (1-based).
	Index int `json:"index"`
	// Rows contains every row found under the table element.
	Rows []Row `json:"rows"`
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells []Cell `json:"cells"`
}

// Cell holds the whitespace-trimmed text of a table cell.
type Cell struct {
	Text string `json:"text"`
}

// Texts returns the text of each cell in order.
func (r Row) Texts() []string {
	texts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		texts[i] = c.Text
	}
	return texts
}
