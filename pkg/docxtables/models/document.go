// Package models defines data structures for Word table extraction.
package models

// Document represents the tables found in a single .docx container.
type Document struct {
	// Name is the container file name (no path).
	Name string `json:"name"`
	// Tables contains every table in document order, nested tables included.
	Tables []Table `json:"tables"`
}

// TableCount returns the number of extracted tables.
func (d *Document) TableCount() int {
	return len(d.Tables)
}
