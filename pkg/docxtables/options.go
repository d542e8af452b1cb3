// Package docxtables extracts tables from Word (.docx) documents.
package docxtables

// DefaultPreviewRows is the number of rows printed per table by WriteReport.
const DefaultPreviewRows = 3

// Options configures report rendering.
type Options struct {
	// PreviewRows is the number of leading rows printed per table.
	// Zero or negative means DefaultPreviewRows.
	PreviewRows int
}

// DefaultOptions returns default report options.
func DefaultOptions() Options {
	return Options{
		PreviewRows: DefaultPreviewRows,
	}
}

// Preview returns the effective number of preview rows.
func (o Options) Preview() int {
	if o.PreviewRows <= 0 {
		return DefaultPreviewRows
	}
	return o.PreviewRows
}
