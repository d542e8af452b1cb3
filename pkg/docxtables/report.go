package docxtables

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/scalehub/calibration-tools/pkg/docxtables/models"
)

// WriteReport prints a human-readable summary of doc: the table count, then
// for each table its row count and the first rows as pipe-joined cell text.
func WriteReport(w io.Writer, doc *models.Document, opts Options) error {
	bw := bufio.NewWriter(w)
	preview := opts.Preview()

	fmt.Fprintf(bw, "Found %d tables in document\n\n", doc.TableCount())

	for _, table := range doc.Tables {
		fmt.Fprintf(bw, "=== Table %d ===\n", table.Index)
		fmt.Fprintf(bw, "Rows: %d\n\n", len(table.Rows))

		for i, row := range table.Rows {
			if i >= preview {
				break
			}
			fmt.Fprintf(bw, "Row %d: %s\n", i+1, strings.Join(row.Texts(), " | "))
		}

		if remaining := len(table.Rows) - preview; remaining > 0 {
			fmt.Fprintf(bw, "... and %d more rows\n\n", remaining)
		} else {
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}
