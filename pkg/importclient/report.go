package importclient

import (
	"bufio"
	"fmt"
	"io"
)

// WriteResult prints the processed count and each server-reported error
// with a 1-based index, or a no-errors line.
func WriteResult(w io.Writer, result *ImportResult) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "=== Upload Results ===")
	fmt.Fprintf(bw, "Processed: %d documents\n", result.Processed)

	if len(result.Errors) > 0 {
		fmt.Fprintf(bw, "\nErrors (%d):\n", len(result.Errors))
		for i, msg := range result.Errors {
			fmt.Fprintf(bw, "  %d. %s\n", i+1, msg)
		}
	} else {
		fmt.Fprintln(bw, "No errors!")
	}

	return bw.Flush()
}
