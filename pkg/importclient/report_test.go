package importclient

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult(t *testing.T) {
	tests := []struct {
		name     string
		result   ImportResult
		expected string
	}{
		{
			name:     "no errors",
			result:   ImportResult{Processed: 3, Errors: []string{}},
			expected: "=== Upload Results ===\nProcessed: 3 documents\nNo errors!\n",
		},
		{
			name:     "errors omitted",
			result:   ImportResult{Processed: 0},
			expected: "=== Upload Results ===\nProcessed: 0 documents\nNo errors!\n",
		},
		{
			name:   "errors in order",
			result: ImportResult{Processed: 2, Errors: []string{"bad file A", "bad file B"}},
			expected: "=== Upload Results ===\nProcessed: 2 documents\n" +
				"\nErrors (2):\n  1. bad file A\n  2. bad file B\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteResult(&buf, &tt.result))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
