// Package output serializes extracted documents.
package output

import (
	"encoding/json"

	"github.com/scalehub/calibration-tools/pkg/docxtables/models"
)

// ToJSON serializes an extracted document to JSON.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
