package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/scalehub/calibration-tools/pkg/docxtables/models"
)

func TestToJSON(t *testing.T) {
	doc := &models.Document{
		Name: "report.docx",
		Tables: []models.Table{
			{Index: 1, Rows: []models.Row{{Cells: []models.Cell{{Text: "Load"}}}}},
		},
	}

	compact, err := ToJSON(doc, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Errorf("expected compact JSON, got %s", compact)
	}

	pretty, err := ToJSON(doc, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Errorf("expected indented JSON, got %s", pretty)
	}

	var decoded struct {
		Name   string `json:"name"`
		Tables []struct {
			Index int `json:"index"`
			Rows  []struct {
				Cells []struct {
					Text string `json:"text"`
				} `json:"cells"`
			} `json:"rows"`
		} `json:"tables"`
	}
	if err := json.Unmarshal(compact, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Name != "report.docx" || decoded.Tables[0].Rows[0].Cells[0].Text != "Load" {
		t.Errorf("unexpected decoded document: %+v", decoded)
	}
}
