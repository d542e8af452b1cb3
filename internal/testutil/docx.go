package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WordNamespace is the WordprocessingML main namespace URI.
const WordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// WrapBody wraps body markup in a w:document element declaring the w prefix.
func WrapBody(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="` + WordNamespace + `"><w:body>` + body + `</w:body></w:document>`
}

// Table builds w:tbl markup where each row is a list of cell texts.
func Table(rows ...[]string) string {
	var sb strings.Builder
	sb.WriteString("<w:tbl>")
	for _, row := range rows {
		sb.WriteString("<w:tr>")
		for _, cell := range row {
			sb.WriteString(`<w:tc><w:p><w:r><w:t xml:space="preserve">`)
			sb.WriteString(cell)
			sb.WriteString("</w:t></w:r></w:p></w:tc>")
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
	return sb.String()
}

// WriteZip writes a zip archive with the given entries into dir and returns its path.
func WriteZip(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for entry, content := range entries {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatalf("create entry %s: %v", entry, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %s: %v", entry, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

// WriteDocx writes a minimal .docx whose word/document.xml is documentXML.
func WriteDocx(t *testing.T, dir, name, documentXML string) string {
	t.Helper()
	return WriteZip(t, dir, name, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   documentXML,
	})
}
