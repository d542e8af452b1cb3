package docxtables

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/scalehub/calibration-tools/pkg/docxtables/models"
	"github.com/scalehub/calibration-tools/pkg/docxtables/parser"
)

// Extract reads the main document part of a .docx file and returns its tables.
func Extract(path string) (*models.Document, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer r.Close()

	data, err := parser.ReadPart(&r.Reader, parser.DocumentPart)
	if err != nil {
		if errors.Is(err, parser.ErrPartNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMissingPart, parser.DocumentPart)
		}
		return nil, NewExtractionError(path, parser.DocumentPart, err)
	}

	tables, err := parser.ParseTables(data)
	if err != nil {
		return nil, NewExtractionError(path, parser.DocumentPart, err)
	}

	return &models.Document{
		Name:   filepath.Base(path),
		Tables: tables,
	}, nil
}
