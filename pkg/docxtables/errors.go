package docxtables

import (
	"errors"
	"fmt"
)

// Errors returned by Extract before any markup is parsed. Callers match them
// with errors.Is; the wrapped message carries the offending path or part.
var (
	// ErrFileNotFound is returned when no file exists at the given path.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidFormat is returned when the file cannot be opened as a zip container.
	ErrInvalidFormat = errors.New("invalid docx format")
	// ErrMissingPart is returned when word/document.xml is absent from the container.
	ErrMissingPart = errors.New("missing document part")
)

// ExtractionError reports a failure reading or decoding one part of a .docx
// container, such as truncated or badly namespaced document markup.
type ExtractionError struct {
	// Path is the .docx file as given to Extract.
	Path string
	// Part is the container entry being read, e.g. word/document.xml.
	Part string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot read %s from %q: %v", e.Part, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError wraps err with the document path and part it came from.
func NewExtractionError(path, part string, err error) *ExtractionError {
	return &ExtractionError{Path: path, Part: part, Err: err}
}
