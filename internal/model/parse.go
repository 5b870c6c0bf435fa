package model

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformed is returned when the input is not a well-formed OSM/IDF
// document.
var ErrMalformed = errors.New("malformed model file")

// Parse reads an OSM (or IDF) text document. The format is line-oriented:
// "!" starts a comment, objects are comma-separated field lists terminated
// by ";". Field-name comments ("!- Handle") are discarded.
func Parse(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	stripped := stripComments(string(data))

	m := newModel()
	for _, chunk := range strings.Split(stripped, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		fields := strings.Split(chunk, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if fields[0] == "" {
			return nil, fmt.Errorf("%w: object with empty type", ErrMalformed)
		}
		m.add(&Object{Type: fields[0], Fields: fields[1:]})
	}

	if len(m.objects) == 0 {
		return nil, fmt.Errorf("%w: no objects", ErrMalformed)
	}
	return m, nil
}

// ParseFile loads an OSM file from disk.
func ParseFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, line := range strings.Split(s, "\n") {
		if i := strings.IndexByte(line, '!'); i >= 0 {
			line = line[:i]
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
