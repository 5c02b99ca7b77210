package parser

import (
	"fmt"
	"math"
)

// Row is one simulation observation from a Noxim result file.
// Values holds every metric column, keyed by its header name.
type Row struct {
	Route  string
	PIR    float64
	Values map[string]float64
}

// Dataset holds the rows of one result file in file order.
type Dataset struct {
	Path    string
	Header  []string // header as read, including ignored columns
	Rows    []Row
	Skipped int // blank lines dropped while reading
}

// Routes returns the distinct route labels in the order they first appear.
func (d *Dataset) Routes() []string {
	seen := make(map[string]bool)
	routes := make([]string, 0)
	for _, r := range d.Rows {
		if !seen[r.Route] {
			seen[r.Route] = true
			routes = append(routes, r.Route)
		}
	}
	return routes
}

// PIRs returns the distinct injection rates in the order they first appear.
// All NaN rates count as a single value.
func (d *Dataset) PIRs() []float64 {
	seen := make(map[float64]bool)
	seenNaN := false
	pirs := make([]float64, 0)
	for _, r := range d.Rows {
		if math.IsNaN(r.PIR) {
			if !seenNaN {
				seenNaN = true
				pirs = append(pirs, r.PIR)
			}
			continue
		}
		if !seen[r.PIR] {
			seen[r.PIR] = true
			pirs = append(pirs, r.PIR)
		}
	}
	return pirs
}

// FileError means the input path could not be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError means the file is not a usable Noxim result table.
// Line and Column are 1-based and zero when they do not apply.
type ParseError struct {
	Line   int
	Column string
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Column != "" {
		msg = fmt.Sprintf("column %q: %s", e.Column, msg)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
