package parser

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/user/noxim_plot_go/internal/config"
)

const utf8BOM = "\uFEFF"

// naValues are the cell spellings read as a missing value, the same set
// pandas.read_csv treats as NaN by default.
var naValues = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true,
	"None": true, "n/a": true, "nan": true, "null": true,
}

// Load reads a Noxim result CSV from path.
// It returns a *FileError if the file cannot be opened or read and a
// *ParseError if the content is not a result table.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer file.Close()

	ds, err := Parse(file)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, &FileError{Path: path, Err: err}
	}
	ds.Path = path
	return ds, nil
}

// Parse reads a result table from r. The first record is the header; extra
// columns are ignored and the required columns may appear in any order.
func Parse(r io.Reader) (*Dataset, error) {
	// Fields are kept verbatim: " A" and "A" are different routes.
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Line: 1, Msg: "missing header row"}
	}
	if err != nil {
		return nil, csvError(err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Header: header, Rows: make([]Row, 0)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			ds.Skipped++
			continue
		}

		row, err := parseRow(record, index, line)
		if err != nil {
			return nil, err
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// columnIndex maps every required column to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(config.RequiredColumns))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	missing := make([]string, 0)
	for _, col := range config.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &ParseError{Line: 1, Msg: "missing required column(s): " + strings.Join(missing, ", ")}
	}
	return index, nil
}

func parseRow(record []string, index map[string]int, line int) (Row, error) {
	row := Row{
		Route:  record[index[config.RouteColumn]],
		Values: make(map[string]float64, len(config.MetricColumns)),
	}

	pir, err := parseNumber(record[index[config.PIRColumn]])
	if err != nil {
		return Row{}, &ParseError{Line: line, Column: config.PIRColumn, Msg: "not a number", Err: err}
	}
	row.PIR = pir

	for _, col := range config.MetricColumns {
		v, err := parseNumber(record[index[col]])
		if err != nil {
			return Row{}, &ParseError{Line: line, Column: col, Msg: "not a number", Err: err}
		}
		row.Values[col] = v
	}
	return row, nil
}

// parseNumber parses a numeric cell. Empty cells and the usual missing-value
// markers load as NaN.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if naValues[s] {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// isBlank reports a record with no content at all, such as ",,,". Such
// records carry no route and are dropped.
func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func csvError(err error) error {
	var ce *csv.ParseError
	if errors.As(err, &ce) {
		return &ParseError{Line: ce.Line, Msg: "malformed CSV", Err: ce.Err}
	}
	return errors.Wrap(err, "reading CSV")
}
