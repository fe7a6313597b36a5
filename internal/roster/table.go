package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNoHeader indicates an input file with no rows at all, not even a
// header naming the columns.
var ErrNoHeader = errors.New("input table has no header row")

// Table holds one delimited roster export: the header row naming the
// columns and the data records beneath it.
type Table struct {
	Columns []string
	Records [][]string
}

// column returns the index of name in the header, or -1 when absent.
func (t Table) column(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// cell returns the record field at idx, or "" when the record is short.
func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// ReadTable parses one delimited table from r. The first row becomes the
// column header; ragged records are tolerated and short rows read as empty
// cells downstream.
func ReadTable(r io.Reader, delimiter rune) (Table, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parse delimited input: %w", err)
	}
	if len(rows) == 0 {
		return Table{}, ErrNoHeader
	}
	return Table{Columns: rows[0], Records: rows[1:]}, nil
}

// OpenTable reads the delimited file at path, decoding it from the named
// character encoding before parsing.
func OpenTable(path string, delimiter rune, encodingName string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open roster input: %w", err)
	}
	defer f.Close()

	decoded, err := DecodeReader(f, encodingName)
	if err != nil {
		return Table{}, err
	}
	table, err := ReadTable(decoded, delimiter)
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return table, nil
}

// DecodeReader wraps r so its bytes are decoded from the named character
// encoding into NFC-normalized UTF-8. The empty name means UTF-8, and a
// leading byte order mark is consumed when present.
func DecodeReader(r io.Reader, encodingName string) (io.Reader, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, transform.Chain(enc.NewDecoder(), norm.NFC)), nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "utf-16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	}
	return nil, fmt.Errorf("unsupported input encoding %q", name)
}
