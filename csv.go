package consoletable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// FromCSV builds a table from CSV data. The first record names the columns;
// every later record must have the same number of fields.
func FromCSV(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: csv input has no header", ErrConfiguration)
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	t := New()
	if err := t.AddColumns(header...); err != nil {
		return nil, err
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		values := make([]any, len(rec))
		for i, s := range rec {
			values[i] = s
		}
		if err := t.AddRow(values...); err != nil {
			return nil, err
		}
	}
}
