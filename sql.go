package consoletable

import (
	"database/sql"
	"encoding/base64"
	"fmt"
)

// FromSQLRows builds a table from a query result. Column kinds come from the
// driver's scan types, NULL renders as "" and binary values are stored
// base64-encoded. rows is consumed but not closed.
func FromSQLRows(rows *sql.Rows) (*Table, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("reading column types: %w", err)
	}

	t := New()
	cols := make([]*Column, len(types))
	for i, ct := range types {
		cols[i] = NewTypedColumn(ct.Name(), KindOfType(ct.ScanType()), nil)
	}
	if err := t.AddColumn(cols...); err != nil {
		return nil, err
	}

	dest := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", len(t.rows)+1, err)
		}
		values := make([]any, len(dest))
		for i, v := range dest {
			if b, ok := v.([]byte); ok {
				v = base64.StdEncoding.EncodeToString(b)
			}
			values[i] = v
		}
		if err := t.AddRow(values...); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return t, nil
}
