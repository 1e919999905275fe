package consoletable

import (
	"maps"
	"slices"
)

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value any
}

// MatrixRow is one outer entry of a keyed matrix: a row key and the values
// it holds, keyed by column name.
type MatrixRow struct {
	Key    string
	Values []KeyValue
}

// FromKeyedMatrix builds a table whose first column is unnamed and holds the
// row keys. The remaining columns are the distinct inner keys in first-seen
// order. Combinations a row does not mention render as "".
func FromKeyedMatrix(rows []MatrixRow) (*Table, error) {
	var names []string
	seen := make(map[string]bool)
	for _, r := range rows {
		for _, kv := range r.Values {
			if !seen[kv.Key] {
				seen[kv.Key] = true
				names = append(names, kv.Key)
			}
		}
	}

	t := New()
	if err := t.AddColumns(append([]string{""}, names...)...); err != nil {
		return nil, err
	}

	for _, r := range rows {
		byKey := make(map[string]any, len(r.Values))
		for _, kv := range r.Values {
			if _, dup := byKey[kv.Key]; !dup {
				byKey[kv.Key] = kv.Value
			}
		}
		values := make([]any, 0, len(names)+1)
		values = append(values, r.Key)
		for _, name := range names {
			v, ok := byKey[name]
			if !ok {
				v = ""
			}
			values = append(values, v)
		}
		if err := t.AddRow(values...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromMap is FromKeyedMatrix over nested maps. Outer and inner keys are
// visited in sorted order so the output is stable.
func FromMap(m map[string]map[string]any) (*Table, error) {
	rows := make([]MatrixRow, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		inner := m[key]
		r := MatrixRow{Key: key, Values: make([]KeyValue, 0, len(inner))}
		for _, k := range slices.Sorted(maps.Keys(inner)) {
			r.Values = append(r.Values, KeyValue{Key: k, Value: inner[k]})
		}
		rows = append(rows, r)
	}
	return FromKeyedMatrix(rows)
}
