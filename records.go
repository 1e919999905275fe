package consoletable

import (
	"encoding/base64"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Struct tags read by FromRecords.
const (
	// TagName renames a column; "-" leaves the field out.
	TagName = "table"
	// TagFormat holds a fmt verb applied to the field's value.
	TagFormat = "format"
)

type recordField struct {
	name   string
	index  []int
	kind   Kind
	format FormatFunc
}

// FromRecords builds a table with one column per exported field of the
// struct type T (or *T) and one row per record. Fields tagged table:"-" are
// skipped, table:"Name" renames the column and format:"%.2f" attaches a
// formatter. Byte slices are stored base64-encoded.
func FromRecords[T any](records []T) (*Table, error) {
	fields, err := recordFields(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	t := New()
	cols := make([]*Column, len(fields))
	for i, f := range fields {
		cols[i] = NewTypedColumn(f.name, f.kind, f.format)
	}
	if err := t.AddColumn(cols...); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := t.AddRow(recordValues(reflect.ValueOf(rec), fields)...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromRecordsSeq collects seq and builds the table with FromRecords. Every
// record is needed before any width is known, so nothing is rendered while
// the sequence is consumed.
func FromRecordsSeq[T any](seq iter.Seq[T]) (*Table, error) {
	return FromRecords(slices.Collect(seq))
}

// FromRecordsChan drains ch and builds the table with FromRecords.
func FromRecordsChan[T any](ch <-chan T) (*Table, error) {
	return FromRecordsSeq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func recordFields(rt reflect.Type) ([]recordField, error) {
	st := rt
	for st != nil && st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st == nil || st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: records must be structs, got %v", ErrConfiguration, rt)
	}

	var fields []recordField
	for _, sf := range reflect.VisibleFields(st) {
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && derefType(sf.Type).Kind() == reflect.Struct {
			// Promoted fields follow in VisibleFields.
			continue
		}
		name := sf.Tag.Get(TagName)
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		f := recordField{
			name:  name,
			index: sf.Index,
			kind:  KindOfType(sf.Type),
		}
		if verb := sf.Tag.Get(TagFormat); verb != "" {
			f.format = func(v any) string { return fmt.Sprintf(verb, v) }
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func recordValues(rv reflect.Value, fields []recordField) []any {
	values := make([]any, len(fields))
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return values
		}
		rv = rv.Elem()
	}
	if !rv.CanAddr() {
		c := reflect.New(rv.Type()).Elem()
		c.Set(rv)
		rv = c
	}
	for i, f := range fields {
		fv, err := rv.FieldByIndexErr(f.index)
		if err != nil {
			// Nil embedded pointer on the path.
			continue
		}
		values[i] = fieldValue(fv)
	}
	return values
}

func fieldValue(fv reflect.Value) any {
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}
	if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.Uint8 {
		if fv.IsNil() {
			return nil
		}
		return base64.StdEncoding.EncodeToString(fv.Bytes())
	}
	// Types like big.Int only print through their pointer.
	if fv.Kind() == reflect.Struct && fv.CanAddr() {
		if _, ok := fv.Interface().(fmt.Stringer); !ok {
			if p, ok := fv.Addr().Interface().(fmt.Stringer); ok {
				return p
			}
		}
	}
	return fv.Interface()
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
