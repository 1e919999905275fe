package consoletable

import (
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"time"
)

// Kind tags the type of the values held by a column. Only membership in the
// numeric kinds matters to rendering: it decides right alignment.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal // *big.Int, *big.Float, *big.Rat
	KindTime
	KindBytes
)

var kindNames = map[Kind]string{
	KindAny:     "any",
	KindString:  "string",
	KindBool:    "bool",
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindDecimal: "decimal",
	KindTime:    "time",
	KindBytes:   "bytes",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsNumeric reports whether k is one of the integer, float or decimal kinds.
func (k Kind) IsNumeric() bool {
	return k >= KindInt && k <= KindDecimal
}

var (
	bigIntType   = reflect.TypeOf(big.Int{})
	bigFloatType = reflect.TypeOf(big.Float{})
	bigRatType   = reflect.TypeOf(big.Rat{})
	timeType     = reflect.TypeOf(time.Time{})
)

// KindOf returns the kind of v's dynamic type.
func KindOf(v any) Kind {
	if v == nil {
		return KindAny
	}
	return KindOfType(reflect.TypeOf(v))
}

// KindOfType maps a Go type to its Kind. Pointers are dereferenced; types
// without a dedicated kind map to KindAny.
func KindOfType(t reflect.Type) Kind {
	if t == nil {
		return KindAny
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t {
	case bigIntType, bigFloatType, bigRatType:
		return KindDecimal
	case timeType:
		return KindTime
	}
	switch t.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return KindBytes
		}
	}
	return KindAny
}

// FormatFunc converts a cell value to its displayed text. It is never called
// with a nil value.
type FormatFunc func(v any) string

// Column is a named, typed field of a table. Columns are compared by name.
type Column struct {
	Name string
	Kind Kind

	format FormatFunc
}

// NewColumn returns an untyped column that renders values with their natural
// string form.
func NewColumn(name string) *Column {
	return &Column{Name: name, Kind: KindAny}
}

// NewTypedColumn returns a column of the given kind. A nil format uses the
// natural string form.
func NewTypedColumn(name string, kind Kind, format FormatFunc) *Column {
	return &Column{Name: name, Kind: kind, format: format}
}

// SetFormatter replaces the column's formatter. A nil f restores the natural
// string form. Rows render through the column, so the change applies to
// values already added.
func (c *Column) SetFormatter(f FormatFunc) {
	c.format = f
}

// Format renders v through the column's formatter. Nil values render as "".
func (c *Column) Format(v any) string {
	if isNil(v) {
		return ""
	}
	if c.format == nil {
		return naturalText(v)
	}
	return c.format(v)
}

// Equal reports whether c and o name the same column.
func (c *Column) Equal(o *Column) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Name == o.Name
}

// String returns the column name.
func (c *Column) String() string { return c.Name }

// Selector picks columns for [Table.SetFormatter].
type Selector func(*Column) bool

// ByName selects the column called name.
func ByName(name string) Selector {
	return func(c *Column) bool { return c.Name == name }
}

// ByNames selects every column whose name is in names.
func ByNames(names ...string) Selector {
	return func(c *Column) bool { return slices.Contains(names, c.Name) }
}

// Where selects the columns for which pred returns true.
func Where(pred func(*Column) bool) Selector {
	return Selector(pred)
}

// naturalText is the default conversion of a value to text.
func naturalText(v any) string {
	if isNil(v) {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
