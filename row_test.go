package consoletable_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/bjaus/consoletable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()
	type celsius float32
	tests := map[string]struct {
		value   any
		want    consoletable.Kind
		numeric bool
	}{
		"nil":       {value: nil, want: consoletable.KindAny},
		"string":    {value: "x", want: consoletable.KindString},
		"bool":      {value: true, want: consoletable.KindBool},
		"int":       {value: 1, want: consoletable.KindInt, numeric: true},
		"int8":      {value: int8(1), want: consoletable.KindInt8, numeric: true},
		"int64":     {value: int64(1), want: consoletable.KindInt64, numeric: true},
		"uint16":    {value: uint16(1), want: consoletable.KindUint16, numeric: true},
		"uint64":    {value: uint64(1), want: consoletable.KindUint64, numeric: true},
		"float64":   {value: 1.5, want: consoletable.KindFloat64, numeric: true},
		"named":     {value: celsius(1), want: consoletable.KindFloat32, numeric: true},
		"big int":   {value: big.NewInt(1), want: consoletable.KindDecimal, numeric: true},
		"big float": {value: big.NewFloat(1), want: consoletable.KindDecimal, numeric: true},
		"time":      {value: time.Time{}, want: consoletable.KindTime},
		"bytes":     {value: []byte("x"), want: consoletable.KindBytes},
		"struct":    {value: struct{}{}, want: consoletable.KindAny},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := consoletable.KindOf(tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.numeric, got.IsNumeric())
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "decimal", consoletable.KindDecimal.String())
	assert.Equal(t, "Kind(99)", consoletable.Kind(99).String())
}

func TestColumnFormat(t *testing.T) {
	t.Parallel()
	col := consoletable.NewColumn("n")
	assert.Equal(t, consoletable.KindAny, col.Kind)
	assert.Equal(t, "42", col.Format(42))
	assert.Equal(t, "", col.Format(nil))
	assert.Equal(t, "n", col.String())

	col.SetFormatter(func(v any) string { return "#" })
	assert.Equal(t, "#", col.Format(42))
	assert.Equal(t, "", col.Format(nil))

	col.SetFormatter(nil)
	assert.Equal(t, "42", col.Format(42))
}

func TestColumnEqual(t *testing.T) {
	t.Parallel()
	a := consoletable.NewColumn("a")
	typed := consoletable.NewTypedColumn("a", consoletable.KindInt, func(any) string { return "" })
	assert.True(t, a.Equal(typed))
	assert.False(t, a.Equal(consoletable.NewColumn("b")))
	assert.False(t, a.Equal(nil))
}

func TestSelectors(t *testing.T) {
	t.Parallel()
	a, b := consoletable.NewColumn("a"), consoletable.NewColumn("b")
	assert.True(t, consoletable.ByName("a")(a))
	assert.False(t, consoletable.ByName("a")(b))
	assert.True(t, consoletable.ByNames("x", "b")(b))
	assert.False(t, consoletable.ByNames()(a))
	assert.True(t, consoletable.Where(func(c *consoletable.Column) bool { return c.Name < "b" })(a))
}

func TestRowAdd(t *testing.T) {
	t.Parallel()
	a, b := consoletable.NewColumn("a"), consoletable.NewColumn("b")
	row := consoletable.NewRow()
	require.NoError(t, row.Add(a, 1))
	require.NoError(t, row.Add(b, "two"))

	err := row.Add(consoletable.NewColumn("a"), 3)
	require.ErrorIs(t, err, consoletable.ErrInvariantViolation)
	assert.Equal(t, 2, row.Len())

	v, ok := row.Value("b")
	require.True(t, ok)
	assert.Equal(t, "two", v)
	_, ok = row.Value("c")
	assert.False(t, ok)
	assert.False(t, row.IsHeader())
	assert.Equal(t, "1, two", row.String())
}

func TestRowJoin(t *testing.T) {
	t.Parallel()
	a := consoletable.NewTypedColumn("a", consoletable.KindFloat64, func(v any) string { return "f" })
	b := consoletable.NewColumn("b")
	row := consoletable.NewRow()
	require.NoError(t, row.Add(a, 1.5))
	require.NoError(t, row.Add(b, nil))

	assert.Equal(t, "|f||", row.Join("|", false))
	assert.Equal(t, "|1.5||", row.Join("|", true))
	assert.Equal(t, []string{"f", ""}, row.Texts(false))
	assert.Equal(t, "|", consoletable.NewRow().Join("|", false))
}

func TestRowPaddedJoin(t *testing.T) {
	t.Parallel()
	a, b := consoletable.NewColumn("a"), consoletable.NewColumn("b")
	row := consoletable.NewRow()
	require.NoError(t, row.Add(a, "哈"))
	require.NoError(t, row.Add(b, "x"))

	got := row.PaddedJoin("|", []int{4, 3}, []consoletable.Alignment{consoletable.AlignLeft, consoletable.AlignRight})
	assert.Equal(t, "|哈  |  x|", got)

	// Text wider than its column is never cut.
	got = row.PaddedJoin(" ", []int{1, 1}, nil)
	assert.Equal(t, " 哈 x ", got)
}

func TestCellEqual(t *testing.T) {
	t.Parallel()
	a := consoletable.NewColumn("a")
	c := consoletable.Cell{Column: a, Value: []int{1}}
	assert.True(t, c.Equal(consoletable.Cell{Column: consoletable.NewColumn("a"), Value: []int{1}}))
	assert.False(t, c.Equal(consoletable.Cell{Column: a, Value: []int{2}}))
	assert.False(t, c.Equal(consoletable.Cell{Column: consoletable.NewColumn("b"), Value: []int{1}}))
}

func TestRowEqual(t *testing.T) {
	t.Parallel()
	tbl := consoletable.New("a", "b")
	require.NoError(t, tbl.AddRow(1, "x"))
	require.NoError(t, tbl.AddRow(1, "x"))
	require.NoError(t, tbl.AddRow(1, "y"))
	rows := tbl.Rows()
	assert.True(t, rows[0].Equal(rows[1]))
	assert.False(t, rows[0].Equal(rows[2]))
	assert.False(t, rows[0].Equal(consoletable.NewRow()))
	assert.False(t, rows[0].Equal(nil))

	var none *consoletable.Row
	assert.True(t, none.Equal(nil))
}
