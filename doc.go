// Package consoletable renders rows of typed values as aligned text tables.
//
// A [Table] owns ordered [Column] values and the [Row] values added against
// them. Build one from column names, add rows, then render it in one of four
// formats:
//
//	t := consoletable.New("one", "two", "three")
//	_ = t.AddRow(1, 2, 3)
//	_ = t.AddRow("this line should be longer 哈哈哈哈", "yes it is", "oh")
//	s, err := t.Render(consoletable.Default)
//
// # Formats
//
//   - [Default] - " | " cells between dashed rules, a rule after every row
//   - [MarkDown] - "|a|b|" rows under a "---|---" rule, values unformatted
//   - [Alternative] - " + " cells between rules with "+" joints
//   - [Minimal] - two-space cells and a single rule under the header
//
// [Table.Write] renders and writes the text, plus a newline, to the
// configured output (os.Stdout by default).
//
// # Width
//
// Columns are as wide as their widest value or name in terminal columns, as
// measured by [TextWidth]. Wide (CJK, fullwidth) runes count twice, so rows
// containing them line up with the rest.
//
// # Alignment
//
// Values are left aligned. With [Options].NumberAlignment set to [AlignRight],
// columns of a numeric [Kind] are right aligned. Columns built from names are
// untyped; typed columns come from [NewTypedColumn], [FromRecords] and
// [FromSQLRows].
//
// # Formatting
//
// Each column renders values through a [FormatFunc]. Attach one at any time:
//
//	t.SetFormatter(consoletable.ByName("price"), func(v any) string {
//		return fmt.Sprintf("%.2f", v)
//	})
//
// # Sources
//
//   - [FromKeyedMatrix], [FromMap] - row key to column name to value
//   - [FromRecords], [FromRecordsSeq], [FromRecordsChan] - struct fields
//   - [FromSQLRows] - a database/sql result set
//   - [FromCSV] - CSV with a header record
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvariantViolation] - row length mismatch, duplicate column
//   - [ErrConfiguration] - missing columns, output or invalid options
//   - [ErrUnsupportedFormat] - unknown format
package consoletable
