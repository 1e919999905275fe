package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bjaus/consoletable"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const breakWidth = 80

type something struct {
	ID               string
	Name             string
	Date             time.Time `format:"%v"`
	NumberOfChildren int
	IgnoreMe         string `table:"-"`
}

func newSomething() something {
	return something{
		ID:       newID(),
		Name:     "Khalid Abuhkameh",
		Date:     time.Now(),
		IgnoreMe: "I should not be displayed",
	}
}

type somethingWithFormatting struct {
	ID                 string
	Date               time.Time
	NumberOfChildren   int
	AttributeFormatted string `format:"Formatted by Attribute: '%s'"`
	FunctionFormatted  string
}

func newSomethingWithFormatting() somethingWithFormatting {
	id := newID()
	return somethingWithFormatting{
		ID:                 id,
		Date:               time.Now(),
		AttributeFormatted: id,
		FunctionFormatted:  id,
	}
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func formatString(v any) string {
	s, ok := v.(string)
	if !ok {
		return "NOT STRING"
	}
	return fmt.Sprintf("Formatted by Function: '%s'", s)
}

func repeat[T any](v func() T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v()
	}
	return out
}

func (a *app) sampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print sample tables in every format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debug("writing sample tables")
			return writeSamples(cmd.OutOrStdout())
		},
	}
}

// sampleWriter stops at the first error so the sample reads top to bottom.
type sampleWriter struct {
	out io.Writer
	err error
}

// line writes text and a newline. Text may span several lines.
func (s *sampleWriter) line(text string) {
	if s.err == nil {
		_, s.err = io.WriteString(s.out, text+"\n")
	}
}

func (s *sampleWriter) writeBreak() {
	s.line("\n\n" + strings.Repeat("=", breakWidth) + "\n")
}

func (s *sampleWriter) write(tbl *consoletable.Table, err error, f consoletable.Format) {
	if s.err != nil {
		return
	}
	if err != nil {
		s.err = err
		return
	}
	tbl.Configure(func(o *consoletable.Options) { o.Output = s.out })
	s.err = tbl.Write(f)
}

func writeSamples(out io.Writer) error {
	s := &sampleWriter{out: out}

	s.line("Test Dictionary Table:\n")
	dict, err := consoletable.FromMap(map[string]map[string]any{
		"A": {"A": true, "B": false, "C": true},
		"B": {"A": false, "B": true, "C": false},
		"C": {"A": false, "B": false, "C": true},
	})
	s.write(dict, err, consoletable.Default)

	tbl := consoletable.New("one", "two", "three")
	err = tbl.AddRow(1, 2, 3)
	if err == nil {
		err = tbl.AddRow("this line should be longer 哈哈哈哈", "yes it is", "oh")
	}
	for _, f := range []struct {
		title  string
		format consoletable.Format
	}{
		{"Default", consoletable.Default},
		{"MarkDown", consoletable.MarkDown},
		{"Alternative", consoletable.Alternative},
		{"Minimal", consoletable.Minimal},
	} {
		s.writeBreak()
		s.line("\nFORMAT: " + f.title + ":\n")
		s.write(tbl, err, f.format)
	}

	s.writeBreak()
	s.write(consoletable.New("I've", "got", "nothing"), nil, consoletable.Default)

	s.writeBreak()
	many, err := consoletable.FromRecords(repeat(newSomething, 10))
	s.write(many, err, consoletable.Default)

	s.writeBreak()
	none, err := consoletable.FromRecords(repeat(newSomething, 0))
	s.write(none, err, consoletable.Default)

	s.writeBreak()
	s.line("\nNumberAlignment = right\n")
	aligned, err := consoletable.FromRecords(repeat(newSomething, 2))
	if err == nil {
		aligned.Configure(func(o *consoletable.Options) { o.NumberAlignment = consoletable.AlignRight })
	}
	s.write(aligned, err, consoletable.Default)

	s.writeBreak()
	opts := consoletable.DefaultOptions()
	opts.Columns = []string{"one", "two", "three"}
	opts.EnableCount = false
	noCount, err := consoletable.NewWithOptions(opts)
	if err == nil {
		err = noCount.AddRow(1, 2, 3)
	}
	s.write(noCount, err, consoletable.Default)

	s.writeBreak()
	s.line("Header Row Excluded From Output:")
	headless := consoletable.New("Header1", "Header2", "Header3")
	err = nil
	for _, r := range []string{"A", "B", "C"} {
		if err == nil {
			err = headless.AddRow("val"+r+"1", "val"+r+"2", "val"+r+"3")
		}
	}
	headless.Configure(func(o *consoletable.Options) { o.IncludeHeaderRow = false })
	s.write(headless, err, consoletable.Minimal)

	s.writeBreak()
	s.line("Formatting Columns:")
	formatted, err := consoletable.FromRecords(repeat(newSomethingWithFormatting, 3))
	if err == nil {
		formatted.SetFormatter(consoletable.ByName("FunctionFormatted"), formatString)
	}
	s.write(formatted, err, consoletable.Default)

	return s.err
}
