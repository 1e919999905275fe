package cli

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCSVFromStdin(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "name,qty\nwidget,3\n", "csv", "--format", "MarkDown", "--no-count")
	require.NoError(t, err)
	assert.Equal(t, "|name|qty|\n---|---\n|widget|3|\n\n", out)
}

func TestCSVFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("a;b\n1;2\n"), 0o600))

	out, _, err := run(t, "", "csv", path, "--comma", ";", "-f", "minimal", "--no-count", "--no-header")
	require.NoError(t, err)
	assert.Equal(t, "  1  2  \n\n", out)
}

func TestCSVTabEscape(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "a\tb\n1\t2\n", "csv", "--comma", `\t`, "-f", "markdown", "--no-count")
	require.NoError(t, err)
	assert.Equal(t, "|a|b|\n---|---\n|1|2|\n\n", out)
}

func TestParseComma(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    rune
		wantErr require.ErrorAssertionFunc
	}{
		"comma":       {input: ",", want: ',', wantErr: require.NoError},
		"semicolon":   {input: ";", want: ';', wantErr: require.NoError},
		"tab escape":  {input: `\t`, want: '\t', wantErr: require.NoError},
		"literal tab": {input: "\t", want: '\t', wantErr: require.NoError},
		"wide":        {input: "、", want: '、', wantErr: require.NoError},
		"empty":       {input: "", wantErr: require.Error},
		"two chars":   {input: ";;", wantErr: require.Error},
		"bad escape":  {input: `\q`, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := parseComma(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSVBadComma(t *testing.T) {
	t.Parallel()
	_, _, err := run(t, "a\n", "csv", "--comma", ";;")
	require.Error(t, err)
}

func TestInvalidFormat(t *testing.T) {
	t.Parallel()
	_, _, err := run(t, "a\n", "csv", "--format", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cell_divider: \" ; \"\nenable_count: false\n"), 0o600))

	out, _, err := run(t, "a,b\n1,2\n", "csv", "--config", path, "--align-numbers")
	require.NoError(t, err)
	assert.Contains(t, out, " ; a ; b ; ")
	assert.NotContains(t, out, "Count")
}

func TestConfigFileErrors(t *testing.T) {
	t.Parallel()
	_, _, err := run(t, "a\n", "csv", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0o600))
	_, _, err = run(t, "a\n", "csv", "--config", path)
	require.Error(t, err)
}

func TestQuery(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE t (name TEXT, n INTEGER); INSERT INTO t VALUES ('x', 1), ('y', 22)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out, stderr, err := run(t, "", "query", "--db", path, "-f", "markdown", "--verbose", "SELECT name, n FROM t ORDER BY n")
	require.NoError(t, err)
	assert.Equal(t, "|name|n|\n---|---\n|x|1|\n|y|22|\n\n Count: 2\n", out)
	assert.Contains(t, stderr, "rendering table")
}

func TestQueryRequiresDB(t *testing.T) {
	t.Parallel()
	_, _, err := run(t, "", "query", "SELECT 1")
	require.Error(t, err)
}

func TestQueryError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "empty.db")
	_, _, err := run(t, "", "query", "--db", path, "SELECT * FROM nope")
	require.Error(t, err)
}

func TestSample(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "", "sample")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Test Dictionary Table:\n\n ---"))
	for _, want := range []string{
		"Test Dictionary Table:",
		"\nFORMAT: MarkDown:\n\n|one|two|three|\n---|---|---\n",
		"\nNumberAlignment = right\n\n ---",
		"|one|two|three|",
		" | I've | got | nothing | ",
		"Formatted by Attribute: '",
		"Formatted by Function: '",
		"Header Row Excluded From Output:",
		"valA1    valA2    valA3",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "I should not be displayed")
	assert.NotContains(t, out, "Header1")
}
