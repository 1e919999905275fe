// Package cli implements the consoletable command-line interface.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bjaus/consoletable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "modernc.org/sqlite"
)

// version is set at build time.
var version = "development version"

type app struct {
	log     *logrus.Logger
	verbose bool
}

// NewRootCommand returns the consoletable command tree.
func NewRootCommand() *cobra.Command {
	a := &app{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:           "consoletable",
		Short:         "Render tabular data as aligned text tables",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			a.log.SetLevel(logrus.WarnLevel)
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log what is being rendered")

	rootCmd.AddCommand(a.sampleCommand(), a.csvCommand(), a.queryCommand())
	return rootCmd
}

// Execute runs the command tree and exits the process on failure.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) csvCommand() *cobra.Command {
	rf := newRenderFlags()
	var comma string

	cmd := &cobra.Command{
		Use:   "csv [FILE]",
		Short: "Render a CSV file, or standard input, as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := parseComma(comma)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			source := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in, source = f, args[0]
			}

			tbl, err := consoletable.FromCSV(in, sep)
			if err != nil {
				return err
			}
			return a.write(cmd, tbl, rf, source)
		},
	}
	cmd.Flags().SortFlags = false
	setRenderFlags(cmd.Flags(), rf)
	cmd.Flags().StringVar(&comma, "comma", ",", `field separator, a single character or an escape like "\t"`)
	return cmd
}

func (a *app) queryCommand() *cobra.Command {
	rf := newRenderFlags()
	var dbPath string

	cmd := &cobra.Command{
		Use:   "query --db PATH SQL",
		Short: "Run a query against a SQLite database and render the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sql.Open("sqlite", dbPath)
			if err != nil {
				return fmt.Errorf("opening %s: %w", dbPath, err)
			}
			defer db.Close()

			a.log.WithField("db", dbPath).Debug("running query")
			rows, err := db.QueryContext(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}
			defer rows.Close()

			tbl, err := consoletable.FromSQLRows(rows)
			if err != nil {
				return err
			}
			return a.write(cmd, tbl, rf, dbPath)
		},
	}
	cmd.Flags().SortFlags = false
	cmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database")
	_ = cmd.MarkFlagRequired("db")
	setRenderFlags(cmd.Flags(), rf)
	return cmd
}

// parseComma accepts one character or a Go escape sequence such as \t.
func parseComma(s string) (rune, error) {
	r, _, tail, err := strconv.UnquoteChar(s, 0)
	if err != nil || tail != "" {
		return 0, fmt.Errorf("--comma must be a single character, got %q", s)
	}
	return r, nil
}

// write applies the render flags to tbl and writes it to the command output.
func (a *app) write(cmd *cobra.Command, tbl *consoletable.Table, rf *renderFlags, source string) error {
	opts, err := rf.options()
	if err != nil {
		return err
	}
	tbl.Configure(func(o *consoletable.Options) {
		o.NumberAlignment = opts.NumberAlignment
		o.IncludeHeaderRow = opts.IncludeHeaderRow
		o.EnableCount = opts.EnableCount
		o.CellDivider = opts.CellDivider
		o.Output = cmd.OutOrStdout()
	})

	a.log.WithFields(logrus.Fields{
		"source":  source,
		"format":  rf.format.format,
		"columns": len(tbl.Columns()),
		"rows":    len(tbl.Rows()),
	}).Debug("rendering table")

	return tbl.Write(rf.format.format)
}
