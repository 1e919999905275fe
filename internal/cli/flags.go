package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/bjaus/consoletable"
	"github.com/spf13/pflag"
)

// formatFlag implements the pflag.Value interface for table formats.
type formatFlag struct {
	format consoletable.Format
}

func (f *formatFlag) String() string { return f.format.String() }

func (f *formatFlag) Type() string { return "format" }

func (f *formatFlag) Set(s string) error {
	format, err := consoletable.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

func formatNames() string {
	names := make([]string, 0, len(consoletable.Formats()))
	for _, f := range consoletable.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// renderFlags are shared by every command that prints a table.
type renderFlags struct {
	format       formatFlag
	configPath   string
	noHeader     bool
	noCount      bool
	alignNumbers bool
}

func newRenderFlags() *renderFlags {
	return &renderFlags{format: formatFlag{format: consoletable.Default}}
}

func setRenderFlags(fs *pflag.FlagSet, rf *renderFlags) {
	fs.VarP(&rf.format, "format", "f", "output format ("+formatNames()+")")
	fs.StringVar(&rf.configPath, "config", "", "YAML file with table options")
	fs.BoolVar(&rf.noHeader, "no-header", false, "omit the header row")
	fs.BoolVar(&rf.noCount, "no-count", false, "omit the row count footer")
	fs.BoolVar(&rf.alignNumbers, "align-numbers", false, "right align numeric columns")
}

// options loads the config file, if any, and applies the flag overrides.
func (rf *renderFlags) options() (consoletable.Options, error) {
	opts := consoletable.DefaultOptions()
	if rf.configPath != "" {
		f, err := os.Open(rf.configPath)
		if err != nil {
			return opts, fmt.Errorf("opening config: %w", err)
		}
		defer f.Close()
		if opts, err = consoletable.LoadOptions(f); err != nil {
			return opts, fmt.Errorf("loading %s: %w", rf.configPath, err)
		}
	}
	if rf.noHeader {
		opts.IncludeHeaderRow = false
	}
	if rf.noCount {
		opts.EnableCount = false
	}
	if rf.alignNumbers {
		opts.NumberAlignment = consoletable.AlignRight
	}
	return opts, nil
}
