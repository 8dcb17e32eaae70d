// Command ucasm compiles the instruction table into 24 ROM bank files and
// a CSV trace log (C2-C6). It takes no flags (§6.5): all output locations
// come from internal/buildcfg, overridable only via environment variables.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/8502dev/ucasm/internal/buildcfg"
	"github.com/8502dev/ucasm/internal/report"
	"github.com/8502dev/ucasm/pkg/isatable"
	"github.com/8502dev/ucasm/pkg/romimg"
	"github.com/8502dev/ucasm/pkg/trace"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ucasm",
		Short: "Compile the 8502 microcode instruction table into ROM images",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// ioFailure wraps an error that should exit non-zero-but-not-1, reserving
// exit 1 for instruction-table validation failures (§6.5).
type ioFailure struct{ err error }

func (f *ioFailure) Error() string { return f.err.Error() }
func (f *ioFailure) Unwrap() error { return f.err }

func exitCodeFor(err error) int {
	var io *ioFailure
	if errors.As(err, &io) {
		return 2
	}
	return 1
}

func run() error {
	cfg := buildcfg.ResolveCompiler()

	t := isatable.New()

	errs, warnings := isatable.Validate(t)
	report.ValidationWarnings(warnings)
	if len(errs) > 0 {
		report.ValidationFailure(errs)
		return fmt.Errorf("instruction table failed validation")
	}

	rom, diags := romimg.Build(t)
	report.ParserDiagnostics(diags)

	if err := rom.WriteFiles(cfg.BuildDir); err != nil {
		return &ioFailure{err: fmt.Errorf("writing ROM images: %w", err)}
	}

	csvFile, err := os.Create(cfg.CSVPath)
	if err != nil {
		return &ioFailure{err: fmt.Errorf("creating CSV trace log: %w", err)}
	}
	defer csvFile.Close()

	if err := trace.WriteCSV(csvFile, t); err != nil {
		return &ioFailure{err: fmt.Errorf("writing CSV trace log: %w", err)}
	}

	report.BuildSummary(t, cfg.BuildDir, cfg.CSVPath)
	return nil
}
