// Package report renders build status to the console in the teacher's
// plain fmt idiom (no logging library appears anywhere in the example
// corpus — see DESIGN.md).
package report

import (
	"fmt"
	"os"

	"github.com/8502dev/ucasm/pkg/isatable"
	"github.com/8502dev/ucasm/pkg/romimg"
	"github.com/8502dev/ucasm/pkg/schematic"
)

// ValidationFailure prints one table error per line to stderr.
func ValidationFailure(errs []error) {
	fmt.Fprintf(os.Stderr, "instruction table failed validation (%d error(s)):\n", len(errs))
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "  %v\n", err)
	}
}

// ValidationWarnings prints table warnings to stdout.
func ValidationWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

// ParserDiagnostics prints one line per compile-time diagnostic.
func ParserDiagnostics(diags []romimg.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	fmt.Printf("%d parser diagnostic(s):\n", len(diags))
	for _, d := range diags {
		fmt.Printf("  opcode 0x%02X cycle %d: %q: %s\n", d.Opcode, d.Cycle, d.Statement, d.Message)
	}
}

// BuildSummary prints the final status line for a successful compile.
func BuildSummary(t isatable.Table, buildDir, csvPath string) {
	populated := 0
	for opcode := 0; opcode < 256; opcode++ {
		if _, ok := t[byte(opcode)]; ok {
			populated++
		}
	}
	fmt.Printf("compiled %d/256 opcodes\n", populated)
	fmt.Printf("wrote 24 ROM bank files to %s\n", buildDir)
	fmt.Printf("wrote trace log to %s\n", csvPath)
}

// InjectionSummary prints the schematic injector's completeness report,
// per §4.7 step 5 and §7's "completeness warnings."
func InjectionSummary(r schematic.Report, path string) {
	fmt.Printf("injected %d label(s) into %s\n", len(r.Injected), path)
	for _, w := range r.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	if len(r.Missing) > 0 {
		fmt.Printf("warning: %d label(s) not injected: %v\n", len(r.Missing), r.Missing)
	}
	if !r.Written {
		fmt.Println("no changes written (zero successful injections)")
	}
}
