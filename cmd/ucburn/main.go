// Command ucburn injects compiled ROM bank files into an external
// schematic's labelled sub-chips (C7). It takes no flags (§6.5): paths
// come from internal/buildcfg, overridable via environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/8502dev/ucasm/internal/buildcfg"
	"github.com/8502dev/ucasm/internal/report"
	"github.com/8502dev/ucasm/pkg/schematic"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ucburn",
		Short: "Inject compiled ROM images into a schematic's labelled sub-chips",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := buildcfg.ResolveBurner()

	r, err := schematic.Inject(cfg.SchematicPath, cfg.RomDir)
	if err != nil {
		return fmt.Errorf("injecting schematic: %w", err)
	}

	report.InjectionSummary(r, cfg.SchematicPath)
	return nil
}
