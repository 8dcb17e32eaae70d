// Package buildcfg resolves the handful of filesystem paths the two CLI
// binaries need. Both binaries take no flags (§6.5) — paths are fixed
// defaults, overridable only through environment variables, the same way
// ucode.py's original OUTPUT_DIR = "build" was a module-level constant
// rather than a parsed argument.
package buildcfg

import "os"

const (
	defaultBuildDir       = "build"
	defaultCSVPath        = "microcode_log.csv"
	defaultSchematicPath  = "schematic/cpu.schem.json"
)

// Compiler holds the paths cmd/ucasm writes to.
type Compiler struct {
	BuildDir string
	CSVPath  string
}

// ResolveCompiler returns the compiler's output paths, honoring
// UCASM_BUILD_DIR / UCASM_CSV_PATH overrides if set.
func ResolveCompiler() Compiler {
	return Compiler{
		BuildDir: getenv("UCASM_BUILD_DIR", defaultBuildDir),
		CSVPath:  getenv("UCASM_CSV_PATH", defaultCSVPath),
	}
}

// Burner holds the paths cmd/ucburn reads from and writes to.
type Burner struct {
	SchematicPath string
	RomDir        string
}

// ResolveBurner returns the injector's paths, honoring
// UCBURN_SCHEMATIC_PATH / UCBURN_ROM_DIR overrides if set.
func ResolveBurner() Burner {
	return Burner{
		SchematicPath: getenv("UCBURN_SCHEMATIC_PATH", defaultSchematicPath),
		RomDir:        getenv("UCBURN_ROM_DIR", defaultBuildDir),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
