// Package romimg builds the 24 parallel ROM bank images from a compiled
// instruction table (C5) and writes them to the on-disk text format
// external tooling expects (§6.2).
package romimg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/8502dev/ucasm/pkg/isatable"
	"github.com/8502dev/ucasm/pkg/ucode"
)

// bank is one 256-entry cycle-slot plane.
type bank [256]uint16

// RomSet holds all 24 planes: 3 control words (w2, w1, w0) x 8 cycle
// slots, each a 256-entry array indexed by opcode byte (§3 RomPlane).
type RomSet struct {
	W2 [8]bank
	W1 [8]bank
	W0 [8]bank
}

// Diagnostic ties a parser warning back to the opcode and cycle that
// produced it, for the CLI's build report.
type Diagnostic struct {
	Opcode byte
	Cycle  int
	ucode.Diagnostic
}

// Build compiles every (opcode, cycle) pair in t into the appropriate ROM
// slot, per §4.5. Cycles at index >= 8 are skipped without a diagnostic;
// Validate, called first, rejects any table containing them.
func Build(t isatable.Table) (*RomSet, []Diagnostic) {
	rom := &RomSet{}
	var diags []Diagnostic

	for opcode := 0; opcode < 256; opcode++ {
		entry, ok := t[byte(opcode)]
		if !ok {
			continue
		}
		for cycle, microOp := range entry.Cycles {
			if cycle >= 8 {
				break
			}
			word, cycleDiags := ucode.Compile(microOp)
			rom.W2[cycle][opcode] = word.W2
			rom.W1[cycle][opcode] = word.W1
			rom.W0[cycle][opcode] = word.W0
			for _, d := range cycleDiags {
				diags = append(diags, Diagnostic{Opcode: byte(opcode), Cycle: cycle, Diagnostic: d})
			}
		}
	}
	return rom, diags
}

// plane returns the bank array for word index w (2, 1, or 0) and cycle c.
func (r *RomSet) plane(w, c int) *bank {
	switch w {
	case 2:
		return &r.W2[c]
	case 1:
		return &r.W1[c]
	case 0:
		return &r.W0[c]
	}
	panic("romimg: invalid word index")
}

// WriteFiles writes all 24 text files into dir, named w<p>_bank<c>.txt per
// §6.2: 256 lines, one per opcode ascending, each a 4-digit uppercase hex
// value.
func (r *RomSet) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ROM output directory: %w", err)
	}
	for w := 2; w >= 0; w-- {
		for c := 0; c < 8; c++ {
			name := fmt.Sprintf("w%d_bank%d.txt", w, c)
			path := filepath.Join(dir, name)
			if err := writeBank(path, r.plane(w, c)); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
		}
	}
	return nil
}

func writeBank(path string, b *bank) error {
	buf := make([]byte, 0, len(b)*5)
	for _, v := range b {
		buf = append(buf, fmt.Sprintf("%04X\n", v)...)
	}
	return os.WriteFile(path, buf, 0o644)
}
