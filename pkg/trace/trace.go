// Package trace emits the human-readable CSV debugging log: one row per
// (opcode, cycle) giving the symbolic source and its compiled control
// words (C6, §4.6 / §6.3).
package trace

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/8502dev/ucasm/pkg/isatable"
	"github.com/8502dev/ucasm/pkg/ucode"
)

var header = []string{"Opcode", "Mnemonic", "Addressing", "Cycle", "Symbolic Code", "W2", "W1", "W0"}

// WriteCSV writes the full trace log to w, sorted by opcode ascending.
func WriteCSV(w io.Writer, t isatable.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for opcode := 0; opcode < 256; opcode++ {
		entry, ok := t[byte(opcode)]
		if !ok {
			continue
		}
		for cycle, microOp := range entry.Cycles {
			word, _ := ucode.Compile(microOp)
			source := microOp
			if source == "" {
				source = "NO-OP"
			}
			row := []string{
				fmt.Sprintf("%02X", opcode),
				entry.Mnemonic,
				entry.Addressing,
				fmt.Sprintf("%d", cycle),
				source,
				fmt.Sprintf("%04X", word.W2),
				fmt.Sprintf("%04X", word.W1),
				fmt.Sprintf("%04X", word.W0),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing CSV row for opcode 0x%02X cycle %d: %w", opcode, cycle, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
