// Package isatable holds the instruction table: the input artifact mapping
// each opcode byte to a mnemonic, addressing-mode tag, and its ordered list
// of symbolic micro-op cycles (§3 InstructionEntry). It is pure data,
// authored once per silicon revision via the builder helpers in
// builders.go, plus the validator (C4) that confirms it fits the hardware
// budget before ROM emission.
package isatable

// MicroOp is an opaque symbolic cycle string, as defined in §3. The empty
// string denotes an all-zero control word.
type MicroOp = string

// HardwareCycleBudget is the maximum number of cycles a single instruction
// may occupy, per §3 and the "TURBO" pipelining note carried over from
// original_source/instructions.py (max 8 cycles even for RMW).
const HardwareCycleBudget = 8

// Entry is one opcode's (mnemonic, addressing, cycles) triple (§3
// InstructionEntry). Only Cycles affects ROM output; Mnemonic and
// Addressing are metadata for the trace log (Validate also names the
// Mnemonic in its warnings).
type Entry struct {
	Mnemonic   string
	Addressing string
	Cycles     []MicroOp
}

// Table maps opcode byte to its instruction entry. Not every opcode needs
// an entry; unpopulated opcodes emit all-zero ROM contents (§3).
type Table map[byte]Entry

// fetch is the single-cycle instruction fetch every opcode begins with:
// latch the opcode byte into IR and advance the program counter.
const fetch MicroOp = "IR := *PC; PC += 1"

// add inserts an entry, panicking on a duplicate opcode. The table is
// built once at init time from a fixed literal list (see New), so a
// collision here is a programming error in this package, not a runtime
// condition end users can trigger — hence panic rather than an error
// return (§4.4's duplicate-opcode check is aimed at externally authored
// tables; ours is self-consistent by construction). Validate does not
// repeat this check: a Table is a map, so it cannot hold a duplicate key.
func (t Table) add(opcode byte, mnemonic, addressing string, cycles []MicroOp) {
	if _, exists := t[opcode]; exists {
		panic("isatable: duplicate opcode 0x" + hexByte(opcode))
	}
	t[opcode] = Entry{Mnemonic: mnemonic, Addressing: addressing, Cycles: cycles}
}

func hexByte(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0xF]})
}
