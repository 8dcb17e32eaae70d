package isatable

import "fmt"

// The helpers in this file expand a named addressing mode into its full
// cycle list, per the §9 design note: "the helpers that build common
// addressing patterns... should be exposed as builder functions returning
// lists of MicroOp strings, not as runtime abstractions." Every helper
// begins with the shared fetch cycle and ends its final cycle with END.

// Implied returns the cycle list for a single-cycle register or flag
// operation that needs no operand fetch beyond the opcode itself, e.g.
// "CLRF(C); END" for CLC.
func Implied(op MicroOp) []MicroOp {
	return []MicroOp{fetch, op}
}

// OneCycleFetch returns the cycle list for an instruction whose entire
// effect (including END) happens in the fetch cycle itself, e.g. NOP.
func OneCycleFetch() []MicroOp {
	return []MicroOp{fetch + "; END"}
}

// Immediate returns the cycle list for "REG := #imm", loading an operand
// byte straight into a register with no ALU involvement (LDA/LDX/LDY #imm).
func Immediate(destReg string) []MicroOp {
	return []MicroOp{fetch, fmt.Sprintf("%s := *PC; PC += 1; END", destReg)}
}

// ImmediateALU returns the cycle list for "ALUOP A, #imm" with the result
// written back to reg (ADC/AND/ORA/XOR/SBC #imm).
func ImmediateALU(aluOp, reg string) []MicroOp {
	return []MicroOp{
		fetch,
		"DL := *PC; PC += 1",
		fmt.Sprintf("%s(%s, DL); %s := ALU_RESULT; ALU_FLAGS_LD; END", aluOp, reg, reg),
	}
}

// ImmediateCompare returns the cycle list for a compare against an
// immediate operand: flags update, no register writeback (CMP/CPX/CPY).
func ImmediateCompare(reg string) []MicroOp {
	return []MicroOp{
		fetch,
		"DL := *PC; PC += 1",
		fmt.Sprintf("CMP(%s, DL); ALU_FLAGS_LD; END", reg),
	}
}

// ZeroPageLoad returns the cycle list for "REG := zp" (LDA/LDX/LDY zp).
func ZeroPageLoad(destReg string) []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1",
		fmt.Sprintf("%s := *{zeropage}; END", destReg),
	}
}

// ZeroPageStore returns the cycle list for "zp := REG" (STA/STX/STY zp).
func ZeroPageStore(srcReg string) []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1",
		fmt.Sprintf("*{zeropage} := %s; END", srcReg),
	}
}

// AbsoluteIndexedLoad returns the cycle list for "REG := abs,index" where
// index is "x" or "y" (LDA abs,X / LDA abs,Y / ...).
func AbsoluteIndexedLoad(destReg, index string) []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1",
		"ADH := *PC; PC += 1",
		fmt.Sprintf("%s := *{latch} + %s; END", destReg, index),
	}
}

// AbsoluteIndexedStore returns the cycle list for "abs,index := REG".
func AbsoluteIndexedStore(srcReg, index string) []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1",
		"ADH := *PC; PC += 1",
		fmt.Sprintf("*{latch} + %s := %s; END", index, srcReg),
	}
}

// IndirectIndexedY returns the cycle list for "REG := (zp), Y": fetch the
// zero-page pointer, read its two bytes, then dereference the resulting
// address indexed by Y.
func IndirectIndexedY(destReg string) []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1",
		"TMP := *{zeropage_indirect}",
		"ADH := *{zeropage_indirect_inc}",
		fmt.Sprintf("%s := *{latch} + y; END", destReg),
	}
}

// RMW returns the cycle list for a zero-page read-modify-write instruction
// (INC/DEC/ASL/LSR/ROL/ROR zp). The final cycle writes the ALU result back
// to the same effective address without re-asserting any indexing signal
// (§9(c): the hardware latches the effective address between cycles).
func RMW(aluOp string) []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1",
		"TMP := *{zeropage}",
		fmt.Sprintf("%s(TMP); *{zeropage} := ALU_RESULT; ALU_FLAGS_LD; END", aluOp),
	}
}

// IllegalRMW returns the cycle list for an undocumented instruction that
// folds a read-modify-write into a second ALU operation against the
// accumulator in the same instruction stream (e.g. SLO = ASL then ORA).
func IllegalRMW(shiftOp, combineOp string) []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1",
		"TMP := *{zeropage}",
		fmt.Sprintf("%s(TMP); *{zeropage} := ALU_RESULT; ALU_FLAGS_LD", shiftOp),
		fmt.Sprintf("%s(A, TMP); A := ALU_RESULT; ALU_FLAGS_LD; END", combineOp),
	}
}

// ZeroPageTest returns the cycle list for a zero-page operand consumed
// purely for its flag effect, with no register writeback (BIT zp).
func ZeroPageTest(aluOp, reg string) []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1",
		"DL := *{zeropage}",
		fmt.Sprintf("%s(%s, DL); ALU_FLAGS_LD; END", aluOp, reg),
	}
}

// Branch returns the cycle list shared by every conditional branch
// instruction. The condition tested (equal, carry set, ...) is a hardware
// sequencer contract keyed off the opcode's IR value, not a parser concern
// (§9(b)) — the symbolic micro-op text is identical across all of them.
func Branch() []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1; TEST_BRANCH_EN; END",
	}
}

// JumpAbsolute returns the cycle list for JMP abs.
func JumpAbsolute() []MicroOp {
	return []MicroOp{
		fetch,
		"ADL := *PC; PC += 1",
		"ADH := *PC; PC += 1",
		"PC := {latch}; END",
	}
}

// RegisterTransfer returns the cycle list for a register-to-register move
// or in-place increment/decrement that still updates flags, by routing the
// ALU through pass/inc/dec and loading the flags off its output
// (TAX/TAY/TXA/TYA/INX/DEX/INY/DEY).
func RegisterTransfer(aluOp, srcReg, destReg string) []MicroOp {
	return []MicroOp{
		fetch,
		fmt.Sprintf("%s(%s); %s := ALU_RESULT; ALU_FLAGS_LD; END", aluOp, srcReg, destReg),
	}
}
