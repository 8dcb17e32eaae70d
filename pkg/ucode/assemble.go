package ucode

import "github.com/8502dev/ucasm/pkg/signal"

// Assemble packs a SignalSet into the three 16-bit control words, per §4.3
// and the bit layout in §6.1. Pure function: the only inputs are the
// signal set and the fixed bit-position table in pkg/signal.
func Assemble(set signal.SignalSet) signal.ControlWord {
	return signal.ControlWord{
		W2: assembleW2(set),
		W1: assembleW1(set),
		W0: assembleW0(set),
	}
}

func boolBit(b bool, pos int) uint16 {
	if b {
		return 1 << uint(pos)
	}
	return 0
}

func assembleW2(s signal.SignalSet) uint16 {
	var w uint16
	w |= boolBit(s.AluFlagsLd, signal.BitW2AluFlagsLd)
	w |= uint16(s.AluOpKey) << signal.ShiftW2AluOp
	w |= boolBit(s.RegALoadEn, signal.BitW2RegALoadEn)
	w |= boolBit(s.RegXLoadEn, signal.BitW2RegXLoadEn)
	w |= boolBit(s.RegYLoadEn, signal.BitW2RegYLoadEn)
	w |= boolBit(s.RegSPLoadEn, signal.BitW2RegSPLoadEn)
	w |= boolBit(s.RegPLoadEn, signal.BitW2RegPLoadEn)
	w |= uint16(s.RegOutKey) << signal.ShiftW2RegOut
	w |= boolBit(s.PCIncEn, signal.BitW2PCIncEn)
	w |= boolBit(s.PCLoadEn, signal.BitW2PCLoadEn)
	w |= boolBit(s.PCOutAddrEn, signal.BitW2PCOutAddrEn)
	return w
}

func assembleW1(s signal.SignalSet) uint16 {
	var w uint16
	w |= uint16(s.AddrSourceKey) << signal.ShiftW1AddrSource
	w |= boolBit(s.AdhLoadEn, signal.BitW1AdhLoadEn)
	w |= boolBit(s.AdlLoadEn, signal.BitW1AdlLoadEn)
	w |= boolBit(s.XAddToAddrEn, signal.BitW1XAddToAddrEn)
	w |= boolBit(s.YAddToAddrEn, signal.BitW1YAddToAddrEn)
	w |= boolBit(s.PchOutEn, signal.BitW1PchOutEn)
	w |= boolBit(s.PclOutEn, signal.BitW1PclOutEn)
	w |= boolBit(s.SpIntIncEn, signal.BitW1SpIntIncEn)
	w |= boolBit(s.SpIntDecEn, signal.BitW1SpIntDecEn)
	w |= boolBit(s.MemReadEn, signal.BitW1MemReadEn)
	w |= boolBit(s.MemWriteEn, signal.BitW1MemWriteEn)
	w |= boolBit(s.DataBusInEn, signal.BitW1DataBusInEn)
	w |= boolBit(s.DataBusOutEn, signal.BitW1DataBusOutEn)
	return w
}

func assembleW0(s signal.SignalSet) uint16 {
	var w uint16
	w |= boolBit(s.PBForceOneEn, signal.BitW0PBForceOneEn)
	w |= boolBit(s.PFlagCSetEn, signal.BitW0PFlagCSetEn)
	w |= boolBit(s.PFlagCClrEn, signal.BitW0PFlagCClrEn)
	w |= boolBit(s.PFlagDSetEn, signal.BitW0PFlagDSetEn)
	w |= boolBit(s.PFlagDClrEn, signal.BitW0PFlagDClrEn)
	w |= boolBit(s.PFlagISetEn, signal.BitW0PFlagISetEn)
	w |= boolBit(s.PFlagIClrEn, signal.BitW0PFlagIClrEn)
	w |= boolBit(s.PFlagVClrEn, signal.BitW0PFlagVClrEn)
	w |= boolBit(s.TmpLoadEn, signal.BitW0TmpLoadEn)
	w |= boolBit(s.AddrOutBusEn, signal.BitW0AddrOutBusEn)
	w |= boolBit(s.TestBranchEn, signal.BitW0TestBranchEn)
	w |= boolBit(s.CpuMasterResetEn, signal.BitW0CpuMasterResetEn)
	w |= boolBit(s.ResetCycleCounterEn, signal.BitW0ResetCycleCounterEn)
	w |= boolBit(s.LoadIrEn, signal.BitW0LoadIrEn)
	return w
}

// Compile parses then assembles a single micro-op, returning any parser
// diagnostics alongside the resulting control word.
func Compile(microOp string) (signal.ControlWord, []Diagnostic) {
	set, diags := Parse(microOp)
	return Assemble(set), diags
}
