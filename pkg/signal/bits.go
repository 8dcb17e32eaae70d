package signal

// Bit positions within each control word, exactly as specified in §6.1 of
// the microcode contract. Bits not listed there are reserved and must
// always be emitted as 0.

// w2 — datapath/ALU plane.
const (
	BitW2AluFlagsLd  = 15
	ShiftW2AluOp     = 11 // 4 bits: 14..11
	BitW2RegALoadEn  = 10
	BitW2RegXLoadEn  = 9
	BitW2RegYLoadEn  = 8
	BitW2RegSPLoadEn = 7
	BitW2RegPLoadEn  = 6
	ShiftW2RegOut    = 3 // 3 bits: 5..3
	BitW2PCIncEn     = 2
	BitW2PCLoadEn    = 1
	BitW2PCOutAddrEn = 0
)

// w1 — address/bus plane.
const (
	ShiftW1AddrSource    = 12 // 4 bits: 15..12
	BitW1AdhLoadEn       = 11
	BitW1AdlLoadEn       = 10
	BitW1XAddToAddrEn    = 9
	BitW1YAddToAddrEn    = 8
	BitW1PchOutEn        = 7
	BitW1PclOutEn        = 6
	BitW1SpIntIncEn      = 5
	BitW1SpIntDecEn      = 4
	BitW1MemReadEn       = 3
	BitW1MemWriteEn      = 2
	BitW1DataBusInEn     = 1
	BitW1DataBusOutEn    = 0
)

// w0 — flag/sequencer plane.
const (
	BitW0PBForceOneEn        = 15
	BitW0PFlagCSetEn         = 14
	BitW0PFlagCClrEn         = 13
	BitW0PFlagDSetEn         = 12
	BitW0PFlagDClrEn         = 11
	BitW0PFlagISetEn         = 10
	BitW0PFlagIClrEn         = 9
	BitW0PFlagVClrEn         = 8
	BitW0TmpLoadEn           = 7
	BitW0AddrOutBusEn        = 4
	BitW0TestBranchEn        = 3
	BitW0CpuMasterResetEn    = 2
	BitW0ResetCycleCounterEn = 1
	BitW0LoadIrEn            = 0
)
