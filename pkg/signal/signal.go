// Package signal names every hardware control line driven by the 8502
// microcode ROMs and the enumerated code tables those lines select through.
// It is the contract shared verbatim with the synthesised datapath: bit
// positions and enum codes here must never be renumbered without a matching
// change on the hardware side.
package signal

// AluOp selects the 4-bit ALU opcode field in w2, bits 14..11.
type AluOp uint8

const (
	AluNone AluOp = iota
	AluAdc
	AluSbc
	AluAnd
	AluOra
	AluXor
	AluBit
	AluCmp
	AluAsl
	AluLsr
	AluRol
	AluRor
	AluInc
	AluDec
	AluPass
	AluOut
)

var aluOpNames = map[string]AluOp{
	"adc":  AluAdc,
	"sbc":  AluSbc,
	"and":  AluAnd,
	"ora":  AluOra,
	"xor":  AluXor,
	"bit":  AluBit,
	"cmp":  AluCmp,
	"asl":  AluAsl,
	"lsr":  AluLsr,
	"rol":  AluRol,
	"ror":  AluRor,
	"inc":  AluInc,
	"dec":  AluDec,
	"pass": AluPass,
	"out":  AluOut,
}

// LookupAluOp resolves an ALU mnemonic to its code. Unknown keys resolve to
// AluNone (the idle code), per §4.3: "unknown keys map to 0".
func LookupAluOp(key string) AluOp {
	if op, ok := aluOpNames[key]; ok {
		return op
	}
	return AluNone
}

// RegOut selects the 3-bit register-output mux field in w2, bits 5..3.
type RegOut uint8

const (
	RegOutNone RegOut = iota
	RegOutP
	RegOutSP
	RegOutY
	RegOutX
	RegOutA
	RegOutTmp
	RegOutDL
)

var regOutNames = map[string]RegOut{
	"p":   RegOutP,
	"sp":  RegOutSP,
	"y":   RegOutY,
	"x":   RegOutX,
	"a":   RegOutA,
	"tmp": RegOutTmp,
	"dl":  RegOutDL,
}

// LookupRegOut resolves a register mnemonic to its mux code. Unknown keys
// resolve to RegOutNone.
func LookupRegOut(key string) RegOut {
	if r, ok := regOutNames[key]; ok {
		return r
	}
	return RegOutNone
}

// AddrSource selects the 4-bit address-source mux field in w1, bits 15..12.
//
// zeropage and pc_plus_offset deliberately share code 8: both drive the
// same physical mux input and are disambiguated elsewhere in the cycle
// (§4.1, §9 "Address-source aliasing").
type AddrSource uint8

const (
	AddrSourceNone               AddrSource = 0
	AddrSourcePC                 AddrSource = 1
	AddrSourceStack              AddrSource = 2
	AddrSourceLatch              AddrSource = 3
	AddrSourceIrqLsb             AddrSource = 6
	AddrSourceIrqMsb             AddrSource = 7
	AddrSourceZeroPage           AddrSource = 8
	AddrSourcePCPlusOffset       AddrSource = 8
	AddrSourceZeroPageIndirect   AddrSource = 9
	AddrSourceZeroPageIndInc     AddrSource = 10
	AddrSourceCalcZPXPointer     AddrSource = 11
	AddrSourceLatchInc           AddrSource = 12
)

var addrSourceNames = map[string]AddrSource{
	"pc":                      AddrSourcePC,
	"stack":                   AddrSourceStack,
	"latch":                   AddrSourceLatch,
	"irq_lsb":                 AddrSourceIrqLsb,
	"irq_msb":                 AddrSourceIrqMsb,
	"zeropage":                AddrSourceZeroPage,
	"pc_plus_offset":          AddrSourcePCPlusOffset,
	"zeropage_indirect":       AddrSourceZeroPageIndirect,
	"zeropage_indirect_inc":   AddrSourceZeroPageIndInc,
	"calculate_zp_x_pointer":  AddrSourceCalcZPXPointer,
	"latch_inc":               AddrSourceLatchInc,
	// aliases named explicitly in §4.2.2 / §9.
	"adh, adl":    AddrSourceLatch,
	"0x00, adl":   AddrSourceZeroPage,
}

// LookupAddrSource resolves an address-source key to its mux code. Unknown
// keys resolve to AddrSourceNone (0).
func LookupAddrSource(key string) AddrSource {
	if a, ok := addrSourceNames[key]; ok {
		return a
	}
	return AddrSourceNone
}

// SignalSet is the union of every control line asserted by one compiled
// cycle. It is a fixed struct rather than the free-form string-keyed
// mapping of the reference implementation, so a mistyped signal name fails
// to compile instead of silently producing an all-zero bit (§9 design
// note).
type SignalSet struct {
	// w2 — datapath/ALU plane.
	AluFlagsLd   bool
	AluOpKey     AluOp
	RegALoadEn   bool
	RegXLoadEn   bool
	RegYLoadEn   bool
	RegSPLoadEn  bool
	RegPLoadEn   bool
	RegOutKey    RegOut
	PCIncEn      bool
	PCLoadEn     bool
	PCOutAddrEn  bool

	// w1 — address/bus plane.
	AddrSourceKey   AddrSource
	AdhLoadEn       bool
	AdlLoadEn       bool
	XAddToAddrEn    bool
	YAddToAddrEn    bool
	PchOutEn        bool
	PclOutEn        bool
	SpIntIncEn      bool
	SpIntDecEn      bool
	MemReadEn       bool
	MemWriteEn      bool
	DataBusInEn     bool
	DataBusOutEn    bool

	// w0 — flag/sequencer plane.
	PBForceOneEn        bool
	PFlagCSetEn         bool
	PFlagCClrEn         bool
	PFlagDSetEn         bool
	PFlagDClrEn         bool
	PFlagISetEn         bool
	PFlagIClrEn         bool
	PFlagVClrEn         bool
	TmpLoadEn           bool
	AddrOutBusEn        bool
	TestBranchEn        bool
	CpuMasterResetEn    bool
	ResetCycleCounterEn bool
	LoadIrEn            bool
}

// ControlWord is the triple of 16-bit words the ROM planes store for one
// compiled cycle.
type ControlWord struct {
	W2 uint16
	W1 uint16
	W0 uint16
}
