package ucode

import (
	"testing"

	"github.com/8502dev/ucasm/pkg/signal"
)

// TestParseEmptyIsZero verifies the empty string compiles to an all-zero
// signal set, per §4.2.
func TestParseEmptyIsZero(t *testing.T) {
	set, diags := Parse("")
	if diags != nil {
		t.Fatalf("empty statement produced diagnostics: %v", diags)
	}
	word := Assemble(set)
	if word.W2 != 0 || word.W1 != 0 || word.W0 != 0 {
		t.Errorf("expected all-zero control word, got %04X %04X %04X", word.W2, word.W1, word.W0)
	}
}

// TestParseIsDeterministic verifies repeated parses of the same source
// produce byte-identical control words.
func TestParseIsDeterministic(t *testing.T) {
	const src = "ADL := *PC; PC += 1; TMP := *{zeropage}"
	first, _ := Compile(src)
	for i := 0; i < 5; i++ {
		got, _ := Compile(src)
		if got != first {
			t.Fatalf("iteration %d: compile not deterministic: got %+v, want %+v", i, got, first)
		}
	}
}

// TestParseEndSetsOnlyResetCycleCounter verifies END in isolation asserts
// exactly one w0 bit.
func TestParseEndSetsOnlyResetCycleCounter(t *testing.T) {
	set, diags := Parse("END")
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !set.ResetCycleCounterEn {
		t.Error("END did not set ResetCycleCounterEn")
	}
	word := Assemble(set)
	if word.W0 != 1<<signal.BitW0ResetCycleCounterEn {
		t.Errorf("W0 = %04X, want exactly bit %d set", word.W0, signal.BitW0ResetCycleCounterEn)
	}
	if word.W1 != 0 || word.W2 != 0 {
		t.Errorf("END must not touch w1/w2, got w1=%04X w2=%04X", word.W1, word.W2)
	}
}

// TestParsePrimitivesAreIsolated verifies each sequencer primitive asserts
// only its own bit.
func TestParsePrimitivesAreIsolated(t *testing.T) {
	tests := []struct {
		stmt string
		bit  int
		word string // which control word the bit lives in: "w0", "w1", "w2"
	}{
		{"SP += 1", signal.BitW1SpIntIncEn, "w1"},
		{"SP -= 1", signal.BitW1SpIntDecEn, "w1"},
		{"PC += 1", signal.BitW2PCIncEn, "w2"},
		{"ALU_FLAGS_LD", signal.BitW2AluFlagsLd, "w2"},
		{"TEST_BRANCH_EN", signal.BitW0TestBranchEn, "w0"},
	}
	for _, tc := range tests {
		set, diags := Parse(tc.stmt)
		if diags != nil {
			t.Errorf("%q: unexpected diagnostics: %v", tc.stmt, diags)
		}
		word := Assemble(set)
		var got uint16
		switch tc.word {
		case "w0":
			got = word.W0
		case "w1":
			got = word.W1
		case "w2":
			got = word.W2
		}
		if got != 1<<uint(tc.bit) {
			t.Errorf("%q: %s = %04X, want exactly bit %d set", tc.stmt, tc.word, got, tc.bit)
		}
	}
}

// TestParseIsCaseInsensitive verifies upper/lower/mixed case statements
// compile identically.
func TestParseIsCaseInsensitive(t *testing.T) {
	lower, _ := Compile("a := *pc; pc += 1; end")
	upper, _ := Compile("A := *PC; PC += 1; END")
	mixed, _ := Compile("A := *Pc; Pc += 1; End")
	if lower != upper || lower != mixed {
		t.Errorf("case variants diverged: lower=%+v upper=%+v mixed=%+v", lower, upper, mixed)
	}
}

// TestParseUnrecognisedStatementIsDiagnostic verifies a garbled statement
// is reported rather than silently dropped or panicking.
func TestParseUnrecognisedStatementIsDiagnostic(t *testing.T) {
	_, diags := Parse("frobnicate(a)")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
}

// TestParseSetfVAndClrfBAreDiagnostics verifies the two flag combinations
// with no corresponding hardware line are reported, not silently ignored.
func TestParseSetfVAndClrfBAreDiagnostics(t *testing.T) {
	if _, diags := Parse("SETF(V)"); len(diags) != 1 {
		t.Errorf("SETF(V): expected 1 diagnostic, got %d", len(diags))
	}
	if _, diags := Parse("CLRF(B)"); len(diags) != 1 {
		t.Errorf("CLRF(B): expected 1 diagnostic, got %d", len(diags))
	}
	set, _ := Parse("SETF(B)")
	if !set.PBForceOneEn {
		t.Error("SETF(B) should force the break bit via PBForceOneEn")
	}
}

// TestCompileSec verifies the SEC worked example: "SETF(C); END" asserts
// exactly the carry-set and reset-cycle-counter bits in w0, with w1/w2
// untouched.
func TestCompileSec(t *testing.T) {
	word, diags := Compile("SETF(C); END")
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	wantW0 := uint16(1<<signal.BitW0PFlagCSetEn | 1<<signal.BitW0ResetCycleCounterEn)
	if word.W0 != wantW0 {
		t.Errorf("W0 = %04X, want %04X", word.W0, wantW0)
	}
	if word.W1 != 0 || word.W2 != 0 {
		t.Errorf("expected w1/w2 zero, got w1=%04X w2=%04X", word.W1, word.W2)
	}
}

// TestCompileAdc verifies an ALU call followed by ALU_RESULT keeps the
// op's field set to the op, not AluOut, per the ALU_RESULT precedence
// rule (§4.1 / §4.2.4).
func TestCompileAdc(t *testing.T) {
	word, diags := Compile("ADC(A, DL); A := ALU_RESULT; ALU_FLAGS_LD; END")
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	wantOp := uint16(signal.AluAdc) << signal.ShiftW2AluOp
	wantRegOut := uint16(signal.RegOutA) << signal.ShiftW2RegOut
	wantW2 := wantOp | wantRegOut | 1<<signal.BitW2RegALoadEn | 1<<signal.BitW2AluFlagsLd
	if word.W2 != wantW2 {
		t.Errorf("W2 = %04X, want %04X (AluOpKey should remain ADC, not OUT)", word.W2, wantW2)
	}
}

// TestCompileBeq verifies the branch cycle asserts address-load,
// increment, and test-branch bits together.
func TestCompileBeq(t *testing.T) {
	word, diags := Compile("ADL := *PC; PC += 1; TEST_BRANCH_EN; END")
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	wantW2 := uint16(1 << signal.BitW2PCIncEn)
	if word.W2 != wantW2 {
		t.Errorf("W2 = %04X, want %04X", word.W2, wantW2)
	}
	wantW1 := uint16(signal.AddrSourcePC)<<signal.ShiftW1AddrSource | 1<<signal.BitW1AdlLoadEn | 1<<signal.BitW1MemReadEn | 1<<signal.BitW1DataBusInEn
	if word.W1 != wantW1 {
		t.Errorf("W1 = %04X, want %04X", word.W1, wantW1)
	}
	wantW0 := uint16(1<<signal.BitW0AddrOutBusEn | 1<<signal.BitW0TestBranchEn | 1<<signal.BitW0ResetCycleCounterEn)
	if word.W0 != wantW0 {
		t.Errorf("W0 = %04X, want %04X", word.W0, wantW0)
	}
}

// TestParseIndexSuffixSetsAddSignal verifies "+x"/"+y" suffixes assert the
// corresponding address-adder enable alongside the base operand's effect.
func TestParseIndexSuffixSetsAddSignal(t *testing.T) {
	set, diags := Parse("A := *{latch} + x")
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !set.XAddToAddrEn {
		t.Error("expected XAddToAddrEn set for +x suffix")
	}
	if set.AddrSourceKey != signal.AddrSourceLatch {
		t.Errorf("AddrSourceKey = %v, want AddrSourceLatch", set.AddrSourceKey)
	}
}

// TestParseZeroPageAliasing verifies the {0x00, adl} alias resolves to the
// same code as {zeropage}, per §9.
func TestParseZeroPageAliasing(t *testing.T) {
	a, _ := Compile("A := *{zeropage}")
	b, _ := Compile("A := *{0x00, adl}")
	if a != b {
		t.Errorf("zeropage alias diverged: %+v vs %+v", a, b)
	}
}

// TestParseLatchAliasing verifies the {adh, adl} alias resolves to the
// same code as {latch}, per §9.
func TestParseLatchAliasing(t *testing.T) {
	a, _ := Compile("A := *{latch}")
	b, _ := Compile("A := *{adh, adl}")
	if a != b {
		t.Errorf("latch alias diverged: %+v vs %+v", a, b)
	}
}
