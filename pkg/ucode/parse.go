// Package ucode compiles one symbolic micro-op cycle string into the three
// 16-bit control words the ROM planes store for it. Parse (C2) and Assemble
// (C3) are both pure: no I/O, no state carried between cycles.
package ucode

import (
	"regexp"
	"strings"

	"github.com/8502dev/ucasm/pkg/signal"
)

// Diagnostic is a non-fatal parser warning: an unrecognised token in an
// otherwise well-formed statement. Per §7, the offending piece's signals
// are left clear; the diagnostic exists purely for visibility.
type Diagnostic struct {
	Statement string
	Message   string
}

var (
	reAssign   = regexp.MustCompile(`^(.+?):=(.+)$`)
	reCall     = regexp.MustCompile(`^([a-z_][a-z0-9_]*)\(([^)]*)\)$`)
	reFlagStr  = regexp.MustCompile(`^(clrf|setf)\(([a-z])\)$`)
	reBraceKey = regexp.MustCompile(`^\{([^}]*)\}$`)
)

// Parse tokenises and structurally parses one symbolic cycle string into a
// SignalSet, per §4.2. The empty string is legal and yields the zero value.
func Parse(microOp string) (signal.SignalSet, []Diagnostic) {
	var set signal.SignalSet
	var diags []Diagnostic

	for _, raw := range strings.Split(microOp, ";") {
		stmt := normalize(raw)
		if stmt == "" {
			continue
		}
		if d := parseStatement(stmt, &set); d != "" {
			diags = append(diags, Diagnostic{Statement: stmt, Message: d})
		}
	}
	return set, diags
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// spaceless strips all whitespace, used to match the whole-statement
// primitive forms regardless of how the author spaced them.
func spaceless(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// parseStatement dispatches one trimmed, lowercased statement to the forms
// in §4.2, tried in order. It returns a non-empty diagnostic message on an
// unrecognised token.
func parseStatement(stmt string, set *signal.SignalSet) string {
	if msg, handled := parsePrimitive(stmt, set); handled {
		return msg
	}
	if m := reFlagStr.FindStringSubmatch(spaceless(stmt)); m != nil {
		return applyFlagStrobe(m[1], m[2], set)
	}
	if m := reAssign.FindStringSubmatch(stmt); m != nil {
		lhs := strings.TrimSpace(m[1])
		rhs := strings.TrimSpace(m[2])
		return parseAssignment(lhs, rhs, set)
	}
	// Bare call: OP(args) evaluated for its ALU side effect, per §4.2 form 4.
	if m := reCall.FindStringSubmatch(spaceless(stmt)); m != nil {
		return applyAluCall(m[1], m[2], set)
	}
	return "unrecognised statement"
}

// parsePrimitive handles the whole-statement sequencer primitives of §4.2
// form 1. The second return value is true only if stmt matched one of them
// exactly (ignoring whitespace); anything else falls through to the later
// forms.
func parsePrimitive(stmt string, set *signal.SignalSet) (string, bool) {
	switch spaceless(stmt) {
	case "sp+=1":
		set.SpIntIncEn = true
		return "", true
	case "sp-=1":
		set.SpIntDecEn = true
		return "", true
	case "pc+=1":
		set.PCIncEn = true
		return "", true
	case "end":
		set.ResetCycleCounterEn = true
		return "", true
	case "alu_flags_ld":
		set.AluFlagsLd = true
		return "", true
	case "test_branch_en":
		set.TestBranchEn = true
		return "", true
	}
	return "", false
}

// applyFlagStrobe implements §4.2 form 2: CLRF(f) / SETF(f) for
// f ∈ {c, d, i, v, b}. SETF(b) forces the break bit one; the hardware has
// no p_v_set_en or p_b_clr_en line, so those two combinations are reported
// as diagnostics rather than silently accepted (§9 open question (a)).
func applyFlagStrobe(op, flag string, set *signal.SignalSet) string {
	if op == "setf" {
		switch flag {
		case "c":
			set.PFlagCSetEn = true
		case "d":
			set.PFlagDSetEn = true
		case "i":
			set.PFlagISetEn = true
		case "b":
			set.PBForceOneEn = true
		case "v":
			return "no hardware line for SETF(V)"
		default:
			return "unknown flag in SETF"
		}
		return ""
	}
	switch flag {
	case "c":
		set.PFlagCClrEn = true
	case "d":
		set.PFlagDClrEn = true
	case "i":
		set.PFlagIClrEn = true
	case "v":
		set.PFlagVClrEn = true
	case "b":
		return "no hardware line for CLRF(B)"
	default:
		return "unknown flag in CLRF"
	}
	return ""
}

// parseAssignment implements §4.2 form 3: dest := source.
func parseAssignment(lhs, rhs string, set *signal.SignalSet) string {
	source, sourceIdx := stripIndexSuffix(rhs)
	dest, destIdx := stripIndexSuffix(lhs)
	if sourceIdx != "" {
		applyIndex(sourceIdx, set)
	}
	if destIdx != "" {
		applyIndex(destIdx, set)
	}

	if m := reCall.FindStringSubmatch(spaceless(source)); m != nil {
		return applyAluCall(m[1], m[2], set)
	}

	msg := applyValueProducer(source, set)
	if msg != "" {
		return msg
	}
	return applyValueSink(dest, set)
}

// stripIndexSuffix removes a trailing "+ x" / "+ y" indexing suffix,
// returning the remaining operand and which index register was named (or
// "" if none).
func stripIndexSuffix(operand string) (string, string) {
	s := spaceless(operand)
	switch {
	case strings.HasSuffix(s, "+x"):
		return strings.TrimSpace(operand[:strings.LastIndex(operand, "+")]), "x"
	case strings.HasSuffix(s, "+y"):
		return strings.TrimSpace(operand[:strings.LastIndex(operand, "+")]), "y"
	}
	return strings.TrimSpace(operand), ""
}

func applyIndex(which string, set *signal.SignalSet) {
	switch which {
	case "x":
		set.XAddToAddrEn = true
	case "y":
		set.YAddToAddrEn = true
	}
}
