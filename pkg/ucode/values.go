package ucode

import (
	"strings"

	"github.com/8502dev/ucasm/pkg/signal"
)

// muxRegisters are the register names permitted as an ALU mux operand or as
// a plain register-output value producer, per §4.2.1 / §4.2.2.
var muxRegisters = map[string]bool{
	"a": true, "x": true, "y": true, "sp": true, "p": true, "tmp": true, "dl": true,
}

// applyAluCall implements §4.2.1: an ALU function call OP(args), either
// bare (form 4) or on the rhs of an assignment (form 3).
func applyAluCall(opKey, argsStr string, set *signal.SignalSet) string {
	op := strings.TrimSpace(opKey)
	set.AluOpKey = signal.LookupAluOp(op)

	var msg string
	parts := splitArgs(argsStr)
	if len(parts) == 0 || parts[0] == "" {
		return "ALU call with no operands"
	}

	first := strings.TrimSpace(parts[0])
	if !muxRegisters[first] {
		msg = "ALU mux operand must be a register"
	} else {
		set.RegOutKey = signal.LookupRegOut(first)
	}
	if set.AluOpKey == signal.AluNone && msg == "" {
		msg = "unknown ALU operation"
	}

	if len(parts) == 2 {
		second := strings.TrimSpace(parts[1])
		if m := applyAluBInput(second, set); m != "" && msg == "" {
			msg = m
		}
	}
	return msg
}

// applyAluBInput implements the ALU call's second operand (§4.2.1): the
// implicit B-input, reached over the data bus rather than the reg-out mux
// the first operand already owns. A register name here (e.g. DL) needs no
// signal of its own — the value is already latched and wired straight into
// the ALU's B-input; only a memory or address-bus producer drives its own
// signals.
func applyAluBInput(second string, set *signal.SignalSet) string {
	lower := strings.ToLower(strings.TrimSpace(second))
	if muxRegisters[lower] {
		return ""
	}
	return applyValueProducer(second, set)
}

func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// normalizeBraceKey collapses whitespace around commas inside a brace key
// so "{adh, adl}" and "{adh,adl}" resolve identically.
func normalizeBraceKey(key string) string {
	parts := strings.Split(key, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ", ")
}

// applyValueProducer implements §4.2.2: the rhs semantics of an
// assignment, or the second operand of an ALU call.
func applyValueProducer(source string, set *signal.SignalSet) string {
	source = strings.TrimSpace(source)
	lower := strings.ToLower(source)

	if lower == "alu_result" {
		// alu_op_key=out means "consume a result without a new operation"
		// (§4.1). If an ALU call already ran earlier in this same cycle,
		// that op's field must survive — the accumulator is loading off
		// the live combinational output of that very operation, not a
		// value latched in a prior cycle.
		if set.AluOpKey == signal.AluNone {
			set.AluOpKey = signal.AluOut
		}
		return ""
	}
	if muxRegisters[lower] {
		set.RegOutKey = signal.LookupRegOut(lower)
		return ""
	}
	switch lower {
	case "pch":
		set.PchOutEn = true
		return ""
	case "pcl":
		set.PclOutEn = true
		return ""
	}

	if strings.HasPrefix(source, "*") {
		return applyMemoryAccess(source[1:], set, false)
	}
	if m := reBraceKey.FindStringSubmatch(source); m != nil {
		key := normalizeBraceKey(strings.ToLower(m[1]))
		set.AddrSourceKey = signal.LookupAddrSource(key)
		set.AddrOutBusEn = true
		return ""
	}
	return "unrecognised value producer"
}

// applyValueSink implements §4.2.3: the lhs semantics of an assignment.
func applyValueSink(dest string, set *signal.SignalSet) string {
	dest = strings.TrimSpace(dest)
	lower := strings.ToLower(dest)

	switch lower {
	case "a":
		set.RegALoadEn = true
		return ""
	case "x":
		set.RegXLoadEn = true
		return ""
	case "y":
		set.RegYLoadEn = true
		return ""
	case "sp":
		set.RegSPLoadEn = true
		return ""
	case "p":
		set.RegPLoadEn = true
		return ""
	case "tmp":
		set.TmpLoadEn = true
		return ""
	case "ir":
		set.LoadIrEn = true
		return ""
	case "adh":
		set.AdhLoadEn = true
		return ""
	case "adl":
		set.AdlLoadEn = true
		return ""
	case "pc":
		set.PCLoadEn = true
		return ""
	}

	if strings.HasPrefix(dest, "*") {
		return applyMemoryAccess(dest[1:], set, true)
	}
	return "unrecognised value sink"
}

// applyMemoryAccess implements the dereference forms shared by §4.2.2
// (*X as a read) and §4.2.3 (*X as a write). X is either a brace-wrapped
// address key or a bare pc/sp alias (for pc and stack respectively).
func applyMemoryAccess(x string, set *signal.SignalSet, write bool) string {
	x = strings.TrimSpace(x)
	lower := strings.ToLower(x)

	var key string
	switch {
	case lower == "pc":
		key = "pc"
	case lower == "sp":
		key = "stack"
	default:
		m := reBraceKey.FindStringSubmatch(x)
		if m == nil {
			return "unrecognised memory address form"
		}
		key = normalizeBraceKey(strings.ToLower(m[1]))
	}

	set.AddrSourceKey = signal.LookupAddrSource(key)
	set.AddrOutBusEn = true
	if write {
		set.MemWriteEn = true
		set.DataBusOutEn = true
	} else {
		set.MemReadEn = true
		set.DataBusInEn = true
	}
	return ""
}
