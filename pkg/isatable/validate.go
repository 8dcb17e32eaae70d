package isatable

import "fmt"

// ValidationError reports a single opcode's violation of the hardware
// cycle budget (§4.4). Returned in a slice rather than a single error so a
// build can report every offending opcode in one pass.
type ValidationError struct {
	Opcode byte
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("opcode 0x%02X: %s", e.Opcode, e.Reason)
}

// Validate enforces §4.4: every opcode's cycle list must be non-empty-or-
// legal and within HardwareCycleBudget cycles. An empty cycle list is
// accepted (it compiles to an all-zero slot-0 word) but reported as a
// warning via the second return value, per §4.4's SHOULD-warn guidance.
func Validate(t Table) (errs []error, warnings []string) {
	for opcode := 0; opcode < 256; opcode++ {
		entry, ok := t[byte(opcode)]
		if !ok {
			continue
		}
		if len(entry.Cycles) > HardwareCycleBudget {
			errs = append(errs, &ValidationError{
				Opcode: byte(opcode),
				Reason: fmt.Sprintf("%d cycles exceeds the %d-cycle hardware budget", len(entry.Cycles), HardwareCycleBudget),
			})
		}
		if len(entry.Cycles) == 0 {
			warnings = append(warnings, fmt.Sprintf("opcode 0x%02X (%s): empty cycle list, ROM slot will be all-zero", opcode, entry.Mnemonic))
		}
	}
	return errs, warnings
}
