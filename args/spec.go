package args

import "fmt"

// NoAbbrev marks a spec that has no single-character form.
const NoAbbrev rune = 0

// UnnamedName is the reserved name of the positional collector, the
// pseudo-option that receives tokens appearing before the first flag.
const UnnamedName = "(unnamed)"

// OptionSpec declares a single option. Specs are built by the caller,
// never mutated by the library, and may be reused across parses.
type OptionSpec struct {
	// Abbrev is the single-character form, or NoAbbrev. Uniqueness within
	// one spec list is the caller's responsibility.
	Abbrev rune
	// Name is the long form, non-empty and unique within one spec list.
	Name string
	// Description is free text for usage rendering.
	Description string
	// Required makes absence after parsing a hard error.
	Required bool
	// Policy governs how many values the option collects.
	Policy Policy
}

// Unnamed returns the spec for the positional collector. Every spec list
// passed to Parse must contain exactly one of these.
func Unnamed(description string, required bool, policy Policy) OptionSpec {
	return OptionSpec{
		Abbrev:      NoAbbrev,
		Name:        UnnamedName,
		Description: description,
		Required:    required,
		Policy:      policy,
	}
}

// Switch returns a zero-value option whose presence alone is the signal.
func Switch(abbrev rune, name, description string) OptionSpec {
	return OptionSpec{Abbrev: abbrev, Name: name, Description: description, Policy: Exact(0)}
}

type policyKind int

const (
	policyExact policyKind = iota
	policyAtLeast
	policyAtMost
	policyAny
)

// Policy bounds the number of values one occurrence of an option may
// carry. The zero value is Exact(0), a switch.
type Policy struct {
	kind policyKind
	n    int
}

// Exact requires exactly n values.
func Exact(n int) Policy { return Policy{kind: policyExact, n: n} }

// AtLeast requires n or more values.
func AtLeast(n int) Policy { return Policy{kind: policyAtLeast, n: n} }

// AtMost allows up to n values.
func AtMost(n int) Policy { return Policy{kind: policyAtMost, n: n} }

// Any places no bound on the value count.
func Any() Policy { return Policy{kind: policyAny} }

// Check reports whether count satisfies the policy.
func (p Policy) Check(count int) bool {
	switch p.kind {
	case policyExact:
		return count == p.n
	case policyAtLeast:
		return count >= p.n
	case policyAtMost:
		return count <= p.n
	default:
		return true
	}
}

// IsSwitch reports whether the policy denotes a presence-only option.
// Only Exact(0) qualifies; Any() and AtMost(n) do not, even though they
// accept zero values.
func (p Policy) IsSwitch() bool { return p.kind == policyExact && p.n == 0 }

// String describes the bound, e.g. "exactly 1" or "at most 2".
func (p Policy) String() string {
	switch p.kind {
	case policyExact:
		return fmt.Sprintf("exactly %d", p.n)
	case policyAtLeast:
		return fmt.Sprintf("at least %d", p.n)
	case policyAtMost:
		return fmt.Sprintf("at most %d", p.n)
	default:
		return "any number"
	}
}
