package args

import (
	"fmt"
	"unicode/utf8"

	"github.com/ten3roberts/libcli/internal/fuzzy"
)

// ErrorType discriminates parse failures.
type ErrorType string

const (
	// ErrorTypeMissingUnnamed: the spec list declares no positional collector.
	ErrorTypeMissingUnnamed ErrorType = "missing_unnamed_spec"
	// ErrorTypeMissingProgram: the token list is empty, so there is no
	// program invocation token to skip.
	ErrorTypeMissingProgram ErrorType = "missing_program"
	// ErrorTypeUnknownOption: a --name token matched no spec.
	ErrorTypeUnknownOption ErrorType = "unknown_option"
	// ErrorTypeUnknownAbbrev: a character in a -xyz group matched no spec.
	ErrorTypeUnknownAbbrev ErrorType = "unknown_abbreviation"
	// ErrorTypeArityViolation: an option's collected value count broke its policy.
	ErrorTypeArityViolation ErrorType = "arity_violation"
	// ErrorTypeDuplicateOption: a non-switch option was supplied twice.
	ErrorTypeDuplicateOption ErrorType = "duplicate_option"
	// ErrorTypeMissingRequired: a required option never appeared.
	ErrorTypeMissingRequired ErrorType = "missing_required_option"
)

// ParseError is the single failure type produced by parsing. Parsing is
// fail-fast, so exactly one of these is returned per failed parse, and no
// partial Config accompanies it.
type ParseError struct {
	Type    ErrorType
	Message string

	// Option is the long name involved, when one is known.
	Option string
	// Token is the offending token text, for unknown long options.
	Token string
	// Abbrev is the offending character, for unknown abbreviations.
	Abbrev rune
	// Count and Policy describe an arity violation.
	Count  int
	Policy Policy
	// Suggestion is a near-miss option name, when one is close enough.
	Suggestion string
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean '--%s'?)", e.Message, e.Suggestion)
	}
	return e.Message
}

// WithSuggestion attaches a did-you-mean candidate.
func (e *ParseError) WithSuggestion(name string) *ParseError {
	e.Suggestion = name
	return e
}

func newMissingUnnamedError() *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingUnnamed,
		Message: fmt.Sprintf("no spec for unnamed arguments found: declare one named %q", UnnamedName),
	}
}

func newMissingProgramError() *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingProgram,
		Message: "empty token list: token 0 must be the program invocation",
	}
}

func newUnknownOptionError(name string, t *Table) *ParseError {
	err := &ParseError{
		Type:    ErrorTypeUnknownOption,
		Option:  name,
		Token:   "--" + name,
		Message: fmt.Sprintf("unknown option: --%s", name),
	}
	if best, ok := fuzzy.BestOptionName(name, t.names()); ok {
		err.Suggestion = best
	}
	return err
}

func newUnknownAbbrevError(r rune, t *Table) *ParseError {
	err := &ParseError{
		Type:    ErrorTypeUnknownAbbrev,
		Abbrev:  r,
		Message: fmt.Sprintf("unknown abbreviation: -%c", r),
	}
	// Single characters carry no edit-distance signal; suggest an option
	// whose long name starts with the character instead.
	for _, name := range t.names() {
		if first, _ := utf8.DecodeRuneInString(name); first == r {
			err.Suggestion = name
			break
		}
	}
	return err
}

func newArityError(spec *OptionSpec, count int) *ParseError {
	return &ParseError{
		Type:    ErrorTypeArityViolation,
		Option:  spec.Name,
		Count:   count,
		Policy:  spec.Policy,
		Message: fmt.Sprintf("option %q collected %d values, want %s", spec.Name, count, spec.Policy),
	}
}

func newDuplicateError(name string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeDuplicateOption,
		Option:  name,
		Message: fmt.Sprintf("duplicate option: %q", name),
	}
}

func newMissingRequiredError(name string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingRequired,
		Option:  name,
		Message: fmt.Sprintf("missing required option: %q", name),
	}
}
