package args

import (
	"os"
	"strings"

	"github.com/ten3roberts/libcli/termio"
)

// Parser resolves token lists against a fixed spec table. A Parser may be
// reused across calls; each Parse invocation collects into fresh state.
type Parser struct {
	table *Table
	log   *termio.Logger
}

// NewParser indexes specs once for repeated parsing.
func NewParser(specs []OptionSpec) (*Parser, error) {
	table, err := NewTable(specs)
	if err != nil {
		return nil, err
	}
	return &Parser{table: table}, nil
}

// WithLogger makes the parser trace window lifecycle at debug level.
func (p *Parser) WithLogger(log *termio.Logger) *Parser {
	p.log = log
	return p
}

// Table exposes the indexed specs, read-only.
func (p *Parser) Table() *Table { return p.table }

// Parse consumes tokens left to right. tokens[0] is the program
// invocation: it is recorded on the Config but never matched against
// specs. On failure the returned error is always a *ParseError and no
// Config is produced.
func (p *Parser) Parse(tokens []string) (*Config, error) {
	if len(tokens) == 0 {
		return nil, newMissingProgramError()
	}

	run := &parseRun{
		table:   p.table,
		log:     p.log,
		current: p.table.Unnamed(),
		parsed:  make(map[string][]string),
	}

	for _, token := range tokens[1:] {
		if err := run.step(token); err != nil {
			return nil, err
		}
	}
	if err := run.finalize(); err != nil {
		return nil, err
	}

	return &Config{program: tokens[0], options: run.parsed}, nil
}

// Parse indexes specs and resolves tokens against them in one call.
func Parse(tokens []string, specs []OptionSpec) (*Config, error) {
	p, err := NewParser(specs)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// ParseProcessArgs parses the current process's invocation arguments.
func ParseProcessArgs(specs []OptionSpec) (*Config, error) {
	return Parse(os.Args, specs)
}

// parseRun is the state of one Parse invocation: the option whose value
// window is currently open, the values collected for it so far, and
// everything recorded up to this point.
type parseRun struct {
	table   *Table
	log     *termio.Logger
	current *OptionSpec
	values  []string
	parsed  map[string][]string
}

func (r *parseRun) step(token string) error {
	switch {
	case strings.HasPrefix(token, "--"):
		return r.openLong(strings.TrimPrefix(token, "--"))
	case strings.HasPrefix(token, "-") && len(token) > 1:
		return r.openGroup(token[1:])
	default:
		// Plain value; a bare "-" lands here too (stdin convention).
		r.values = append(r.values, token)
		return nil
	}
}

// openLong closes the current window and switches collection to the named
// option.
func (r *parseRun) openLong(name string) error {
	if err := r.closeWindow(); err != nil {
		return err
	}
	spec, ok := r.table.Lookup(name)
	if !ok {
		return newUnknownOptionError(name, r.table)
	}
	r.open(spec)
	return nil
}

// openGroup closes the current window and walks an abbreviation group.
// Every character but the last denotes a zero-value occurrence recorded
// on the spot; the last character opens the new collection window.
func (r *parseRun) openGroup(group string) error {
	if err := r.closeWindow(); err != nil {
		return err
	}
	runes := []rune(group)
	for i, c := range runes {
		spec, ok := r.table.LookupAbbrev(c)
		if !ok {
			return newUnknownAbbrevError(c, r.table)
		}
		if i == len(runes)-1 {
			r.open(spec)
			return nil
		}
		if err := r.record(spec, nil); err != nil {
			return err
		}
	}
	return nil // unreachable: group always has a last character
}

func (r *parseRun) open(spec *OptionSpec) {
	r.current = spec
	r.values = nil
	r.trace("collecting values for %q", spec.Name)
}

// closeWindow validates the collected values against the open window's
// policy and records the occurrence.
func (r *parseRun) closeWindow() error {
	if !r.current.Policy.Check(len(r.values)) {
		return newArityError(r.current, len(r.values))
	}
	return r.record(r.current, r.values)
}

// record inserts one occurrence into the result, enforcing the duplicate
// rule: only switches may be recorded more than once.
func (r *parseRun) record(spec *OptionSpec, values []string) error {
	if _, seen := r.parsed[spec.Name]; seen && !spec.Policy.IsSwitch() {
		return newDuplicateError(spec.Name)
	}
	if values == nil {
		values = []string{}
	}
	r.parsed[spec.Name] = values
	r.trace("collected %d values for %q", len(values), spec.Name)
	return nil
}

// finalize closes the last open window, then checks required options in
// declaration order.
func (r *parseRun) finalize() error {
	if err := r.closeWindow(); err != nil {
		return err
	}
	for _, spec := range r.table.Specs() {
		if !spec.Required {
			continue
		}
		if _, ok := r.parsed[spec.Name]; !ok {
			return newMissingRequiredError(spec.Name)
		}
	}
	return nil
}

func (r *parseRun) trace(format string, args ...any) {
	if r.log != nil {
		r.log.Debug(format, args...)
	}
}
