package args

// Table indexes a spec list for constant-time lookup during parsing. It
// is read-only once built and doubles as the view usage rendering and
// suggestion lookups consume.
type Table struct {
	specs    []OptionSpec
	byName   map[string]*OptionSpec
	byAbbrev map[rune]*OptionSpec
	unnamed  *OptionSpec
}

// NewTable indexes specs by long name and by abbreviation. Exactly one
// spec must carry UnnamedName or the table is rejected. Listing the same
// name or abbreviation twice is a caller-contract violation; the indices
// resolve it last-write-wins rather than erroring.
func NewTable(specs []OptionSpec) (*Table, error) {
	t := &Table{
		specs:    specs,
		byName:   make(map[string]*OptionSpec, len(specs)),
		byAbbrev: make(map[rune]*OptionSpec, len(specs)),
	}

	for i := range t.specs {
		spec := &t.specs[i]
		t.byName[spec.Name] = spec
		if spec.Abbrev != NoAbbrev {
			t.byAbbrev[spec.Abbrev] = spec
		}
	}

	unnamed, ok := t.byName[UnnamedName]
	if !ok {
		return nil, newMissingUnnamedError()
	}
	t.unnamed = unnamed

	return t, nil
}

// Lookup resolves a long option name.
func (t *Table) Lookup(name string) (*OptionSpec, bool) {
	spec, ok := t.byName[name]
	return spec, ok
}

// LookupAbbrev resolves a single-character abbreviation.
func (t *Table) LookupAbbrev(r rune) (*OptionSpec, bool) {
	spec, ok := t.byAbbrev[r]
	return spec, ok
}

// Unnamed returns the positional collector's spec.
func (t *Table) Unnamed() *OptionSpec { return t.unnamed }

// Specs returns the declarations in caller-supplied order.
func (t *Table) Specs() []OptionSpec { return t.specs }

// names lists the long option names in declaration order, as suggestion
// candidates.
func (t *Table) names() []string {
	out := make([]string, 0, len(t.specs))
	for i := range t.specs {
		if t.specs[i].Name == UnnamedName {
			continue
		}
		out = append(out, t.specs[i].Name)
	}
	return out
}
