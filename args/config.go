package args

import "sort"

// Config is the outcome of one successful parse: the program invocation
// token plus every recorded option keyed by long name. Values keep the
// order they were encountered in. A failed parse never produces a Config,
// partial or otherwise.
type Config struct {
	program string
	options map[string][]string
}

// Program returns the invocation token (tokens[0]), which never
// participates in option matching.
func (c *Config) Program() string { return c.program }

// Option returns the values recorded for name. The boolean distinguishes
// "supplied with no values" (a switch that was set) from "not supplied".
func (c *Config) Option(name string) ([]string, bool) {
	values, ok := c.options[name]
	return values, ok
}

// MustOption returns the values for name, or fallback when absent.
func (c *Config) MustOption(name string, fallback []string) []string {
	if values, ok := c.options[name]; ok {
		return values
	}
	return fallback
}

// Value returns the first value recorded for name.
func (c *Config) Value(name string) (string, bool) {
	values, ok := c.options[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Has reports whether name was supplied, with or without values.
func (c *Config) Has(name string) bool {
	_, ok := c.options[name]
	return ok
}

// Positionals returns the tokens collected before the first flag, nil
// when none were recorded.
func (c *Config) Positionals() []string {
	return c.options[UnnamedName]
}

// Names returns every recorded option name in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.options))
	for name := range c.options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
