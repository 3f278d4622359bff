// Package args implements declarative command-line argument parsing.
//
// Callers describe their options as a list of OptionSpec values and hand
// them to Parse together with the raw token list. Options are matched by
// long name (--output) or by single-character abbreviation (-o), and
// abbreviations combine into groups (-rvn). Every token that does not
// start with a dash is collected as a value for the most recently seen
// option; tokens appearing before any option belong to the reserved
// positional collector named "(unnamed)", which every spec list must
// declare.
//
// How many values an option may collect is governed by its arity Policy:
// Exact, AtLeast, AtMost, or Any. An Exact(0) option is a switch whose
// presence alone is the signal, and repeating it is harmless; any other
// option may appear at most once. A lone "-" counts as a plain value (the
// usual stdin convention), and "-1" style tokens are read as abbreviation
// groups, not negative numbers.
//
// Parsing is fail-fast: the first violation aborts and surfaces as a
// *ParseError carrying a typed ErrorType. The library never prints or
// exits; presentation stays with the caller, with GenerateUsage and
// ExitCode available as building blocks.
package args
