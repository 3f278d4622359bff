package args

import "errors"

// Conventional process exit codes for command-line front ends.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an error returned by Parse to a conventional exit code:
// 0 for nil, 2 for parse errors (command-line misuse), 1 for anything
// else. The mapping is advisory; printing and exiting stay with the
// caller.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return ExitUsage
	}
	return ExitFailure
}
