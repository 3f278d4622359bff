//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	fuzzy "github.com/ten3roberts/libcli/internal/fuzzy"
)

// Category: fuzzy (exported paths only)

func BenchmarkMatcher_FindBest(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	candidates := []string{
		"help", "version", "verbose", "config", "output", "input",
		"force", "debug", "port", "host", "timeout", "retry",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindBest("hep", candidates)
	}
}

func BenchmarkMatcher_FindBestMiss(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	candidates := []string{
		"help", "version", "verbose", "config", "output", "input",
		"force", "debug", "port", "host", "timeout", "retry",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindBest("zzzzzzzz", candidates)
	}
}

func BenchmarkBestOptionName(b *testing.B) {
	names := []string{
		"help", "version", "verbose", "config", "output", "input",
		"force", "debug", "port", "host", "timeout", "retry",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fuzzy.BestOptionName("outpt", names)
	}
}
