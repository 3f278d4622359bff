//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	"github.com/ten3roberts/libcli/args"
)

// Category: parser

func buildSpecs() []args.OptionSpec {
	return []args.OptionSpec{
		args.Unnamed("Input files", false, args.AtLeast(1)),
		{Abbrev: 'o', Name: "output", Description: "Output file", Required: true, Policy: args.Exact(1)},
		args.Switch('r', "recursive", "Recurse into directories"),
		args.Switch('v', "verbose", "Verbose output"),
		{Abbrev: 'n', Name: "threads", Description: "Worker count", Policy: args.Exact(1)},
	}
}

func BenchmarkParseSimple(b *testing.B) {
	parser, err := args.NewParser(buildSpecs())
	if err != nil {
		b.Fatal(err)
	}
	tokens := []string{"./bench", "in.txt", "--output", "out.txt"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		config, err := parser.Parse(tokens)
		if err != nil || config == nil {
			b.Fatal(err)
		}
		if v, ok := config.Value("output"); !ok || v != "out.txt" {
			b.Fatalf("output not parsed")
		}
	}
}

func BenchmarkParseGroupedAbbrevs(b *testing.B) {
	parser, err := args.NewParser(buildSpecs())
	if err != nil {
		b.Fatal(err)
	}
	tokens := []string{"./bench", "in.txt", "--output", "out.txt", "-rvn", "4"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		config, err := parser.Parse(tokens)
		if err != nil || config == nil {
			b.Fatal(err)
		}
		if !config.Has("verbose") {
			b.Fatalf("verbose not parsed")
		}
	}
}

func BenchmarkParseManyValues(b *testing.B) {
	parser, err := args.NewParser(buildSpecs())
	if err != nil {
		b.Fatal(err)
	}
	tokens := []string{
		"./bench",
		"a.txt", "b.txt", "c.txt", "d.txt", "e.txt",
		"f.txt", "g.txt", "h.txt", "i.txt", "j.txt",
		"--output", "out.txt",
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		config, err := parser.Parse(tokens)
		if err != nil || config == nil {
			b.Fatal(err)
		}
		if len(config.Positionals()) != 10 {
			b.Fatalf("positionals not parsed")
		}
	}
}

func BenchmarkParseManyOptions(b *testing.B) {
	specs := []args.OptionSpec{
		args.Unnamed("Input files", false, args.Any()),
		{Abbrev: 'a', Name: "alpha", Description: "", Policy: args.Exact(1)},
		{Abbrev: 'b', Name: "beta", Description: "", Policy: args.Exact(1)},
		{Abbrev: 'c', Name: "gamma", Description: "", Policy: args.Exact(1)},
		{Abbrev: 'd', Name: "delta", Description: "", Policy: args.Exact(1)},
		{Abbrev: 'e', Name: "epsilon", Description: "", Policy: args.Exact(1)},
		args.Switch('v', "verbose", ""),
		args.Switch('q', "quiet", ""),
		args.Switch('f', "force", ""),
		args.Switch('x', "dry-run", ""),
	}
	parser, err := args.NewParser(specs)
	if err != nil {
		b.Fatal(err)
	}
	tokens := []string{
		"./bench",
		"--alpha", "1",
		"--beta", "2",
		"--gamma", "3",
		"-v",
		"-q",
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		config, err := parser.Parse(tokens)
		if err != nil || config == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseErrorSuggestion(b *testing.B) {
	parser, err := args.NewParser(buildSpecs())
	if err != nil {
		b.Fatal(err)
	}
	tokens := []string{"./bench", "--outpt", "out.txt"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(tokens); err == nil {
			b.Fatal("expected error")
		}
	}
}

func BenchmarkTableConstruction(b *testing.B) {
	specs := buildSpecs()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := args.NewTable(specs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseColdStart(b *testing.B) {
	// Spec indexing and parsing per iteration, the one-shot Parse path.
	specs := buildSpecs()
	tokens := []string{"./bench", "in.txt", "--output", "out.txt"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		config, err := args.Parse(tokens, specs)
		if err != nil || config == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateUsage(b *testing.B) {
	specs := buildSpecs()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := args.GenerateUsage(specs, true, true); out == "" {
			b.Fatal("empty usage")
		}
	}
}
