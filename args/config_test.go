//nolint:testpackage // using package name 'args' to access unexported fields for testing
package args

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testConfig() *Config {
	return &Config{
		program: "./app",
		options: map[string][]string{
			UnnamedName: {"in.txt", "extra.txt"},
			"output":    {"out.txt", "alt.txt"},
			"verbose":   {},
		},
	}
}

func TestConfig_Option(t *testing.T) {
	config := testConfig()

	values, ok := config.Option("output")
	if !ok {
		t.Fatalf("Expected output to be set")
	}
	if diff := cmp.Diff([]string{"out.txt", "alt.txt"}, values); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	values, ok = config.Option("missing")
	if ok {
		t.Errorf("Expected missing option to report absent")
	}
	if values != nil {
		t.Errorf("Expected nil values for absent option, got %v", values)
	}

	values, ok = config.Option("verbose")
	if !ok {
		t.Errorf("Expected a recorded switch to report present")
	}
	if len(values) != 0 {
		t.Errorf("Expected empty values for a switch, got %v", values)
	}
}

func TestConfig_MustOption(t *testing.T) {
	config := testConfig()

	if diff := cmp.Diff([]string{"out.txt", "alt.txt"}, config.MustOption("output", nil)); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	fallback := []string{"default"}
	if diff := cmp.Diff(fallback, config.MustOption("missing", fallback)); diff != "" {
		t.Errorf("Fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Value(t *testing.T) {
	config := testConfig()

	v, ok := config.Value("output")
	if !ok || v != "out.txt" {
		t.Errorf("Expected first value 'out.txt', got %q (ok=%v)", v, ok)
	}

	if _, ok := config.Value("verbose"); ok {
		t.Errorf("Expected no value for a switch")
	}
	if _, ok := config.Value("missing"); ok {
		t.Errorf("Expected no value for an absent option")
	}
}

func TestConfig_Has(t *testing.T) {
	config := testConfig()

	if !config.Has("verbose") {
		t.Errorf("Expected Has to see a recorded switch")
	}
	if config.Has("missing") {
		t.Errorf("Expected Has to miss an absent option")
	}
}

func TestConfig_Positionals(t *testing.T) {
	config := testConfig()
	if diff := cmp.Diff([]string{"in.txt", "extra.txt"}, config.Positionals()); diff != "" {
		t.Errorf("Positionals mismatch (-want +got):\n%s", diff)
	}

	empty := &Config{program: "./app", options: map[string][]string{}}
	if got := empty.Positionals(); got != nil {
		t.Errorf("Expected nil positionals when none were recorded, got %v", got)
	}
}

func TestConfig_Names(t *testing.T) {
	config := testConfig()
	if diff := cmp.Diff([]string{UnnamedName, "output", "verbose"}, config.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Program(t *testing.T) {
	if got := testConfig().Program(); got != "./app" {
		t.Errorf("Expected program './app', got %q", got)
	}
}
