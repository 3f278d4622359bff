package args

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// GenerateUsage renders one line per spec, in caller-supplied order,
// filtered by the required flag: includeRequired selects required specs
// and includeUnrequired the rest. Each line shows the invocation forms,
// a required marker, and the description.
func GenerateUsage(specs []OptionSpec, includeRequired, includeUnrequired bool) string {
	width := 0
	for i := range specs {
		if !selected(&specs[i], includeRequired, includeUnrequired) {
			continue
		}
		if l := len(invocationForms(&specs[i])); l > width {
			width = l
		}
	}

	var b strings.Builder
	for i := range specs {
		spec := &specs[i]
		if !selected(spec, includeRequired, includeUnrequired) {
			continue
		}
		fmt.Fprintf(&b, "  %-*s  ", width, invocationForms(spec))
		if spec.Required {
			b.WriteString("(required) ")
		}
		b.WriteString(spec.Description)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteUsage writes GenerateUsage output to w.
func WriteUsage(w io.Writer, specs []OptionSpec, includeRequired, includeUnrequired bool) error {
	_, err := io.WriteString(w, GenerateUsage(specs, includeRequired, includeUnrequired))
	return err
}

// WriteOptionsTable renders every spec as an aligned table, one row per
// option: short form, long form, arity, required marker, description.
func WriteOptionsTable(w io.Writer, specs []OptionSpec) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Short", "Long", "Arity", "Required", "Description"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for i := range specs {
		spec := &specs[i]
		short, long := "", spec.Name
		if spec.Name != UnnamedName {
			long = "--" + spec.Name
			if spec.Abbrev != NoAbbrev {
				short = fmt.Sprintf("-%c", spec.Abbrev)
			}
		}
		required := ""
		if spec.Required {
			required = "yes"
		}
		table.Append([]string{short, long, spec.Policy.String(), required, spec.Description})
	}

	table.Render()
}

func selected(spec *OptionSpec, includeRequired, includeUnrequired bool) bool {
	if spec.Required {
		return includeRequired
	}
	return includeUnrequired
}

// invocationForms renders how an option is spelled on the command line:
// "-o, --output" with an abbreviation, "    --output" without. The
// positional collector shows its bare name.
func invocationForms(spec *OptionSpec) string {
	if spec.Name == UnnamedName {
		return spec.Name
	}
	if spec.Abbrev != NoAbbrev {
		return fmt.Sprintf("-%c, --%s", spec.Abbrev, spec.Name)
	}
	return "    --" + spec.Name
}
