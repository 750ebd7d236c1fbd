package internal

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type catalogEntry struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
}

// WriteCatalog lists the demos in run order, as tab separated text or YAML.
func WriteCatalog(w io.Writer, format string) error {
	switch format {
	case "", FormatText:
		p := newPrinter(w)
		for _, d := range Demos {
			p.printf("%s\t%s\n", d.Name, d.Summary)
		}
		if p.err != nil {
			return fmt.Errorf("catalog: %w", p.err)
		}
		return nil
	case FormatYAML:
		entries := make([]catalogEntry, 0, len(Demos))
		for _, d := range Demos {
			entries = append(entries, catalogEntry{Name: d.Name, Summary: d.Summary})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("catalog: marshal: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("catalog: encoder close: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
