package internal

import (
	"fmt"
	"io"
	"log"
)

// Run writes the greeting and then every selected demo to w.
func Run(w io.Writer, cfg *Config) error {
	demos, err := selectDemos(cfg.Only)
	if err != nil {
		return err
	}

	p := newPrinter(w)
	p.println(Greeting)
	p.blank()
	if p.err != nil {
		return fmt.Errorf("greeting: %w", p.err)
	}

	for _, d := range demos {
		if cfg.Verbose {
			log.Printf("%srunning demo %q", LogPrefix, d.Name)
		}
		d.Run(p)
		if p.err != nil {
			return fmt.Errorf("demo %q: %w", d.Name, p.err)
		}
	}
	return nil
}

func selectDemos(only string) ([]Demo, error) {
	if only == "" {
		return Demos, nil
	}
	d, ok := FindDemo(only)
	if !ok {
		return nil, fmt.Errorf("unknown demo %q", only)
	}
	return []Demo{d}, nil
}
