package internal

import (
	"fmt"
	"io"
)

// printer remembers the first write error; every later call is a no-op.
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(line string) {
	p.printf("%s\n", line)
}

func (p *printer) blank() {
	p.printf("\n")
}
