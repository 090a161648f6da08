package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/unbrew/pkg/ui/styles"
)

// Progress line formats. The verbs are stable; scripts grep for them.
const (
	MsgRemoving     = "Removing %s"
	MsgFoundUnused  = "Found new unused dep: %s"
	MsgIsDependency = "%s is some other formula dep"
	MsgError        = "Error: %v"
)

// Printer writes command output and cascade progress to one writer.
type Printer struct {
	out    io.Writer
	styles *styles.Styles
}

// NewPrinter creates a printer for w. FormatAuto styles only real terminals.
func NewPrinter(w io.Writer, f Format) *Printer {
	plain := Resolve(f, w) != FormatTerminal
	return &Printer{out: w, styles: styles.New(w, plain)}
}

// Formula prints a bare formula name. It is never styled so that list
// output can be piped into other commands.
func (p *Printer) Formula(name string) {
	fmt.Fprintln(p.out, name)
}

// Removing reports that name is about to be removed.
func (p *Printer) Removing(name string) {
	p.line("Removing", MsgRemoving, name)
}

// FoundUnused reports a formula orphaned by this run.
func (p *Printer) FoundUnused(name string) {
	p.line("Found", MsgFoundUnused, name)
}

// IsDependency reports that name is still required by another formula.
func (p *Printer) IsDependency(name string) {
	p.line("Dependency", MsgIsDependency, name)
}

// Error prints err as a single styled line.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out, p.styles.Render("Error", fmt.Sprintf(MsgError, err)))
}

func (p *Printer) line(style, format, name string) {
	text := fmt.Sprintf(format, p.styles.Render("Formula", name))
	fmt.Fprintln(p.out, p.styles.Render(style, text))
}
