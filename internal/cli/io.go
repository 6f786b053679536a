package cli

import (
	"fmt"
	"io"
)

// IO splits command output: results go to stdout, diagnostics to stderr.
//
// Warnings report a result the user asked for but did not fully get: a
// setting clamped into range, or a suggestion list cut short by max_steps
// or the timeout. They are printed before the first result and again after
// the last one, so "siteswap suggest ... | head" still shows them, and any
// warning makes the exit code 1.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []warning
	flushed  bool
}

type warning struct {
	issue string
	fix   string
}

func (w warning) String() string {
	return w.issue + " (" + w.fix + ")"
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn records a warning. issue says what was cut or changed, fix how to
// get the full result, e.g. Warn("search stopped early", "raise max_steps").
func (o *IO) Warn(issue, fix string) {
	o.warnings = append(o.warnings, warning{issue: issue, fix: fix})
}

// Println writes a result line to stdout.
func (o *IO) Println(a ...any) {
	o.flushWarnings()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted results to stdout.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarnings()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish repeats the warnings after the results and returns the exit code:
// 1 if anything was warned about, 0 otherwise.
func (o *IO) Finish() int {
	// Nothing was printed yet; this is the leading copy.
	o.flushWarnings()

	o.printWarnings()

	if len(o.warnings) > 0 {
		return 1
	}

	return 0
}

// flushWarnings prints the leading copy of the warnings once.
func (o *IO) flushWarnings() {
	if o.flushed || len(o.warnings) == 0 {
		return
	}

	o.printWarnings()
	o.flushed = true
}

func (o *IO) printWarnings() {
	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
}
