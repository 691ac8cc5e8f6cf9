// Package status prints the human-readable timer status lines.
package status

import (
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/break-timer/pkg/interfaces"
)

// Reporter writes status lines to out and debug lines to debug.
type Reporter struct {
	out   io.Writer
	debug io.Writer
	quiet bool
}

// Ensure Reporter implements StatusReporter
var _ interfaces.StatusReporter = (*Reporter)(nil)

// NewReporter creates a new status reporter. Debug output goes to stderr
// when BREAK_TIMER_DEBUG=1.
func NewReporter(out io.Writer, quiet bool) *Reporter {
	r := &Reporter{
		out:   out,
		quiet: quiet,
	}
	if os.Getenv("BREAK_TIMER_DEBUG") == "1" {
		r.debug = os.Stderr
	}
	return r
}

// SetDebugWriter overrides where debug lines go; nil disables them.
func (r *Reporter) SetDebugWriter(w io.Writer) {
	r.debug = w
}

// ReportStarted prints the startup line. It is printed even when quiet.
func (r *Reporter) ReportStarted(activeTime int) {
	_, _ = fmt.Fprintf(r.out, "Timer started. Next break in %d minutes.\n", activeTime)
}

// ReportRunning prints the per-minute progress line
func (r *Reporter) ReportRunning(elapsed, activeTime int) {
	if r.quiet {
		return
	}
	_, _ = fmt.Fprintf(r.out, "Timer is running for %d minutes. Next break in %d minutes.\n",
		elapsed, activeTime-elapsed)
}

// Debugf prints a debug line when debugging is enabled
func (r *Reporter) Debugf(format string, args ...interface{}) {
	if r.debug == nil {
		return
	}
	_, _ = fmt.Fprintf(r.debug, "break-timer: "+format+"\n", args...)
}
