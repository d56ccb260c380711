// Package host models the engine-side collaborators that sit next to the codec:
// the debug-print hook and the thread-sleep primitive.
//
// The hook is bound once when the Host is built and never changes afterwards, so a
// *Host may be shared by any number of goroutines. A Host without a printer (or a nil
// *Host) silently drops debug output.
package host

import (
	"fmt"
	"time"

	"github.com/woozymasta/lz4block/internal/options"
)

// DebugPrinter receives formatted diagnostic text. *log.Logger satisfies it.
type DebugPrinter interface {
	Printf(format string, args ...any)
}

// DebugPrinterFunc adapts a plain function to DebugPrinter.
type DebugPrinterFunc func(format string, args ...any)

// Printf implements DebugPrinter.
func (f DebugPrinterFunc) Printf(format string, args ...any) {
	f(format, args...)
}

// Host holds the process-wide hooks. Build it with New.
type Host struct {
	printer DebugPrinter
	sleep   func(time.Duration)
}

// Option configures a Host.
type Option = options.Option[*Host]

// WithDebugPrinter installs the debug-print hook. A nil printer disables debug output.
func WithDebugPrinter(p DebugPrinter) Option {
	return options.NoError(func(h *Host) {
		h.printer = p
	})
}

// WithSleeper replaces the platform sleep. A nil function keeps time.Sleep.
func WithSleeper(sleep func(time.Duration)) Option {
	return options.NoError(func(h *Host) {
		if sleep != nil {
			h.sleep = sleep
		}
	})
}

// New builds a Host. Options are applied in order; later ones win.
func New(opts ...Option) *Host {
	h := &Host{sleep: time.Sleep}
	_ = options.Apply(h, opts...) // host options cannot fail

	return h
}

// DebugEnabled reports whether a debug printer is installed.
func (h *Host) DebugEnabled() bool {
	return h != nil && h.printer != nil
}

// Debugf formats a diagnostic line and forwards it to the installed printer, if any.
func (h *Host) Debugf(format string, args ...any) {
	if !h.DebugEnabled() {
		return
	}

	h.printer.Printf(format, args...)
}

// Sleep pauses the calling goroutine for d.
func (h *Host) Sleep(d time.Duration) {
	if h == nil || h.sleep == nil {
		time.Sleep(d)
		return
	}

	h.sleep(d)
}

// String describes the bound hooks.
func (h *Host) String() string {
	return fmt.Sprintf("host(debug=%t)", h.DebugEnabled())
}
