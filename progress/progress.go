// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package progress reports render progress without touching the
// render path: each call to Advance only increments a counter behind
// its own mutex, independent of whatever mutex (if any) guards the
// pixel sink it's reporting on.
//
// Nothing upstream has a long-running batch job with a progress bar,
// so this package has no direct analogue; formatting uses
// golang.org/x/text for locale-aware thousands separators.
// golang.org/x/sys/unix backs TerminalWidth, a separate helper;
// WriteStatus does not use the terminal width.
package progress

import (
	"io"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reporter tracks how many of a known total number of pixels have
// been written. Advance is safe to call concurrently from every
// rendering goroutine.
type Reporter struct {
	mu      sync.Mutex
	done    int64
	total   int64
	printer *message.Printer
}

// New creates a Reporter for a render of total pixels.
func New(total int) *Reporter {
	return &Reporter{total: int64(total), printer: message.NewPrinter(language.English)}
}

// Advance records n more completed pixels.
func (r *Reporter) Advance(n int) {
	r.mu.Lock()
	r.done += int64(n)
	r.mu.Unlock()
}

// Snapshot returns the done/total pixel counts as of this call.
func (r *Reporter) Snapshot() (done, total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done, r.total
}

// WriteStatus writes a one-line, locale-formatted progress report to
// w, e.g. "12,345 / 1,000,000 pixels (1.2%)".
func (r *Reporter) WriteStatus(w io.Writer) error {
	done, total := r.Snapshot()
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(done) / float64(total)
	}
	_, err := r.printer.Fprintf(w, "%d / %d pixels (%.1f%%)\n", done, total, pct)
	return err
}
