// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestAdvanceIsSafeForConcurrentCallers(t *testing.T) {
	r := New(1000)
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Advance(10)
		}()
	}
	wg.Wait()
	done, total := r.Snapshot()
	if done != 1000 || total != 1000 {
		t.Fatalf("expected 1000/1000 after all advances, got %d/%d", done, total)
	}
}

func TestWriteStatusFormatsThousandsSeparators(t *testing.T) {
	r := New(1000000)
	r.Advance(12345)
	var buf bytes.Buffer
	if err := r.WriteStatus(&buf); err != nil {
		t.Fatalf("WriteStatus returned an error: %v", err)
	}
	if !strings.Contains(buf.String(), "12,345") {
		t.Fatalf("expected a locale-formatted count, got %q", buf.String())
	}
}

func TestTerminalWidthFallsBackWhenNotATerminal(t *testing.T) {
	got := TerminalWidth(-1, 80)
	if got != 80 {
		t.Fatalf("expected the fallback width for an invalid fd, got %d", got)
	}
}
