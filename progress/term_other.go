// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !darwin && !linux

package progress

// TerminalWidth always returns fallback on platforms without a
// unix-style terminal ioctl.
func TerminalWidth(fd int, fallback int) int { return fallback }
