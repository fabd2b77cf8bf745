// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build darwin || linux

package progress

import "golang.org/x/sys/unix"

// TerminalWidth returns the current terminal's column width, or
// fallback if it cannot be determined (not a terminal, or the ioctl
// fails).
func TerminalWidth(fd int, fallback int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return fallback
	}
	return int(ws.Col)
}
