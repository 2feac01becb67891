// Package testutil provides shared testing utilities used across the project.
package testutil

import "regexp"

// ansiRegex matches CSI escape sequences (ESC [ ... letter) for stripping
// colored output in tests.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI escape codes from a string, so CLI output can
// be asserted without color codes interfering.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
