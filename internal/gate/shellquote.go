package gate

import "strings"

// ShellQuote wraps s in single quotes for safe interpolation into an
// sh -c command line.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
