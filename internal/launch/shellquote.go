package launch

import "strings"

// ShellQuote wraps a path in single quotes for a POSIX shell. Embedded
// single quotes close the quote, emit an escaped quote, and reopen
// ('  ->  '\''). The quoting must be exact: a wrong escape here is a
// command-injection or broken-path defect.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// cdCommand builds the shell command typed or scripted into a terminal to
// move it to dir.
func cdCommand(dir string) string {
	return "cd " + ShellQuote(dir)
}
