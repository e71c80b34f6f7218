package ghtoken

import "strings"

// chomp removes at most one trailing line terminator (LF, CRLF, or
// bare CR) from s. A second trailing terminator is left alone.
func chomp(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r") {
		return s[:len(s)-1]
	}
	return s
}
