// Package text provides language metadata and text helpers shared by the UI and services.
package text

import "strings"

// Preview collapses whitespace and truncates s to at most n runes for log lines.
// A trailing "..." marks truncation.
func Preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
