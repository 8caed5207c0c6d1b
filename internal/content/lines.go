package content

import "strings"

// SplitLines turns a newline-delimited textarea value into a list, dropping
// blank lines.
func SplitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// JoinLines is the inverse of SplitLines for display in a textarea.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}
