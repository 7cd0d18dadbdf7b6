// pkg/core/lines.go
package core

import "strings"

// Lines splits command output into lines, dropping trailing carriage returns
func Lines(out string) []string {
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// FieldsN splits s on runs of whitespace into at most n fields. The last
// field holds the unsplit remainder with surrounding space trimmed.
func FieldsN(s string, n int) []string {
	s = strings.TrimSpace(s)
	if s == "" || n <= 0 {
		return nil
	}

	var fields []string
	for len(fields) < n-1 {
		idx := strings.IndexAny(s, " \t")
		if idx < 0 {
			break
		}
		fields = append(fields, s[:idx])
		s = strings.TrimLeft(s[idx:], " \t")
	}
	if s != "" {
		fields = append(fields, s)
	}
	return fields
}

// Collect appends p to out when it is a valid record
func Collect(out []Package, p Package) []Package {
	if !p.Valid() {
		return out
	}
	return append(out, p)
}
