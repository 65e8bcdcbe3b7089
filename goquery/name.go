package goquery

import (
	"regexp"
	"strings"
)

var initialShape = regexp.MustCompile(`^[A-Za-z]\.?$`)

// shortenName turns a full recipient name into a short label: the first
// name, keeping up to two leading initials for disambiguation, and
// abbreviating a lone final surname ("F Bloggs" becomes "F B."). A short
// label correlates with the printed route sheet without spreading full
// names into the output file.
func shortenName(full string) string {
	names := strings.Fields(full)
	if len(names) == 0 {
		return ""
	}
	if len(names) == 1 {
		return names[0]
	}
	var parts []string
	for i := 0; i < 2; i++ {
		if i == len(names)-1 {
			r := []rune(names[i])
			parts = append(parts, string(r[0])+".")
			break
		}
		parts = append(parts, names[i])
		if !initialShape.MatchString(names[i]) {
			break
		}
	}
	return strings.Join(parts, " ")
}
