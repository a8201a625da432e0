// Package sanitize cleans user-supplied text (test titles, error messages)
// before it is embedded in XML attributes or bodies.
package sanitize

import (
	"regexp"
	"strings"
)

// patternAnsiEscapes matches ANSI/terminal color escape sequences, including
// cursor and erase controls emitted by test runners.
var patternAnsiEscapes = regexp.MustCompile(`[\x1b\x9b][[()#;?]*([0-9]{1,4}(;[0-9]{0,4})*)?[0-9A-ORZcf-nqry=><]`)

// invalidCharacters are raw control characters removed by literal replacement.
// Inputs are arbitrary free text, so they are never used to build a pattern.
var invalidCharacters = []string{""}

// Strip removes terminal color escape sequences and invalid control
// characters from the given string. It is a pure function and never fails;
// an empty input yields an empty output.
func Strip(input string) string {
	output := patternAnsiEscapes.ReplaceAllString(input, "")
	for _, char := range invalidCharacters {
		output = strings.ReplaceAll(output, char, "")
	}

	return output
}
