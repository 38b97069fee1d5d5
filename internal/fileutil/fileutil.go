// Package fileutil provides small file and text helpers.
package fileutil

import (
	"os"
	"strings"
	"unicode"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// StripSpace removes every Unicode whitespace character from s. Base64
// asset files are written with line wrapping, so decoding needs the bare
// payload.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
