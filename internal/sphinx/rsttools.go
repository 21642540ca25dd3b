// Package sphinx builds and writes the per-language Sphinx source pages:
// one enums page, one page per class, and an index page listing every
// class page. Pages are plain value objects of rendered strings, built
// eagerly, passed through a text template, and discarded after writing.
package sphinx

import "strings"

// MakeChapter renders text as a reST chapter title, with an overline and
// underline of asterisks.
func MakeChapter(text string) string {
	return adorn(text, '*', true)
}

// MakeSection renders text as a reST section title, underlined with
// equal signs.
func MakeSection(text string) string {
	return adorn(text, '=', false)
}

func adorn(text string, char byte, overline bool) string {
	rule := strings.Repeat(string(char), len(text))
	lines := []string{text, rule}
	if overline {
		lines = append([]string{rule}, lines...)
	}
	return strings.Join(lines, "\n")
}
