// Copyright 2024 The clip Authors.

package clip

import "strings"

// Code for joining rendered items into a single string.

// A Formatter describes how a sequence of rendered items is joined into
// one string. All fields are optional; the empty Formatter concatenates
// items with nothing between them.
type Formatter struct {
	VeryStart string // before the whole sequence
	VeryEnd   string // after the whole sequence
	Start     string // before each item
	End       string // after each item
	Middle    string // between consecutive items

	// NewLineChars, if non-empty, is prepended to every line of an item
	// after its first, so a multi-line item stays visually subordinate
	// to its own Start prefix.
	NewLineChars string
}

// RenderFunc renders the item at index i, or reports false to skip it.
type RenderFunc func(i int) (string, bool)

// Fmt joins n items rendered by render. Skipped items produce no
// separator. The result is always VeryStart + items + VeryEnd, even
// when n is zero.
func (f Formatter) Fmt(n int, render RenderFunc) string {
	var b strings.Builder
	b.WriteString(f.VeryStart)
	first := true
	for i := 0; i < n; i++ {
		item, ok := render(i)
		if !ok {
			continue
		}
		if !first {
			b.WriteString(f.Middle)
		}
		first = false
		b.WriteString(f.Start)
		if f.NewLineChars != "" {
			b.WriteString(prefixRest(item, f.NewLineChars))
		} else {
			b.WriteString(item)
		}
		b.WriteString(f.End)
	}
	b.WriteString(f.VeryEnd)
	return b.String()
}

// prefixLines prepends chars to every line of s. The result is
// newline-terminated; an empty s stays empty.
func prefixLines(s, chars string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		b.WriteString(chars)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// prefixRest prepends chars to every line of s except the first.
// Like prefixLines, it normalizes the result to end in a newline.
func prefixRest(s, chars string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for i, line := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		if i > 0 {
			b.WriteString(chars)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
