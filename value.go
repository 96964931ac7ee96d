// Copyright 2024 The clip Authors.

package clip

import "fmt"

// A Value names a single argument or command and optionally describes
// it. It is a pure label pair, never mutated after creation.
type Value struct {
	Name        string
	Description string // empty means none
}

// String returns the bare name.
func (v Value) String() string {
	return v.Name
}

// line returns the detail form: the name padded to eight columns,
// followed by the description when there is one.
func (v Value) line() string {
	if v.Description == "" {
		return v.Name
	}
	return fmt.Sprintf("%-8s%s", v.Name, v.Description)
}
