// Copyright 2024 The clip Authors.

package clip

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// A Command is a named, described wrapper around one argument tree,
// optionally composed with subcommands. Unlike argument trees, command
// trees nest to arbitrary depth.
type Command struct {
	Value       Value
	Arguments   Group
	Subcommands []*Command // nil means a leaf command

	strct interface{} // registered struct, parsed into and run
}

// NewCommand returns a command with no arguments and no subcommands.
func NewCommand(name, description string) *Command {
	return &Command{
		Value: Value{Name: name, Description: description},
	}
}

// SetArguments appends args to the command's argument group.
func (c *Command) SetArguments(args ...Arg) {
	c.Arguments = append(c.Arguments, args...)
}

// SetSubcommands appends subs, marking c as a command group even when
// subs is empty.
func (c *Command) SetSubcommands(subs ...*Command) {
	if c.Subcommands == nil {
		c.Subcommands = []*Command{}
	}
	c.Subcommands = append(c.Subcommands, subs...)
}

// Register derives a subcommand from x's fields and adds it to c,
// returning the new subcommand so registrations can be chained. x may
// be nil for a pure group. It panics on a malformed x or a duplicate
// name; as with flag registration, these are programmer errors.
func (c *Command) Register(name string, x interface{}, doc string) *Command {
	cmd, err := c.register(name, x, doc)
	if err != nil {
		panic(err)
	}
	return cmd
}

func (c *Command) register(name string, x interface{}, doc string) (*Command, error) {
	if c.findSub(name) != nil {
		return nil, fmt.Errorf("duplicate subcommand: %q", name)
	}
	cmd := NewCommand(name, strings.TrimSpace(doc))
	if x != nil {
		args, err := ArgsOf(x)
		if err != nil {
			return nil, fmt.Errorf("command %q: %v", name, err)
		}
		cmd.Arguments = args
		cmd.strct = x
	}
	c.SetSubcommands(cmd)
	return cmd, nil
}

// findSub looks a subcommand up by its discriminant token.
func (c *Command) findSub(name string) *Command {
	for _, s := range c.Subcommands {
		if strings.EqualFold(s.Value.Name, name) {
			return s
		}
	}
	return nil
}

// Summarize returns the one-line usage form: the command name, its
// argument summary when it has arguments, and a [COMMAND] marker when
// it has subcommands.
func (c *Command) Summarize() string {
	var b strings.Builder
	b.WriteString(c.Value.String())
	if len(c.Arguments) > 0 {
		b.WriteByte(' ')
		b.WriteString(c.Arguments.Summarize())
	}
	if c.Subcommands != nil {
		b.WriteString(" [COMMAND] ..")
	}
	return b.String()
}

// Details returns the Arguments: and Commands: blocks, each present
// only when non-empty and separated by a blank line when both are.
// Subcommands are listed by name and description only; their own
// trees are not expanded.
func (c *Command) Details() string {
	var b strings.Builder
	if len(c.Arguments) > 0 {
		b.WriteString("Arguments:\n")
		b.WriteString(prefixLines(c.Arguments.Details(), "  "))
		if c.Subcommands != nil {
			b.WriteByte('\n')
		}
	}
	if c.Subcommands != nil {
		b.WriteString("Commands:\n")
		list := Formatter{}.Fmt(len(c.Subcommands), func(i int) (string, bool) {
			return c.Subcommands[i].Value.line() + "\n", true
		})
		b.WriteString(prefixLines(list, "  "))
	}
	return b.String()
}

// Help returns the full help text: the description paragraph when
// there is one, the Usage line, and the details.
func (c *Command) Help() string {
	var b strings.Builder
	if c.Value.Description != "" {
		b.WriteString(c.Value.Description)
		b.WriteString("\n\n")
	}
	b.WriteString("Usage: ")
	b.WriteString(c.Summarize())
	b.WriteString("\n\n")
	b.WriteString(c.Details())
	return b.String()
}

// Validate checks the command tree for structural mistakes and reports
// all of them at once: empty names, duplicate subcommand names, and
// duplicate alternatives within a Choices node. Rendering tolerates
// such trees; Validate exists so generators can catch them early.
func (c *Command) Validate() error {
	var errs *multierror.Error
	if c.Value.Name == "" {
		errs = multierror.Append(errs, fmt.Errorf("command with empty name"))
	}
	if err := validateArgs([]Arg(c.Arguments)); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("command %q: %w", c.Value.Name, err))
	}
	seen := map[string]bool{}
	for _, s := range c.Subcommands {
		key := strings.ToLower(s.Value.Name)
		if seen[key] {
			errs = multierror.Append(errs, fmt.Errorf("command %q: duplicate subcommand %q", c.Value.Name, s.Value.Name))
		}
		seen[key] = true
		if err := s.Validate(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func validateArgs(args []Arg) error {
	var errs *multierror.Error
	for _, a := range args {
		if a.Value.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("argument with empty name"))
		}
		switch t := a.Type.(type) {
		case Choices:
			seen := map[string]bool{}
			for _, alt := range t {
				key := strings.ToLower(alt.Value.Name)
				if seen[key] {
					errs = multierror.Append(errs, fmt.Errorf("%s: duplicate alternative %q", a.Value.Name, alt.Value.Name))
				}
				seen[key] = true
			}
			if err := validateArgs([]Arg(t)); err != nil {
				errs = multierror.Append(errs, err)
			}
		case Group:
			if err := validateArgs([]Arg(t)); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs.ErrorOrNil()
}
