// Copyright 2024 The clip Authors.

package clip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Code for running registered commands.

// A Runner is a registered command struct with behavior. Run is called
// after the struct's fields have been filled from the token stream.
type Runner interface {
	Run(ctx context.Context) error
}

// A UsageError is an error in how a command was invoked. Its message
// includes the command's help text.
type UsageError struct {
	cmd *Command
	Err error
}

func (u *UsageError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v\n", u.cmd.Value.Name, u.Err)
	b.WriteString(u.cmd.Help())
	return strings.TrimSuffix(b.String(), "\n")
}

func (u *UsageError) Unwrap() error {
	return u.Err
}

// Run parses tokens against c and executes the selected command. The
// command's own arguments are consumed first; when c has subcommands,
// the next token selects one and the rest of the stream is handed to
// it. A leaf command must consume the entire stream.
func (c *Command) Run(ctx context.Context, tokens []string) error {
	if c.strct != nil {
		rest, err := tryParse(c.strct, tokens)
		if err != nil {
			return &UsageError{c, err}
		}
		tokens = rest
	}
	if c.Subcommands != nil {
		if len(tokens) == 0 {
			if r, ok := c.strct.(Runner); ok {
				return r.Run(ctx)
			}
			return &UsageError{c, errors.New("missing subcommand")}
		}
		sub := c.findSub(tokens[0])
		if sub == nil {
			return &UsageError{c, fmt.Errorf("unknown command: %q", tokens[0])}
		}
		return sub.Run(ctx, tokens[1:])
	}
	if len(tokens) > 0 {
		return &UsageError{c, ErrTooManyArguments}
	}
	if r, ok := c.strct.(Runner); ok {
		return r.Run(ctx)
	}
	return nil
}

// Main runs c on the process arguments and returns an exit code:
// 0 on success, 2 on a usage error, 1 on any other error.
func (c *Command) Main(ctx context.Context) int {
	return c.mainWithArgs(ctx, os.Args[1:])
}

func (c *Command) mainWithArgs(ctx context.Context, tokens []string) int {
	err := c.Run(ctx, tokens)
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}
