// Copyright 2024 The clip Authors.

/*
Package clip describes and consumes positional command-line interfaces
from a tree-shaped model. It has two independent halves: a formatting
engine that renders a nested argument tree into a one-line usage
summary and a multi-line help text, and a parsing protocol that
consumes an ordered token stream into typed structs and unions.

# The argument tree

An argument is a named [Value] together with an [ArgType]: a [Leaf]
(one bare value), [Choices] (pick one of several named alternatives,
as with a tagged union), or a [Group] (all members together, as with a
struct). Trees are built once, with [NewArg] and [NewTypedArg], and
are read-only afterwards.

[Arg.Summarize] renders the one-line usage form. Groups always expand
inline as "<a> <b> <c>"; a Choices argument whose alternatives are all
bare values collapses to its own name, while one with nested structure
expands as "<a|b|c>". [Arg.Details] renders the argument listing:
names padded to eight columns before their descriptions, alternatives
bulleted with "- " and indented two spaces per nesting level.

# Commands

A [Command] wraps one argument tree with a name, a description, and
optionally an ordered list of subcommands. [Command.Help] produces the
full help text:

	compare two files

	Usage: compare <old> <new> [COMMAND] ..

	Arguments:
	  old     the baseline file
	  new     the changed file

	Commands:
	  quiet   print nothing, set the exit status

# Parsing

A type participates in positional parsing by implementing [TryParser]:
it fills itself from a prefix of the token stream and returns the
remainder, a sub-slice of the input. Struct fields are consumed
strictly in declaration order; a union consumes one discriminant token
and dispatches to the matching variant with [ParseVariant], comparing
case-insensitively. Failures come from a closed set of sentinel
errors: [ErrTooFewArguments], [ErrBadType], [ErrVariantNotFound] and,
for the total-consumption check in [Parse], [ErrTooManyArguments]. The
first error aborts the whole parse; there is no backtracking.

# Deriving from structs

Hand-writing trees and parsers is always possible, but for the common
case [ArgsOf] derives an argument group from a struct's exported
fields and their `clip` struct tags, and [UnmarshalArgs] derives the
matching TryParse behavior. A field tag gives the argument's display
name and documentation:

	type compare struct {
		Old string `clip:"name=old, the baseline file"`
		New string `clip:"name=new, the changed file"`
	}

A field whose type implements [Describer] contributes its own tree;
this is how union types appear as Choices in the help text. A field
whose type implements [TryParser] is parsed by recursive delegation on
the current remaining stream.

# Execution

[Command.Register] ties the two halves together: it derives a
subcommand's argument tree from a struct and remembers the struct, and
[Command.Run] parses a token stream, dispatches through subcommands,
fills the selected struct and calls its Run method (the [Runner]
interface). [Command.Main] adds the conventional exit codes: 2 for
usage errors, 1 for everything else.

	func main() {
		os.Exit(top.Main(context.Background()))
	}

See examples/garage for a complete program.
*/
package clip
