// Copyright 2024 The clip Authors.

package clip

// The argument tree: a recursive description of a command's positional
// arguments, rendered two ways. Summarize gives the one-line usage
// form; Details gives the per-argument listing with descriptions.

// An ArgType tells an Arg what it describes: a bare value, a choice
// between named alternatives, or a group of arguments that appear
// together. The set of implementations is closed.
type ArgType interface {
	argType()
}

// Leaf is the default ArgType: a single value with no substructure.
type Leaf struct{}

// Choices models a tagged union: exactly one of the alternatives is
// selected by name.
type Choices []Arg

// Group models a struct: all members appear together, in order.
type Group []Arg

func (Leaf) argType()    {}
func (Choices) argType() {}
func (Group) argType()   {}

// Default formatter configurations, used everywhere trees are rendered.
var (
	groupSummary   = Formatter{Start: "<", End: ">", Middle: " "}
	choicesSummary = Formatter{VeryStart: "<", VeryEnd: ">", Middle: "|"}
	groupDetails   = Formatter{}
	choicesDetails = Formatter{Start: "- ", NewLineChars: "  "}
)

// An Arg is one node of an argument tree: a named value together with
// its type. Its depth is computed once at construction and never
// changes; trees are immutable after they are built.
type Arg struct {
	Value Value
	Type  ArgType

	maxDepth int
}

// NewArg returns a leaf argument. description may be empty.
func NewArg(name, description string) Arg {
	return Arg{
		Value:    Value{Name: name, Description: description},
		Type:     Leaf{},
		maxDepth: 1,
	}
}

// NewTypedArg returns an argument with the given type. A Choices node
// is one level deeper than its deepest alternative; a Group sits at
// the same level as its deepest member.
func NewTypedArg(name, description string, t ArgType) Arg {
	var depth int
	switch t := t.(type) {
	case Choices:
		depth = treeDepth(t) + 1
	case Group:
		depth = treeDepth(t)
	default:
		depth = 1
	}
	return Arg{
		Value:    Value{Name: name, Description: description},
		Type:     t,
		maxDepth: depth,
	}
}

// treeDepth is the maximum depth over args, or 1 when args is empty.
func treeDepth(args []Arg) int {
	d := 1
	for _, a := range args {
		if a.maxDepth > d {
			d = a.maxDepth
		}
	}
	return d
}

// MaxDepth reports the cached depth of the tree rooted at a.
func (a Arg) MaxDepth() int {
	return a.maxDepth
}

// Summarize renders a for a one-line usage string. A shallow Choices
// argument collapses to its bare name, deferring the alternatives to
// the details view; deeper ones, and every Group, expand inline.
func (a Arg) Summarize() string {
	switch t := a.Type.(type) {
	case Choices:
		if a.maxDepth <= 2 {
			return a.Value.Name
		}
		return t.Summarize()
	case Group:
		return t.Summarize()
	default:
		return a.Value.Name
	}
}

// Details renders a for the argument listing. A leaf is a single
// name/description line. A shallow Choices argument gets that line as
// a header followed by its indented alternatives; a deeper one, and
// every Group, contributes its members' lines directly with no header.
func (a Arg) Details() string {
	switch t := a.Type.(type) {
	case Choices:
		if a.maxDepth <= 2 {
			return a.Value.line() + "\n" + prefixLines(t.Details(), "  ")
		}
		return t.Details()
	case Group:
		return t.Details()
	default:
		return a.Value.line() + "\n"
	}
}

// Summarize renders the group space-joined, each member in angle
// brackets.
func (g Group) Summarize() string {
	return groupSummary.Fmt(len(g), func(i int) (string, bool) {
		return g[i].Summarize(), true
	})
}

// Details concatenates the members' detail lines.
func (g Group) Details() string {
	return groupDetails.Fmt(len(g), func(i int) (string, bool) {
		return g[i].Details(), true
	})
}

// Summarize renders the alternatives pipe-joined inside one pair of
// angle brackets.
func (c Choices) Summarize() string {
	return choicesSummary.Fmt(len(c), func(i int) (string, bool) {
		return c[i].Summarize(), true
	})
}

// Details renders the alternatives as a bulleted list; continuation
// lines of a multi-line alternative are indented under its bullet.
func (c Choices) Details() string {
	return choicesDetails.Fmt(len(c), func(i int) (string, bool) {
		return c[i].Details(), true
	})
}
