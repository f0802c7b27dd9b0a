// Package ast defines the syntax tree produced by the FTL parser. Every node
// carries the source range it was parsed from, expressed with hcl's position
// types so diagnostics and nodes share one coordinate system.
package ast

import "github.com/hashicorp/hcl/v2"

// Resource is the root of a parsed FTL file.
type Resource struct {
	Filename string
	Body     []Entry
}

// Entry is a top-level node of a Resource.
type Entry interface {
	Range() hcl.Range
	isEntry()
}

// Message is an `id = pattern` declaration with its optional traits.
type Message struct {
	ID       *Identifier
	Value    *Pattern // nil when the message declares no value
	Traits   []*Member
	SrcRange hcl.Range
}

func (m *Message) Range() hcl.Range { return m.SrcRange }
func (*Message) isEntry()           {}

// Identifier is a name as written in the source.
type Identifier struct {
	Name     string
	SrcRange hcl.Range
}

// Pattern is the value template of a message or member.
type Pattern struct {
	Elements []PatternElement
	SrcRange hcl.Range
}

// PatternElement is a *TextElement or a *Placeable.
type PatternElement interface {
	isPatternElement()
}

// TextElement is a literal text run with escapes already resolved.
type TextElement struct {
	Value string
}

func (*TextElement) isPatternElement() {}

// Placeable is a `{ ... }` block holding one or more comma separated expressions.
type Placeable struct {
	Expressions []Expression
	SrcRange    hcl.Range
}

func (*Placeable) isPatternElement() {}

// Expression is a node that may appear inside a Placeable.
type Expression interface {
	isExpression()
}

// MessageReference refers to another message by identifier.
type MessageReference struct {
	ID *Identifier
}

func (*MessageReference) isExpression() {}

// Member is a trait line such as `*[nominative] Firefox`.
type Member struct {
	Key      string
	Value    *Pattern
	Default  bool
	SrcRange hcl.Range
}
