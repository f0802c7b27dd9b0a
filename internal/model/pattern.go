// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Pattern and its elements.
package model

// Pattern is the ordered sequence of elements that forms a message value.
type Pattern struct {
	Elements []PatternElement
}

// NewTextPattern returns a pattern made of a single text run.
func NewTextPattern(text string) *Pattern {
	return &Pattern{Elements: []PatternElement{Text{Value: text}}}
}

// SingleText reports whether the pattern is exactly one Text element and, if
// so, returns its content. This is the only pattern shape the entries format
// can represent.
func (p *Pattern) SingleText() (string, bool) {
	if p == nil || len(p.Elements) != 1 {
		return "", false
	}
	t, ok := p.Elements[0].(Text)
	if !ok {
		return "", false
	}
	return t.Value, true
}

// HasPlaceable reports whether any element of the pattern is a Placeable.
func (p *Pattern) HasPlaceable() bool {
	if p == nil {
		return false
	}
	for _, el := range p.Elements {
		if _, ok := el.(Placeable); ok {
			return true
		}
	}
	return false
}

// PatternElement is either a Text run or a Placeable.
type PatternElement interface {
	isPatternElement()
}

// Text is a literal run of characters inside a pattern.
type Text struct {
	Value string
}

func (Text) isPatternElement() {}

// Placeable embeds one or more expressions inside a pattern. Placeables are
// carried as data and never evaluated.
type Placeable struct {
	Expressions []Expression
}

func (Placeable) isPatternElement() {}
