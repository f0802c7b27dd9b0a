// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the expressions that may appear inside a Placeable.
package model

// Expression is an expression embedded in a Placeable. EntityReference is the
// only kind defined today.
type Expression interface {
	isExpression()
}

// Identifier names a referenced message or term.
type Identifier struct {
	Name string
}

// EntityReference refers to another message or term by identifier.
type EntityReference struct {
	ID Identifier
}

func (EntityReference) isExpression() {}

// NewEntityReference returns a reference to the entity with the given name.
func NewEntityReference(name string) EntityReference {
	return EntityReference{ID: Identifier{Name: name}}
}
