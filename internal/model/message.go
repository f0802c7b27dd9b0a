// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Message entry and its Member traits.
package model

// Message is a named, translatable unit of a Resource.
//
// ID is expected to be unique within a Resource but this is not validated.
// A nil Value means the message has no value pattern. A nil Traits means the
// message carries no traits, which is always the case for messages produced
// by the adapter today.
type Message struct {
	ID     string
	Value  *Pattern
	Traits []Member
}

func (*Message) isEntry() {}

// NewMessage creates a message with the given id and value and no traits.
func NewMessage(id string, value *Pattern) *Message {
	return &Message{ID: id, Value: value}
}

// Member is a labeled alternative pattern attached to a message, such as a
// grammatical variant. Default marks the fallback member.
type Member struct {
	Key     string
	Value   Pattern
	Default bool
}

// DefaultMember returns the member flagged as default, if any.
func (m *Message) DefaultMember() (Member, bool) {
	for _, t := range m.Traits {
		if t.Default {
			return t, true
		}
	}
	return Member{}, false
}
