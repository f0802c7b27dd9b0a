// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Resource root container and the Entry interface.
package model

// Resource is an ordered sequence of entries. Entry order is declaration order
// and is preserved by every transform that produces or consumes a Resource.
type Resource struct {
	Entries []Entry
}

// NewResource returns a Resource holding the given entries in order. An empty
// resource has a non-nil, empty Entries slice.
func NewResource(entries ...Entry) *Resource {
	if entries == nil {
		entries = []Entry{}
	}
	return &Resource{Entries: entries}
}

// Len returns the number of entries in the resource.
func (r *Resource) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Entries)
}

// Messages returns the message entries of the resource in declaration order.
func (r *Resource) Messages() []*Message {
	if r == nil {
		return nil
	}
	msgs := make([]*Message, 0, len(r.Entries))
	for _, e := range r.Entries {
		if m, ok := e.(*Message); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// Entry is a single top-level item of a Resource. Message is currently the
// only implementation.
type Entry interface {
	isEntry()
}
