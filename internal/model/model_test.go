package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_SingleText(t *testing.T) {
	testCases := []struct {
		name     string
		pattern  *Pattern
		wantText string
		wantOK   bool
	}{
		{
			name:     "single text run",
			pattern:  NewTextPattern("Bar"),
			wantText: "Bar",
			wantOK:   true,
		},
		{
			name:     "empty text run is still a single element",
			pattern:  NewTextPattern(""),
			wantText: "",
			wantOK:   true,
		},
		{
			name:    "nil pattern",
			pattern: nil,
		},
		{
			name:    "no elements",
			pattern: &Pattern{},
		},
		{
			name: "two text elements",
			pattern: &Pattern{Elements: []PatternElement{
				Text{Value: "a"}, Text{Value: "b"},
			}},
		},
		{
			name: "single placeable",
			pattern: &Pattern{Elements: []PatternElement{
				Placeable{Expressions: []Expression{NewEntityReference("brand")}},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text, ok := tc.pattern.SingleText()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantText, text)
		})
	}
}

func TestPattern_HasPlaceable(t *testing.T) {
	p := &Pattern{Elements: []PatternElement{
		Text{Value: "About "},
		Placeable{Expressions: []Expression{NewEntityReference("brand")}},
	}}
	assert.True(t, p.HasPlaceable())
	assert.False(t, NewTextPattern("x").HasPlaceable())
	assert.False(t, (*Pattern)(nil).HasPlaceable())
}

func TestResource_Messages(t *testing.T) {
	res := NewResource(
		NewMessage("b", NewTextPattern("B")),
		NewMessage("a", NewTextPattern("A")),
	)

	msgs := res.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "b", msgs[0].ID)
	assert.Equal(t, "a", msgs[1].ID)
	assert.Equal(t, 2, res.Len())
	assert.Equal(t, 0, (*Resource)(nil).Len())
}

func TestNewResource_Empty(t *testing.T) {
	res := NewResource()
	require.NotNil(t, res.Entries)
	assert.Empty(t, res.Entries)
	assert.Equal(t, &Resource{Entries: []Entry{}}, res)
}

func TestMessage_DefaultMember(t *testing.T) {
	m := &Message{
		ID: "brand",
		Traits: []Member{
			{Key: "genitive", Value: *NewTextPattern("Firefoxa")},
			{Key: "nominative", Value: *NewTextPattern("Firefox"), Default: true},
		},
	}

	def, ok := m.DefaultMember()
	require.True(t, ok)
	assert.Equal(t, "nominative", def.Key)

	_, ok = NewMessage("plain", NewTextPattern("x")).DefaultMember()
	assert.False(t, ok)
}
