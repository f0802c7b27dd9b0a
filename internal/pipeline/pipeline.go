// Package pipeline exposes the entry points that tie the FTL parser, the
// syntax tree adapter and the entries codec together.
package pipeline

import (
	"github.com/vk/ftlentries/internal/entries"
	"github.com/vk/ftlentries/internal/ftl_adapter"
	"github.com/vk/ftlentries/internal/model"
	"github.com/vk/ftlentries/internal/syntax"
)

// Parse parses FTL source text into the canonical model. Parse failures are
// returned as the parser's hcl.Diagnostics, unchanged; adapter failures as
// returned by ftl_adapter.Convert.
func Parse(text string) (*model.Resource, error) {
	return ParseFile("", []byte(text))
}

// ParseFile is Parse with a file name attached to every source range.
func ParseFile(filename string, src []byte) (*model.Resource, error) {
	tree, diags := syntax.Parse(filename, src)
	if diags.HasErrors() {
		return nil, diags
	}
	return ftl_adapter.Convert(tree)
}

// SerializeJSON renders a resource as indented entries JSON whose key order is
// the resource's declaration order.
func SerializeJSON(r *model.Resource) (string, error) {
	return SerializeJSONIndent(r, "  ")
}

// SerializeJSONIndent is SerializeJSON with a custom indentation string.
func SerializeJSONIndent(r *model.Resource, indent string) (string, error) {
	out, err := entries.MarshalIndent(r, indent)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DeserializeJSON reads an entries JSON document back into the canonical model.
func DeserializeJSON(text string) (*model.Resource, error) {
	return entries.Unmarshal([]byte(text))
}
