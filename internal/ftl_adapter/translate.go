package ftl_adapter

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/vk/ftlentries/internal/model"
	"github.com/vk/ftlentries/internal/syntax/ast"
)

// Convert translates a parsed resource into the canonical model, keeping entry
// order. Every message without a value is reported as a *MissingValueError;
// when any entry fails, no resource is returned.
func Convert(res *ast.Resource) (*model.Resource, error) {
	if res == nil {
		return model.NewResource(), nil
	}

	var errs *multierror.Error
	entries := make([]model.Entry, 0, len(res.Body))
	for _, e := range res.Body {
		entry, err := translateEntry(e)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		entries = append(entries, entry)
	}
	if err := errs.ErrorOrNil(); err != nil {
		if len(errs.Errors) == 1 {
			return nil, errs.Errors[0]
		}
		return nil, err
	}

	return &model.Resource{Entries: entries}, nil
}

// translateEntry converts a single top-level syntax node.
func translateEntry(e ast.Entry) (model.Entry, error) {
	switch n := e.(type) {
	case *ast.Message:
		return translateMessage(n)
	default:
		return nil, fmt.Errorf("%s: unsupported entry type %T", e.Range().String(), e)
	}
}

// translateMessage converts a message. Traits are left nil; projecting them
// into model.Member values is not implemented yet.
func translateMessage(m *ast.Message) (*model.Message, error) {
	if m.Value == nil {
		return nil, &MissingValueError{MessageID: m.ID.Name, Range: m.SrcRange}
	}

	value, err := translatePattern(m.Value)
	if err != nil {
		return nil, fmt.Errorf("in message '%s': %w", m.ID.Name, err)
	}

	return &model.Message{
		ID:    m.ID.Name,
		Value: value,
	}, nil
}

// translatePattern converts a pattern element by element.
func translatePattern(p *ast.Pattern) (*model.Pattern, error) {
	elements := make([]model.PatternElement, 0, len(p.Elements))
	for _, el := range p.Elements {
		converted, err := translatePatternElement(el)
		if err != nil {
			return nil, err
		}
		elements = append(elements, converted)
	}
	return &model.Pattern{Elements: elements}, nil
}

func translatePatternElement(el ast.PatternElement) (model.PatternElement, error) {
	switch n := el.(type) {
	case *ast.TextElement:
		return model.Text{Value: n.Value}, nil
	case *ast.Placeable:
		exprs := make([]model.Expression, 0, len(n.Expressions))
		for _, expr := range n.Expressions {
			converted, err := translateExpression(expr)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, converted)
		}
		return model.Placeable{Expressions: exprs}, nil
	default:
		return nil, fmt.Errorf("unsupported pattern element %T", el)
	}
}

func translateExpression(expr ast.Expression) (model.Expression, error) {
	switch n := expr.(type) {
	case *ast.MessageReference:
		return model.EntityReference{ID: translateIdentifier(n.ID)}, nil
	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}

// translateIdentifier carries the referenced name as written in the source.
func translateIdentifier(id *ast.Identifier) model.Identifier {
	return model.Identifier{Name: id.Name}
}
