package entries

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/vk/ftlentries/internal/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Encode converts a resource into the ordered entries association. Keys
// appear in entry order. Every message whose value is not a single text run
// is reported; on failure no association is returned.
//
// The model does not guarantee unique ids, but an entries object can hold a
// key only once: every repeated id is reported as a *DuplicateMessageIDError.
func Encode(r *model.Resource) (*orderedmap.OrderedMap[string, string], error) {
	out := orderedmap.New[string, string]()
	if r == nil {
		return out, nil
	}

	var errs *multierror.Error
	for _, e := range r.Entries {
		switch m := e.(type) {
		case *model.Message:
			text, err := encodePattern(m)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			if _, seen := out.Get(m.ID); seen {
				errs = multierror.Append(errs, &DuplicateMessageIDError{MessageID: m.ID})
				continue
			}
			out.Set(m.ID, text)
		default:
			errs = multierror.Append(errs, fmt.Errorf("unsupported entry type %T", e))
		}
	}
	if err := flatten(errs); err != nil {
		return nil, err
	}

	return out, nil
}

// encodePattern returns the text of a message value that is exactly one text
// run.
func encodePattern(m *model.Message) (string, error) {
	if text, ok := m.Value.SingleText(); ok {
		return text, nil
	}
	return "", &UnsupportedPatternShapeError{MessageID: m.ID, Reason: describeShape(m.Value)}
}

func describeShape(p *model.Pattern) string {
	switch {
	case p == nil:
		return "message has no value"
	case len(p.Elements) == 0:
		return "pattern is empty"
	case p.HasPlaceable():
		return "pattern contains a placeable"
	default:
		return fmt.Sprintf("pattern has %d elements, expected a single text element", len(p.Elements))
	}
}

// Marshal encodes a resource and renders it as indented JSON with a trailing
// newline. The output is deterministic and its key order is the resource's
// entry order.
func Marshal(r *model.Resource) ([]byte, error) {
	return MarshalIndent(r, "  ")
}

// MarshalIndent is Marshal with a custom indentation string. Strings are
// written without HTML escaping.
func MarshalIndent(r *model.Resource, indent string) ([]byte, error) {
	obj, err := Encode(r)
	if err != nil {
		return nil, err
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if compact.Len() > 1 {
			compact.WriteByte(',')
		}
		if err := writeString(&compact, pair.Key); err != nil {
			return nil, err
		}
		compact.WriteByte(':')
		if err := writeString(&compact, pair.Value); err != nil {
			return nil, err
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("failed to write entries JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// writeString appends s to buf as a JSON string literal.
func writeString(buf *bytes.Buffer, s string) error {
	var lit bytes.Buffer
	enc := json.NewEncoder(&lit)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to write entries JSON: %w", err)
	}
	buf.Write(bytes.TrimSuffix(lit.Bytes(), []byte("\n")))
	return nil
}

// flatten returns nil, the only error, or the aggregate.
func flatten(errs *multierror.Error) error {
	if errs == nil || len(errs.Errors) == 0 {
		return nil
	}
	if len(errs.Errors) == 1 {
		return errs.Errors[0]
	}
	return errs
}
