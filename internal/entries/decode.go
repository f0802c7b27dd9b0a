package entries

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/hashicorp/go-multierror"
	"github.com/vk/ftlentries/internal/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var jsonNull = []byte("null")

// Decode builds a resource from an ordered entries association. Each pair
// becomes one message, in iteration order, whose value is a single text run.
// Values that are not JSON strings are reported as *UnexpectedValueTypeError.
func Decode(obj *orderedmap.OrderedMap[string, json.RawMessage]) (*model.Resource, error) {
	if obj == nil {
		return model.NewResource(), nil
	}

	var errs *multierror.Error
	entries := make([]model.Entry, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		text, err := decodeValue(pair.Key, pair.Value)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		entries = append(entries, model.NewMessage(pair.Key, model.NewTextPattern(text)))
	}
	if err := flatten(errs); err != nil {
		return nil, err
	}

	return &model.Resource{Entries: entries}, nil
}

// decodeValue returns the string held by raw.
func decodeValue(id string, raw json.RawMessage) (string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return "", &UnexpectedValueTypeError{MessageID: id, Type: "null"}
	}

	ty, err := ctyjson.ImpliedType(raw)
	if err != nil {
		return "", fmt.Errorf("message '%s': %w", id, err)
	}
	if !ty.Equals(cty.String) {
		return "", &UnexpectedValueTypeError{MessageID: id, Type: ty.FriendlyName()}
	}

	val, err := ctyjson.Unmarshal(raw, cty.String)
	if err != nil {
		return "", fmt.Errorf("message '%s': %w", id, err)
	}
	return val.AsString(), nil
}

// Unmarshal parses an entries JSON document, keeping key order, and decodes
// it into a resource. Keys that occur more than once are reported as
// *DuplicateMessageIDError instead of letting a later value replace an
// earlier one.
func Unmarshal(data []byte) (*model.Resource, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotAnObject
	}

	obj := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(trimmed, obj); err != nil {
		return nil, fmt.Errorf("invalid entries JSON: %w", err)
	}
	if err := checkDuplicateKeys(trimmed); err != nil {
		return nil, err
	}
	return Decode(obj)
}

// checkDuplicateKeys reports every key of the JSON object data that appears
// more than once, in order of its second occurrence.
func checkDuplicateKeys(data []byte) error {
	var errs *multierror.Error
	seen := make(map[string]int)
	err := jsonparser.ObjectEach(data, func(rawKey, _ []byte, _ jsonparser.ValueType, _ int) error {
		key, err := jsonparser.ParseString(rawKey)
		if err != nil {
			return err
		}
		seen[key]++
		if seen[key] == 2 {
			errs = multierror.Append(errs, &DuplicateMessageIDError{MessageID: key})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalid entries JSON: %w", err)
	}
	return flatten(errs)
}
