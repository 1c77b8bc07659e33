package types

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON rebuilds a Shape from the nested-list form produced by
// MarshalJSON.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Shape, len(raw))
	for i, r := range raw {
		u, err := decodeUnit(r)
		if err != nil {
			return err
		}
		out[i] = u
	}
	*s = out
	return nil
}

// decodeUnit distinguishes the three list forms: ["name","type"] is a
// Parameter, [unit,"..."] a Variadic (the unit is itself always a list, so
// the two cannot collide), anything else a Group.
func decodeUnit(data json.RawMessage) (Unit, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unit is not a list: %w", err)
	}

	if len(raw) == 2 {
		var name, tag string
		if json.Unmarshal(raw[0], &name) == nil && json.Unmarshal(raw[1], &tag) == nil {
			return Parameter{Name: name, Type: ParamType(tag)}, nil
		}
		var marker string
		if json.Unmarshal(raw[1], &marker) == nil && marker == VariadicMarker {
			unit, err := decodeUnit(raw[0])
			if err != nil {
				return nil, err
			}
			return Variadic{Unit: unit}, nil
		}
	}

	group := make(Group, len(raw))
	for i, r := range raw {
		u, err := decodeUnit(r)
		if err != nil {
			return nil, err
		}
		group[i] = u
	}
	return group, nil
}
