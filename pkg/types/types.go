package types

import (
	"encoding/json"
	"time"
)

// VariadicMarker is the reserved token that marks a repeatable tail in a
// signature. It is never a valid parameter name.
const VariadicMarker = "..."

// ParamType is the semantic type tag of a parameter
type ParamType string

const (
	TypeNumber     ParamType = "number"
	TypeBoolean    ParamType = "boolean"
	TypeFullscreen ParamType = "fullscreen"
	TypeTable      ParamType = "table"
	TypeNull       ParamType = "null"
	TypeString     ParamType = "string"
)

// Unit is one element of a Shape: a typed Parameter, a Group of units parsed
// from a comma-separated field, or a Variadic repeatable tail.
type Unit interface {
	// Clone returns an independent deep copy
	Clone() Unit
	// Equal reports structural equality
	Equal(other Unit) bool
}

// Parameter is a single named, typed parameter
type Parameter struct {
	Name string
	Type ParamType
}

func (p Parameter) Clone() Unit { return p }

func (p Parameter) Equal(other Unit) bool {
	o, ok := other.(Parameter)
	return ok && o == p
}

// MarshalJSON emits the ["name", "type"] pair form
func (p Parameter) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Name, string(p.Type)})
}

func (p Parameter) MarshalYAML() (interface{}, error) {
	return []interface{}{p.Name, string(p.Type)}, nil
}

// Group is an ordered sequence of units representing one bracketed
// sub-signature, e.g. the (x, y) pair of a comma-separated field
type Group []Unit

func (g Group) Clone() Unit {
	out := make(Group, len(g))
	for i, u := range g {
		out[i] = u.Clone()
	}
	return out
}

func (g Group) Equal(other Unit) bool {
	o, ok := other.(Group)
	if !ok || len(o) != len(g) {
		return false
	}
	for i, u := range g {
		if !u.Equal(o[i]) {
			return false
		}
	}
	return true
}

func (g Group) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Unit(g))
}

func (g Group) MarshalYAML() (interface{}, error) {
	out := make([]interface{}, len(g))
	for i, u := range g {
		out[i] = u
	}
	return out, nil
}

// Variadic marks its wrapped unit as repeating zero or more times. It only
// ever appears as the final unit of a Shape or Group.
type Variadic struct {
	Unit Unit
}

func (v Variadic) Clone() Unit { return Variadic{Unit: v.Unit.Clone()} }

func (v Variadic) Equal(other Unit) bool {
	o, ok := other.(Variadic)
	return ok && v.Unit.Equal(o.Unit)
}

// MarshalJSON emits the [unit, "..."] pair form
func (v Variadic) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{v.Unit, VariadicMarker})
}

func (v Variadic) MarshalYAML() (interface{}, error) {
	return []interface{}{v.Unit, VariadicMarker}, nil
}

// Shape is one accepted calling form for an element: an ordered sequence of
// parameters, groups and at most one trailing variadic unit
type Shape []Unit

func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, u := range s {
		out[i] = u.Clone()
	}
	return out
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, u := range s {
		if !u.Equal(other[i]) {
			return false
		}
	}
	return true
}

func (s Shape) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Unit(s))
}

func (s Shape) MarshalYAML() (interface{}, error) {
	out := make([]interface{}, len(s))
	for i, u := range s {
		out[i] = u
	}
	return out, nil
}

// ElementTable maps an element name to its accepted shapes, most specific
// (longest) first
type ElementTable map[string][]Shape

// Snapshot is one recorded generation run, kept for comparing element
// definitions across documentation versions
type Snapshot struct {
	ID           string       `json:"id"`
	Source       string       `json:"source"`
	ElementCount int          `json:"element_count"`
	CreatedAt    time.Time    `json:"created_at"`
	Table        ElementTable `json:"table,omitempty"`
}
