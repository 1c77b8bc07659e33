package elements

import (
	"strings"
	"testing"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

func parseSig(t *testing.T, sig string) types.Shape {
	t.Helper()

	shape, err := ParseSignature(strings.Split(sig, ";"))
	if err != nil {
		t.Fatalf("ParseSignature(%q) failed: %v", sig, err)
	}
	return shape
}

func param(name string, tag types.ParamType) types.Parameter {
	return types.Parameter{Name: name, Type: tag}
}

func TestParseSignatureFlat(t *testing.T) {
	shape := parseSig(t, "x;y")

	want := types.Shape{
		param("x", types.TypeNumber),
		param("y", types.TypeNumber),
	}
	if !shape.Equal(want) {
		t.Errorf("Expected %v, got %v", want, shape)
	}
}

func TestParseSignatureCommaFieldBecomesGroup(t *testing.T) {
	shape := parseSig(t, "x,y;label")

	want := types.Shape{
		types.Group{param("x", types.TypeNumber), param("y", types.TypeNumber)},
		param("label", types.TypeString),
	}
	if !shape.Equal(want) {
		t.Errorf("Expected %v, got %v", want, shape)
	}
}

func TestParseSignatureNoEllipsisNoVariadic(t *testing.T) {
	sigs := []string{"x;y", "x,y;w,h;name", "elem type;param"}
	for _, sig := range sigs {
		for _, unit := range parseSig(t, sig) {
			if hasVariadic(unit) {
				t.Errorf("Signature %q produced a variadic tail", sig)
			}
		}
	}
}

func hasVariadic(u types.Unit) bool {
	switch u := u.(type) {
	case types.Variadic:
		return true
	case types.Group:
		for _, member := range u {
			if hasVariadic(member) {
				return true
			}
		}
	}
	return false
}

func TestParseSignatureRepeatingPairCollapse(t *testing.T) {
	shape := parseSig(t, "x1,y1;x2,y2;...")

	want := types.Shape{
		types.Variadic{Unit: types.Group{
			param("x", types.TypeNumber),
			param("y", types.TypeNumber),
		}},
	}
	if !shape.Equal(want) {
		t.Errorf("Expected collapsed repeating pair %v, got %v", want, shape)
	}
}

func TestParseSignatureTrailingDuplicateRemoval(t *testing.T) {
	// The explicit first instances are redundant with the repeatable form
	shape := parseSig(t, "prop1;prop2;...")

	want := types.Shape{
		types.Variadic{Unit: param("prop", types.TypeTable)},
	}
	if !shape.Equal(want) {
		t.Errorf("Expected %v, got %v", want, shape)
	}
}

func TestParseSignatureInnerCommaList(t *testing.T) {
	// textlist-style field: the list lives inside one semicolon field
	shape := parseSig(t, "x,y;listelem 1,listelem 2,...")

	want := types.Shape{
		types.Group{param("x", types.TypeNumber), param("y", types.TypeNumber)},
		types.Group{types.Variadic{Unit: param("listelem", types.TypeString)}},
	}
	if !shape.Equal(want) {
		t.Errorf("Expected %v, got %v", want, shape)
	}
}

func TestParseSignatureSingularFormIsAliased(t *testing.T) {
	shape := parseSig(t, "cell 1,cell 2,...")

	want := types.Shape{
		types.Group{types.Variadic{Unit: param("cells", types.TypeString)}},
	}
	if !shape.Equal(want) {
		t.Errorf("Expected aliased singular form %v, got %v", want, shape)
	}
}

func TestParseSignatureLeadingEllipsisFails(t *testing.T) {
	if _, err := ParseSignature([]string{"..."}); err == nil {
		t.Error("Expected an error for a signature starting with the variadic marker")
	}
	if _, err := ParseSignature([]string{"...", "x"}); err == nil {
		t.Error("Expected an error for a bare leading variadic marker")
	}
}

func TestParseSignatureStopsAtEllipsis(t *testing.T) {
	shape := parseSig(t, "prop1;prop2;...;ignored")

	if len(shape) != 1 {
		t.Fatalf("Expected tokens after the marker to be dropped, got %v", shape)
	}
	if _, ok := shape[0].(types.Variadic); !ok {
		t.Errorf("Expected a variadic tail, got %T", shape[0])
	}
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"x1":         "x",
		"prop2":      "prop",
		"listelem_2": "listelem",
		"opt_1b":     "opt",
		"cell_1":     "cell",
		"x":          "",
		"":           "",
	}
	for name, want := range cases {
		if got := baseName(name); got != want {
			t.Errorf("baseName(%q) = %q, expected %q", name, got, want)
		}
	}
}
