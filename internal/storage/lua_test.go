package storage

import (
	"strings"
	"testing"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

func sampleTable() types.ElementTable {
	num := func(name string) types.Parameter {
		return types.Parameter{Name: name, Type: types.TypeNumber}
	}
	return types.ElementTable{
		"label": {
			{
				types.Group{num("x"), num("y")},
				types.Parameter{Name: "label", Type: types.TypeString},
			},
		},
		"style": {
			{
				types.Group{types.Variadic{Unit: types.Parameter{Name: "selectors", Type: types.TypeString}}},
				types.Variadic{Unit: types.Parameter{Name: "prop", Type: types.TypeTable}},
			},
		},
	}
}

func TestLuaSource(t *testing.T) {
	src := LuaSource(sampleTable())

	if !strings.HasPrefix(src, "return {\n") {
		t.Errorf("Expected a return statement, got %q", src[:20])
	}

	wantLabel := `{{{"x", "number"}, {"y", "number"}}, {"label", "string"}}`
	if !strings.Contains(src, wantLabel) {
		t.Errorf("Expected label shape %s in:\n%s", wantLabel, src)
	}

	wantStyle := `{{{{"selectors", "string"}, "..."}}, {{"prop", "table"}, "..."}}`
	if !strings.Contains(src, wantStyle) {
		t.Errorf("Expected style shape %s in:\n%s", wantStyle, src)
	}

	// Element names come out sorted
	if strings.Index(src, "label = {") > strings.Index(src, "style = {") {
		t.Error("Expected element names in sorted order")
	}
}

func TestLuaKey(t *testing.T) {
	if got := luaKey("background9"); got != "background9" {
		t.Errorf("Expected a bare key, got %q", got)
	}
	if got := luaKey("9slice"); got != `["9slice"]` {
		t.Errorf("Expected a bracketed key, got %q", got)
	}
}

func TestWriteLuaHeader(t *testing.T) {
	path := t.TempDir() + "/elements.lua"
	if err := WriteLua(path, sampleTable()); err != nil {
		t.Fatalf("WriteLua failed: %v", err)
	}

	data := readFile(t, path)
	if !strings.HasPrefix(data, "--\n-- Formspec elements list.") {
		t.Errorf("Expected the auto-generated comment header, got %q", data[:40])
	}
}
