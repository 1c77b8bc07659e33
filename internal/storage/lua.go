package storage

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

const luaHeader = `--
-- Formspec elements list. Do not update this by hand, it is auto-generated
-- by formspecgen.
--

`

// WriteLua writes the element table as a Lua source file returning a table
// literal, the artifact consumed by the downstream formspec AST library.
func WriteLua(path string, table types.ElementTable) error {
	return writeFile(path, []byte(luaHeader+LuaSource(table)))
}

// LuaSource renders the element table as "return { ... }" with element names
// in sorted order.
func LuaSource(table types.ElementTable) string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("return {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "    %s = {\n", luaKey(name))
		for _, shape := range table[name] {
			b.WriteString("        " + luaShape(shape) + ",\n")
		}
		b.WriteString("    },\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func luaShape(s types.Shape) string {
	parts := make([]string, len(s))
	for i, u := range s {
		parts[i] = luaUnit(u)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func luaUnit(u types.Unit) string {
	switch u := u.(type) {
	case types.Parameter:
		return fmt.Sprintf("{%s, %s}", luaString(u.Name), luaString(string(u.Type)))
	case types.Group:
		parts := make([]string, len(u))
		for i, member := range u {
			parts[i] = luaUnit(member)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case types.Variadic:
		return fmt.Sprintf("{%s, %s}", luaUnit(u.Unit), luaString(types.VariadicMarker))
	default:
		return "nil"
	}
}

func luaString(s string) string {
	return strconv.Quote(s)
}

var luaIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func luaKey(name string) string {
	if luaIdentRe.MatchString(name) {
		return name
	}
	return "[" + luaString(name) + "]"
}
