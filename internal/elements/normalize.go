package elements

import (
	"fmt"
	"strings"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

// Known parameter vocabulary from the formspec documentation. Anything not
// listed here classifies as a plain string.
var knownTypes = buildKnown(map[types.ParamType][]string{
	types.TypeNumber: {
		"x", "y", "w", "h", "selected_idx", "version",
		"starting_item_index", "scroll_factor", "frame_count",
		"frame_duration", "frame_start",
	},
	types.TypeBoolean: {
		"auto_clip", "fixed_size", "transparent", "draw_border", "bool",
		"noclip", "drawborder", "selected", "force", "close_on_enter",
		"continuous", "mouse_control",
	},
	types.TypeFullscreen: {"fullscreen"},
	types.TypeTable:      {"param", "opt", "prop"},
	types.TypeNull:       {""},
})

func buildKnown(sets map[types.ParamType][]string) map[string]types.ParamType {
	known := make(map[string]types.ParamType)
	for tag, names := range sets {
		for _, name := range names {
			known[name] = tag
		}
	}
	return known
}

// Names the documentation uses inconsistently across elements
var nameAliases = map[string]string{
	"type": "elem_type",
	"cell": "cells",
}

// NormalizeName canonicalizes a declared parameter name: lowercased, trimmed,
// one pair of surrounding angle brackets stripped, spaces replaced with
// underscores, aliases applied. A name can never normalize to the variadic
// marker; that indicates a malformed signature.
func NormalizeName(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if len(name) >= 2 && strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") {
		name = name[1 : len(name)-1]
	}
	name = strings.ReplaceAll(name, " ", "_")
	if alias, ok := nameAliases[name]; ok {
		name = alias
	}
	if name == types.VariadicMarker {
		return "", fmt.Errorf("parameter name %q is reserved as the variadic marker", raw)
	}
	return name, nil
}

// Classify maps a normalized parameter name to its semantic type tag.
// Unknown names are plain strings, never an error.
func Classify(name string) types.ParamType {
	if tag, ok := knownTypes[name]; ok {
		return tag
	}
	return types.TypeString
}
