package elements

import (
	"fmt"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

// hookFunc corrects the grammar-parsed shape of one element whose
// documentation is known to be irregular. The input shape may be rewritten
// in place; every returned variant is an independent copy taken at the point
// it was produced. A precondition failure means the upstream documentation
// changed and this table is stale, which is fatal for the whole run.
type hookFunc func(shape types.Shape) ([]types.Shape, error)

var hooks = map[string]hookFunc{
	"background9": background9Hook,
	"bgcolor":     bgcolorHook,
	"size":        sizeHook,
	"style":       styleHook,
	"style_type":  styleHook,
	"dropdown":    dropdownHook,
	"textlist":    textlistHook,
	"model":       modelHook,
}

// passiveHooks rewrite the shape in place and still let the regular
// optional-parameter expansion run on it afterwards. All other hooks replace
// the grammar output entirely.
var passiveHooks = map[string]bool{
	"dropdown": true,
	"textlist": true,
}

// numParam is for names the hooks invent themselves; they bypass the
// classifier, which only knows the documented vocabulary.
func numParam(name string) types.Parameter {
	return types.Parameter{Name: name, Type: types.TypeNumber}
}

func expectParam(shape types.Shape, i int, name string, tag types.ParamType) error {
	want := types.Parameter{Name: name, Type: tag}
	if i < 0 || i >= len(shape) || !shape[i].Equal(want) {
		return fmt.Errorf("expected parameter %d to be (%s, %s); documentation changed incompatibly", i, name, tag)
	}
	return nil
}

// The combined "middle" parameter is really up to four numbers.
func background9Hook(shape types.Shape) ([]types.Shape, error) {
	if err := expectParam(shape, len(shape)-1, "middle", types.TypeString); err != nil {
		return nil, fmt.Errorf("background9: %w", err)
	}

	group := types.Group{numParam("middle_x")}
	shape[len(shape)-1] = group
	variants := []types.Shape{shape.Clone()}

	group = append(group, numParam("middle_y"))
	shape[len(shape)-1] = group
	variants = append(variants, shape.Clone())

	group = append(group, numParam("middle_x2"), numParam("middle_y2"))
	shape[len(shape)-1] = group
	variants = append(variants, shape.Clone())
	return variants, nil
}

// Every trailing parameter of bgcolor may be dropped.
func bgcolorHook(shape types.Shape) ([]types.Shape, error) {
	variants := []types.Shape{shape.Clone()}
	for i := 1; i <= len(shape); i++ {
		variants = append(variants, shape[:len(shape)-i].Clone())
	}
	return variants, nil
}

// size also accepts a plain "w,h" pair.
func sizeHook(shape types.Shape) ([]types.Shape, error) {
	return []types.Shape{
		shape.Clone(),
		{types.Group{newParam("w"), newParam("h")}},
	}, nil
}

// style and style_type take either a single name or a repeatable selector
// list as their first field.
func styleHook(shape types.Shape) ([]types.Shape, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("style: empty signature; documentation changed incompatibly")
	}
	shape[0] = types.Group{types.Parameter{Name: "name", Type: types.TypeString}}
	variants := []types.Shape{shape.Clone()}

	shape[0] = types.Group{types.Variadic{Unit: types.Parameter{Name: "selectors", Type: types.TypeString}}}
	variants = append(variants, shape.Clone())
	return variants, nil
}

// The second field of dropdown is documented once as "w" and once as "w,h";
// each record gets the opposite form so both calling styles are accepted.
func dropdownHook(shape types.Shape) ([]types.Shape, error) {
	if len(shape) < 2 {
		return nil, fmt.Errorf("dropdown: expected at least 2 parameters; documentation changed incompatibly")
	}
	switch shape[1].(type) {
	case types.Parameter:
		shape[1] = types.Group{newParam("w"), newParam("h")}
	case types.Group:
		shape[1] = newParam("w")
	default:
		return nil, fmt.Errorf("dropdown: unexpected second parameter; documentation changed incompatibly")
	}
	return nil, nil
}

// textlist is also callable with just its first five parameters.
func textlistHook(shape types.Shape) ([]types.Shape, error) {
	if len(shape) > 5 {
		return []types.Shape{shape[:5].Clone()}, nil
	}
	return nil, nil
}

// model's documentation is inconsistent: textures is really a repeatable
// list, the rotation pair is mistyped, frame_loop_range is two bounds, and
// everything from textures onward is optional.
func modelHook(shape types.Shape) ([]types.Shape, error) {
	if err := expectParam(shape, 4, "textures", types.TypeString); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	shape[4] = types.Group{types.Variadic{Unit: types.Parameter{Name: "textures", Type: types.TypeString}}}

	rotation := types.Group{
		types.Parameter{Name: "rotation_x", Type: types.TypeString},
		types.Parameter{Name: "y", Type: types.TypeNumber},
	}
	if len(shape) < 6 || !shape[5].Equal(rotation) {
		return nil, fmt.Errorf("model: expected parameter 5 to be the rotation pair; documentation changed incompatibly")
	}
	shape[5] = types.Group{numParam("rotation_x"), numParam("rotation_y")}

	if err := expectParam(shape, 8, "frame_loop_range", types.TypeString); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	shape[8] = types.Group{numParam("frame_loop_begin"), numParam("frame_loop_end")}

	var variants []types.Shape
	for i := 5; i <= len(shape); i++ {
		variants = append(variants, shape[:i].Clone())
	}
	return variants, nil
}
