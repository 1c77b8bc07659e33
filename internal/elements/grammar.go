package elements

import (
	"fmt"
	"strings"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

// ParseSignature parses a raw bracketed signature, already split on ";",
// into a Shape. Comma-separated fields become nested Groups and a "..."
// token turns the unit before it into a repeatable tail.
func ParseSignature(fields []string) (types.Shape, error) {
	units, err := parseUnits(fields)
	if err != nil {
		return nil, err
	}
	return types.Shape(units), nil
}

// parseUnits implements the token grammar shared by the top-level semicolon
// fields and nested comma lists. Processing stops at the first "..." token;
// the variadic tail is always the final unit of its list.
func parseUnits(tokens []string) ([]types.Unit, error) {
	var res []types.Unit
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok != types.VariadicMarker {
			unit, err := parseToken(tok)
			if err != nil {
				return nil, err
			}
			res = append(res, unit)
			continue
		}

		if len(res) == 0 {
			return nil, fmt.Errorf("signature starts with a bare %q", types.VariadicMarker)
		}
		seed := res[len(res)-1]
		res = res[:len(res)-1]

		tail, err := makeTail(seed, &res)
		if err != nil {
			return nil, err
		}
		res = append(res, tail)
		break
	}
	return res, nil
}

// parseToken parses one trimmed token: a comma list becomes a Group,
// anything else a classified Parameter.
func parseToken(tok string) (types.Unit, error) {
	if strings.Contains(tok, ",") {
		units, err := parseUnits(strings.Split(tok, ","))
		if err != nil {
			return nil, err
		}
		return types.Group(units), nil
	}
	name, err := NormalizeName(tok)
	if err != nil {
		return nil, err
	}
	return types.Parameter{Name: name, Type: Classify(name)}, nil
}

// makeTail converts the unit preceding a "..." token into the variadic tail,
// removing the explicitly spelled-out instances that precede it.
func makeTail(seed types.Unit, res *[]types.Unit) (types.Unit, error) {
	switch seed := seed.(type) {
	case types.Group:
		// "x1,y1;x2,y2;..." spells out the first two instances of a
		// repeating pair; collapse them into one singular group.
		if len(seed) == 2 && len(*res) > 0 {
			prev, ok := (*res)[len(*res)-1].(types.Group)
			if ok && firstNameHasSuffix(seed, "2") && firstNameHasSuffix(prev, "1") {
				*res = (*res)[:len(*res)-1]
				singular, err := singularGroup(seed)
				if err != nil {
					return nil, err
				}
				seed = singular
			}
		}
		return types.Variadic{Unit: seed}, nil

	case types.Parameter:
		base := baseName(seed.Name)
		for len(*res) > 0 {
			p, ok := (*res)[len(*res)-1].(types.Parameter)
			if !ok || baseName(p.Name) != base {
				break
			}
			*res = (*res)[:len(*res)-1]
		}
		unit, err := parseToken(base)
		if err != nil {
			return nil, err
		}
		return types.Variadic{Unit: unit}, nil

	default:
		return nil, fmt.Errorf("only one %q tail is supported per signature", types.VariadicMarker)
	}
}

// baseName strips a numbered-instance suffix from a declared name:
// "listelem_2" -> "listelem", "opt_1b" -> "opt", "x1" -> "x".
func baseName(name string) string {
	if name == "" {
		return ""
	}
	s := name[:len(name)-1]
	if i := strings.LastIndex(s, "_"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "_")
}

// singularGroup rewrites a numbered pair group like (x2, y2) into its
// repeating form (x, y), reclassifying the stripped names.
func singularGroup(g types.Group) (types.Group, error) {
	out := make(types.Group, len(g))
	for i, u := range g {
		p, ok := u.(types.Parameter)
		if !ok {
			return nil, fmt.Errorf("repeated pair group contains a nested group")
		}
		name := strings.TrimRight(p.Name, "0123456789")
		name = strings.TrimRight(name, "_")
		out[i] = newParam(name)
	}
	return out, nil
}

func firstNameHasSuffix(g types.Group, suffix string) bool {
	if len(g) == 0 {
		return false
	}
	p, ok := g[0].(types.Parameter)
	return ok && strings.HasSuffix(p.Name, suffix)
}

// newParam builds a classified parameter from an already normalized name
func newParam(name string) types.Parameter {
	return types.Parameter{Name: name, Type: Classify(name)}
}
