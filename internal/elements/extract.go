package elements

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

// Fixed markers of the documentation's structure. If these drift, the run
// aborts so a maintainer can update them.
const (
	elementsHeading = "\nElements\n--------\n"
	headingRule     = "\n----"
	recordDelim     = "\n### "
)

// ErrSectionNotFound means the document no longer contains the Elements
// chapter heading; the run cannot continue.
var ErrSectionNotFound = errors.New("elements section heading not found in document")

// Description bullets like "* `name`: optional parameter" mark a parameter
// as droppable.
var optionalParamRe = regexp.MustCompile("^\\* `([^`]+)`(?: and `([^`]+)`)?:? ")

// Parse builds the element table from the full documentation text. Each
// element's shapes are sorted longest first so downstream matching tries the
// most specific form before the looser ones.
func Parse(doc string) (types.ElementTable, error) {
	body, err := elementsSection(doc)
	if err != nil {
		return nil, err
	}

	table := types.ElementTable{}
	for _, record := range strings.Split(body, recordDelim) {
		name, variants, err := parseRecord(record)
		if err != nil {
			return nil, err
		}
		if name == "" {
			continue
		}
		table[name] = append(table[name], variants...)
	}

	for _, shapes := range table {
		sortShapes(shapes)
	}
	return table, nil
}

// elementsSection isolates the body of the Elements chapter: everything from
// its heading up to the next chapter's underline, minus the next chapter's
// own title line.
func elementsSection(doc string) (string, error) {
	i := strings.Index(doc, elementsHeading)
	if i < 0 {
		return "", ErrSectionNotFound
	}
	body := doc[i+len(elementsHeading):]
	if j := strings.Index(body, headingRule); j >= 0 {
		body = body[:j]
	}
	if k := strings.LastIndex(body, "\n"); k >= 0 {
		body = body[:k]
	}
	return body, nil
}

// parseRecord handles one "### " record. Records whose first line is not a
// code-styled `name[params]` token are not element definitions and yield an
// empty name.
func parseRecord(record string) (string, []types.Shape, error) {
	lines := strings.Split(record, "\n")
	head := lines[0]
	if len(head) < 3 || !strings.HasPrefix(head, "`") || !strings.HasSuffix(head, "`") {
		return "", nil, nil
	}

	name, rawParams, found := strings.Cut(head[1:len(head)-2], "[")
	if !found {
		return "", nil, nil
	}

	var shape types.Shape
	if rawParams != "" {
		var err error
		shape, err = ParseSignature(strings.Split(rawParams, ";"))
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	var variants []types.Shape
	if hook, ok := hooks[name]; ok {
		corrected, err := hook(shape)
		if err != nil {
			return "", nil, err
		}
		variants = append(variants, corrected...)
		if !passiveHooks[name] {
			return name, variants, nil
		}
	}

	optional, err := optionalNames(lines[1:])
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", name, err)
	}
	return name, append(variants, expandOptional(shape, optional)...), nil
}

// optionalNames scans an element's description lines for parameters
// documented as optional.
func optionalNames(lines []string) (map[string]bool, error) {
	optional := map[string]bool{}
	for _, line := range lines {
		m := optionalParamRe.FindStringSubmatch(line)
		if m == nil || !strings.Contains(strings.ToLower(line), "optional") {
			continue
		}
		for _, raw := range m[1:] {
			if raw == "" {
				continue
			}
			name, err := NormalizeName(raw)
			if err != nil {
				return nil, err
			}
			optional[name] = true
		}
	}
	return optional, nil
}

// expandOptional yields the full shape first, then progressively drops bare
// trailing parameters whose names are in the optional set. Groups and
// variadic tails are never removed.
func expandOptional(shape types.Shape, optional map[string]bool) []types.Shape {
	variants := []types.Shape{shape.Clone()}
	for len(shape) > 0 {
		p, ok := shape[len(shape)-1].(types.Parameter)
		if !ok || !optional[p.Name] {
			break
		}
		shape = shape[:len(shape)-1]
		variants = append(variants, shape.Clone())
	}
	return variants
}

// sortShapes orders a shape list longest first; the sort is stable so
// equal-length variants keep their declared order.
func sortShapes(shapes []types.Shape) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return len(shapes[i]) > len(shapes[j])
	})
}
