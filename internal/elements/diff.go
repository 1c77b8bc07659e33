package elements

import (
	"sort"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

// TableDiff describes how one generated element table differs from another
type TableDiff struct {
	Added   []string      `json:"added,omitempty"`
	Removed []string      `json:"removed,omitempty"`
	Changed []ShapeChange `json:"changed,omitempty"`
}

// ShapeChange records an element whose accepted shapes differ between runs
type ShapeChange struct {
	Element      string `json:"element"`
	ShapesBefore int    `json:"shapes_before"`
	ShapesAfter  int    `json:"shapes_after"`
}

// Empty reports whether the two tables were identical
func (d TableDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Compare diffs two element tables by name and by shape list, in sorted
// element order.
func Compare(before, after types.ElementTable) TableDiff {
	var diff TableDiff
	for _, name := range sortedNames(after) {
		if _, ok := before[name]; !ok {
			diff.Added = append(diff.Added, name)
		}
	}
	for _, name := range sortedNames(before) {
		shapes, ok := after[name]
		if !ok {
			diff.Removed = append(diff.Removed, name)
			continue
		}
		if !shapeListsEqual(before[name], shapes) {
			diff.Changed = append(diff.Changed, ShapeChange{
				Element:      name,
				ShapesBefore: len(before[name]),
				ShapesAfter:  len(shapes),
			})
		}
	}
	return diff
}

func shapeListsEqual(a, b []types.Shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func sortedNames(table types.ElementTable) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
