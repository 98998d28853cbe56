package weapon

import (
	"sort"

	"ncth_weapons/internal/app"
)

// SortRows returns a new slice ordered by category, then by name (byte-wise,
// case-sensitive). The sort is stable, so rows equal on both keys keep their
// input order.
//
// Pure function: Does not modify input slice, returns new sorted slice
func SortRows(rows []app.OutputRow) []app.OutputRow {
	sorted := make([]app.OutputRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Category != sorted[j].Category {
			return sorted[i].Category < sorted[j].Category
		}
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}
