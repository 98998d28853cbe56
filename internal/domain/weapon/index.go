package weapon

import (
	"sort"

	"ncth_weapons/internal/app"
)

// BuildIndex keys records by identifier. When two records share an
// identifier the later one in input order wins; no error is reported.
//
// Pure function: O(n), does not modify the input slice.
func BuildIndex[T any](records []T, key func(T) uint32) map[uint32]T {
	index := make(map[uint32]T, len(records))
	for _, record := range records {
		index[key(record)] = record
	}
	return index
}

// IndexWeapons keys weapon records by uiIndex
func IndexWeapons(weapons []app.WeaponRecord) map[uint32]app.WeaponRecord {
	return BuildIndex(weapons, func(w app.WeaponRecord) uint32 { return w.Index })
}

// IndexItems keys item records by uiIndex
func IndexItems(items []app.ItemRecord) map[uint32]app.ItemRecord {
	return BuildIndex(items, func(i app.ItemRecord) uint32 { return i.Index })
}

// IndexAmmo keys ammunition records by uiIndex
func IndexAmmo(ammo []app.AmmoRecord) map[uint32]app.AmmoRecord {
	return BuildIndex(ammo, func(a app.AmmoRecord) uint32 { return a.Index })
}

// sortedKeys returns the identifiers of an index in ascending order
func sortedKeys[T any](index map[uint32]T) []uint32 {
	keys := make([]uint32, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
