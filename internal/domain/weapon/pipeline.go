package weapon

import (
	"errors"

	"ncth_weapons/internal/app"
)

// BuildResult is the outcome of one pass over the source tables
type BuildResult struct {
	Rows       []app.OutputRow
	Considered int
	Rejections []Rejection
}

// DropCounts tallies rejections by reason
func (r BuildResult) DropCounts() map[DropReason]int {
	counts := make(map[DropReason]int)
	for _, rej := range r.Rejections {
		counts[rej.Reason]++
	}
	return counts
}

// BuildRows indexes the three tables, joins and validates every weapon,
// derives its statistics and orders the accepted rows. Weapons are visited
// in ascending identifier order so the result is deterministic.
//
// Pure function: No I/O operations.
func BuildRows(tables app.Tables) BuildResult {
	weapons := IndexWeapons(tables.Weapons)
	items := IndexItems(tables.Items)
	ammo := IndexAmmo(tables.Ammo)

	result := BuildResult{Considered: len(weapons)}
	rows := make([]app.OutputRow, 0, len(weapons))

	for _, id := range sortedKeys(weapons) {
		row, err := buildRow(weapons[id], items, ammo)
		if err != nil {
			var rej *Rejection
			if errors.As(err, &rej) {
				result.Rejections = append(result.Rejections, *rej)
			}
			continue
		}
		rows = append(rows, row)
	}

	result.Rows = SortRows(rows)
	return result
}

func buildRow(w app.WeaponRecord, items map[uint32]app.ItemRecord, ammo map[uint32]app.AmmoRecord) (app.OutputRow, error) {
	triple, err := Assemble(w, items, ammo)
	if err != nil {
		return app.OutputRow{}, err
	}
	validated, err := Validate(triple)
	if err != nil {
		return app.OutputRow{}, err
	}
	return ComputeStats(validated), nil
}
