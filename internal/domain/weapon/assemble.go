package weapon

import (
	"fmt"

	"ncth_weapons/internal/app"
)

// DropReason classifies why a weapon did not produce an output row
type DropReason int

const (
	DropNoCaliber DropReason = iota + 1
	DropMissingItem
	DropMissingAmmo
	DropKeyMismatch
	DropMissingField
	DropUnknownCategory
	DropInvalidFireRate
)

func (r DropReason) String() string {
	switch r {
	case DropNoCaliber:
		return "no_caliber"
	case DropMissingItem:
		return "missing_item"
	case DropMissingAmmo:
		return "missing_ammo"
	case DropKeyMismatch:
		return "key_mismatch"
	case DropMissingField:
		return "missing_field"
	case DropUnknownCategory:
		return "unknown_category"
	case DropInvalidFireRate:
		return "invalid_fire_rate"
	default:
		return "unknown"
	}
}

// Rejection explains why a weapon was excluded from the table.
// Rejections are expected for placeholder entries and are never fatal.
type Rejection struct {
	WeaponIndex uint32
	WeaponName  string
	Reason      DropReason
	Field       string // set for DropMissingField
}

func (r *Rejection) Error() string {
	if r.Field != "" {
		return fmt.Sprintf("weapon %d (%s): %s: %s", r.WeaponIndex, r.WeaponName, r.Reason, r.Field)
	}
	return fmt.Sprintf("weapon %d (%s): %s", r.WeaponIndex, r.WeaponName, r.Reason)
}

func reject(w app.WeaponRecord, reason DropReason) *Rejection {
	return &Rejection{WeaponIndex: w.Index, WeaponName: w.Name, Reason: reason}
}

// Triple is a weapon joined with its item and ammunition records
type Triple struct {
	Weapon app.WeaponRecord
	Item   app.ItemRecord
	Ammo   app.AmmoRecord
}

// Assemble joins a weapon to its item (same identifier) and to its
// ammunition (by caliber reference). It returns a *Rejection when the weapon
// has no caliber, when either lookup fails, or when the join keys disagree.
//
// Pure function: No I/O operations.
func Assemble(w app.WeaponRecord, items map[uint32]app.ItemRecord, ammo map[uint32]app.AmmoRecord) (Triple, error) {
	if w.Caliber == nil {
		return Triple{}, reject(w, DropNoCaliber)
	}

	item, ok := items[w.Index]
	if !ok {
		return Triple{}, reject(w, DropMissingItem)
	}

	a, ok := ammo[*w.Caliber]
	if !ok {
		return Triple{}, reject(w, DropMissingAmmo)
	}

	t := Triple{Weapon: w, Item: item, Ammo: a}
	if !t.keysMatch() {
		return Triple{}, reject(w, DropKeyMismatch)
	}
	return t, nil
}

// keysMatch re-checks the join keys actually used for this triple
func (t Triple) keysMatch() bool {
	if t.Weapon.Index != t.Item.Index {
		return false
	}
	return t.Weapon.Caliber != nil && *t.Weapon.Caliber == t.Ammo.Index
}
