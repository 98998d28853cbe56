package weapon

import (
	"math"

	"ncth_weapons/internal/app"
)

// Validated holds a joined triple whose formula inputs are all present.
// It is only built by Validate.
type Validated struct {
	Index     uint32
	Name      string
	LongName  string
	Category  app.WeaponCategory
	Caliber   string
	Accuracy  int32
	Damage    uint32
	Range     uint16
	Handling  uint32
	AimLevels uint32
	Loudness  uint32
	ReadyTime uint32
	MagSize   uint32
	Reload    uint32
	Weight    float32
	Coolness  uint32

	ShotsPer4Turns float32
	// denominator of the basic attack AP formula, round(180 * ShotsPer4Turns)
	fireRateDenominator uint32

	ShotsPerBurst       *uint32
	BurstAP             *uint32
	AutofirePerFiveAP   *uint32
	APsToReloadManually *uint32
	RecoilX             *float32
	RecoilY             *float32
	NoSemiAuto          bool

	TwoHanded   bool
	NotBuyable  bool
	Reliability *int32
	RepairEase  *int32
	Price       *uint32
}

// Validate checks that every field required by the statistics formulas is
// present. The gate is all-or-nothing: the first missing field rejects the
// whole triple and nothing partial is returned.
//
// Pure function: No I/O operations.
func Validate(t Triple) (Validated, error) {
	w, item := t.Weapon, t.Item

	if !t.keysMatch() {
		return Validated{}, reject(w, DropKeyMismatch)
	}

	required := []struct {
		field   string
		present bool
	}{
		{"nAccuracy", w.NCTHAccuracy != nil},
		{"ubImpact", w.Impact != nil},
		{"usRange", w.Range != nil},
		{"Handling", w.Handling != nil},
		{"ubAimLevels", w.AimLevels != nil},
		{"ubAttackVolume", w.AttackVolume != nil},
		{"ubReadyTime", w.ReadyTime != nil},
		{"ubShotsPer4Turns", w.ShotsPer4Turns != nil},
		{"ubMagSize", w.MagSize != nil},
		{"APsToReload", w.APsToReload != nil},
		{"ubWeaponType", w.Type != nil},
		{"ubWeight", item.Weight != nil},
		{"ubCoolness", item.Coolness != nil},
	}
	for _, r := range required {
		if !r.present {
			rej := reject(w, DropMissingField)
			rej.Field = r.field
			return Validated{}, rej
		}
	}

	category, ok := app.CategoryFromCode(*w.Type)
	if !ok {
		return Validated{}, reject(w, DropUnknownCategory)
	}

	denominator, ok := fireRateDenominator(*w.ShotsPer4Turns)
	if !ok {
		return Validated{}, reject(w, DropInvalidFireRate)
	}

	return Validated{
		Index:               w.Index,
		Name:                item.Name,
		LongName:            item.LongName,
		Category:            category,
		Caliber:             t.Ammo.CaliberName,
		Accuracy:            *w.NCTHAccuracy,
		Damage:              *w.Impact,
		Range:               *w.Range,
		Handling:            *w.Handling,
		AimLevels:           *w.AimLevels,
		Loudness:            *w.AttackVolume,
		ReadyTime:           *w.ReadyTime,
		MagSize:             *w.MagSize,
		Reload:              *w.APsToReload,
		Weight:              *item.Weight,
		Coolness:            *item.Coolness,
		ShotsPer4Turns:      *w.ShotsPer4Turns,
		fireRateDenominator: denominator,
		ShotsPerBurst:       w.ShotsPerBurst,
		BurstAP:             w.BurstAP,
		AutofirePerFiveAP:   w.AutofireShotsPerFiveAP,
		APsToReloadManually: w.APsToReloadManually,
		RecoilX:             w.RecoilX,
		RecoilY:             w.RecoilY,
		NoSemiAuto:          flagSet(w.NoSemiAuto),
		TwoHanded:           flagSet(item.TwoHanded),
		NotBuyable:          flagSet(item.NotBuyable),
		Reliability:         item.Reliability,
		RepairEase:          item.RepairEase,
		Price:               item.Price,
	}, nil
}

// fireRateDenominator computes round(180 * shotsPer4Turns) and reports
// whether it is usable as a divisor.
func fireRateDenominator(shotsPer4Turns float32) (uint32, bool) {
	d := math.Round(float64(180 * shotsPer4Turns))
	if math.IsNaN(d) || d < 1 || d > math.MaxUint32 {
		return 0, false
	}
	return uint32(d), true
}

// flagSet treats a numeric flag as set only when present and equal to 1
func flagSet(v *uint32) bool {
	return v != nil && *v == 1
}
