package weapon

import (
	"math"

	"ncth_weapons/internal/app"
)

const (
	// APs in one full turn
	apsPerTurn = 80
	// reference window of the fire-rate formula, in turns
	referenceTurns = 8
	// numerator of the basic attack AP formula
	basicAttackNumerator = referenceTurns * apsPerTurn * 100
	// 20 * 3 * 80, the autofire AP budget
	autofireBudget = 4800
)

// BasicAttackAP converts a fire-rate denominator, round(180 * shotsPer4Turns),
// into an action point cost, rounding half up with integer arithmetic.
func BasicAttackAP(denominator uint32) uint32 {
	d := uint64(denominator)
	return uint32((basicAttackNumerator + d/2) / d)
}

// BurstAP returns basic + max(ceil(burstAP*80/100), ceil(burstAP/2))
func BurstAP(basic, burstAP uint32) uint32 {
	calc := ceilDiv(uint64(burstAP)*apsPerTurn, 100)
	half := ceilDiv(uint64(burstAP), 2)
	return basic + uint32(max(calc, half))
}

// AutoAP returns basic + max(raw, ceil(raw/2)) where
// raw = ceil(floor(4800/shotsPerFiveAP)/100). shotsPerFiveAP must be positive.
func AutoAP(basic, shotsPerFiveAP uint32) uint32 {
	raw := ceilDiv(autofireBudget/uint64(shotsPerFiveAP), 100)
	// max against its own half never changes raw >= 1; kept for output parity
	raw = max(raw, ceilDiv(raw, 2))
	return basic + uint32(raw)
}

// RecoilTotal returns round(sqrt(x² + y²) * 10) / 10, computed at float32
// precision like the source values.
func RecoilTotal(x, y float32) float32 {
	magnitude := float32(math.Sqrt(float64(x*x + y*y)))
	return float32(math.Round(float64(magnitude*10))) / 10
}

// ComputeStats derives the output row of a validated triple.
//
// Pure function: No I/O operations, the same input always yields the same row.
func ComputeStats(v Validated) app.OutputRow {
	basic := BasicAttackAP(v.fireRateDenominator)

	row := app.OutputRow{
		Index:               v.Index,
		Name:                v.Name,
		LongName:            v.LongName,
		Category:            v.Category,
		Caliber:             v.Caliber,
		MagSize:             v.MagSize,
		Range:               float32(v.Range) / 10,
		Accuracy:            v.Accuracy,
		AimLevels:           v.AimLevels,
		Damage:              v.Damage,
		Handling:            v.Handling,
		APsToReady:          v.ReadyTime,
		APsToReload:         v.Reload,
		APsToReloadManually: v.APsToReloadManually,
		Hands:               1,
		Loudness:            v.Loudness,
		ShotsPerBurst:       v.ShotsPerBurst,
		AutofirePerFiveAP:   v.AutofirePerFiveAP,
		RecoilX:             v.RecoilX,
		RecoilY:             v.RecoilY,
		Weight:              v.Weight,
		Coolness:            v.Coolness,
		Buyable:             !v.NotBuyable,
		Price:               v.Price,
	}

	if !v.NoSemiAuto {
		row.APsToAttack = ptr(basic)
	}

	if v.ShotsPerBurst != nil && *v.ShotsPerBurst > 0 && v.BurstAP != nil {
		row.APsToBurst = ptr(BurstAP(basic, *v.BurstAP))
	}

	if v.AutofirePerFiveAP != nil && *v.AutofirePerFiveAP > 0 {
		row.APsToAuto = ptr(AutoAP(basic, *v.AutofirePerFiveAP))
	}

	if v.RecoilX != nil && v.RecoilY != nil {
		row.RecoilTotal = ptr(RecoilTotal(*v.RecoilX, *v.RecoilY))
	}

	if v.TwoHanded {
		row.Hands = 2
	}
	if v.Reliability != nil {
		row.Reliability = *v.Reliability
	}
	if v.RepairEase != nil {
		row.RepairEase = *v.RepairEase
	}

	return row
}

func ceilDiv(n, d uint64) uint64 {
	return (n + d - 1) / d
}

func ptr[T any](v T) *T {
	return &v
}
