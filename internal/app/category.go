package app

// WeaponCategory is the closed weapon classification used for display and
// as the primary sort key of the exported table. The declaration order is
// the sort order.
type WeaponCategory int

const (
	CategoryPistol WeaponCategory = iota
	CategoryMachinePistol
	CategorySMG
	CategoryRifle
	CategorySniperRifle
	CategoryAssaultRifle
	CategoryLMG
	CategoryShotgun
)

var categoryLabels = [...]string{
	CategoryPistol:        "Pistol",
	CategoryMachinePistol: "MP",
	CategorySMG:           "SMG",
	CategoryRifle:         "Rifle",
	CategorySniperRifle:   "SR",
	CategoryAssaultRifle:  "AR",
	CategoryLMG:           "LMG",
	CategoryShotgun:       "Shotgun",
}

// CategoryFromCode maps a ubWeaponType code to its category.
// Only codes 1 through 8 are recognized.
func CategoryFromCode(code uint32) (WeaponCategory, bool) {
	if code < 1 || code > 8 {
		return 0, false
	}
	return WeaponCategory(code - 1), true
}

// String returns the label written to exported tables
func (c WeaponCategory) String() string {
	if c < 0 || int(c) >= len(categoryLabels) {
		return "Unknown"
	}
	return categoryLabels[c]
}
