package app

// WeaponRecord represents one <WEAPON> entry of Weapons.xml.
// Optional fields are nil when the element is absent from the source.
type WeaponRecord struct {
	Index                            uint32   `xml:"uiIndex"`
	Name                             string   `xml:"szWeaponName"`
	Accuracy                         int32    `xml:"bAccuracy"`
	BurstPenalty                     uint32   `xml:"ubBurstPenalty"`
	AutoPenalty                      uint32   `xml:"AutoPenalty"`
	MaxDistForMessyDeath             uint32   `xml:"MaxDistForMessyDeath"`
	Class                            *uint32  `xml:"ubWeaponClass"`
	Type                             *uint32  `xml:"ubWeaponType"`
	Caliber                          *uint32  `xml:"ubCalibre"`
	ReadyTime                        *uint32  `xml:"ubReadyTime"`
	ShotsPer4Turns                   *float32 `xml:"ubShotsPer4Turns"`
	BurstAP                          *uint32  `xml:"bBurstAP"`
	BulletSpeed                      *uint32  `xml:"ubBulletSpeed"`
	Impact                           *uint32  `xml:"ubImpact"`
	Deadliness                       *uint32  `xml:"ubDeadliness"`
	MagSize                          *uint32  `xml:"ubMagSize"`
	Range                            *uint16  `xml:"usRange"`
	ReloadDelay                      *uint16  `xml:"usReloadDelay"`
	AttackVolume                     *uint32  `xml:"ubAttackVolume"`
	HitVolume                        *uint32  `xml:"ubHitVolume"`
	Sound                            *int16   `xml:"sSound"`
	ReloadSound                      *int16   `xml:"sReloadSound"`
	LockNLoadSound                   *int16   `xml:"sLocknLoadSound"`
	SilencedSound                    *uint32  `xml:"SilencedSound"`
	APsToReload                      *uint32  `xml:"APsToReload"`
	APsToReloadManually              *uint32  `xml:"APsToReloadManually"`
	SwapClips                        *uint32  `xml:"SwapClips"`
	ManualReloadSound                *uint32  `xml:"ManualReloadSound"`
	NCTHAccuracy                     *int32   `xml:"nAccuracy"`
	AimLevels                        *uint32  `xml:"ubAimLevels"`
	Handling                         *uint32  `xml:"Handling"`
	AutofireShotsPerFiveAP           *uint32  `xml:"bAutofireShotsPerFiveAP"`
	ShotsPerBurst                    *uint32  `xml:"ubShotsPerBurst"`
	RecoilX                          *float32 `xml:"bRecoilX"`
	RecoilY                          *float32 `xml:"bRecoilY"`
	OverheatingJamThreshold          *uint32  `xml:"usOverheatingJamThreshold"`
	OverheatingDamageThreshold       *uint32  `xml:"usOverheatingDamageThreshold"`
	OverheatingSingleShotTemperature *uint32  `xml:"usOverheatingSingleShotTemperature"`
	NoSemiAuto                       *uint32  `xml:"NoSemiAuto"`
}

// WeaponList is the root of Weapons.xml
type WeaponList struct {
	Weapons []WeaponRecord `xml:"WEAPON"`
}

// ItemRecord represents one <ITEM> entry of Items.xml. Items share the
// identifier space of weapons: a weapon's item-side attributes live under
// the same uiIndex.
type ItemRecord struct {
	Index              uint32   `xml:"uiIndex"`
	Name               string   `xml:"szItemName"`
	LongName           string   `xml:"szLongItemName"`
	Description        string   `xml:"szItemDesc"`
	Class              uint32   `xml:"usItemClass"`
	AttachmentClass    *uint32  `xml:"AttachmentClass"`
	Weight             *float32 `xml:"ubWeight"`
	Size               *uint32  `xml:"ItemSize"`
	Price              *uint32  `xml:"usPrice"`
	Coolness           *uint32  `xml:"ubCoolness"`
	Reliability        *int32   `xml:"bReliability"`
	RepairEase         *int32   `xml:"bRepairEase"`
	Damageable         *uint32  `xml:"Damageable"`
	Repairable         *uint32  `xml:"Repairable"`
	WaterDamages       *uint32  `xml:"WaterDamages"`
	Metal              *uint32  `xml:"Metal"`
	Sinks              *uint32  `xml:"Sinks"`
	ShowStatus         *uint32  `xml:"ShowStatus"`
	DefaultAttachments []uint32 `xml:"DefaultAttachment"`
	DamageChance       *uint32  `xml:"DamageChance"`
	DirtIncreaseFactor *float32 `xml:"DirtIncreaseFactor"`
	NotBuyable         *uint32  `xml:"NotBuyable"`
	TwoHanded          *uint32  `xml:"TwoHanded"`
}

// ItemList is the root of Items.xml
type ItemList struct {
	Items []ItemRecord `xml:"ITEM"`
}

// AmmoRecord represents one <AMMO> entry of AmmoStrings.xml
type AmmoRecord struct {
	Index       uint32 `xml:"uiIndex"`
	CaliberName string `xml:"AmmoCaliber"`
}

// AmmoList is the root of AmmoStrings.xml
type AmmoList struct {
	Ammo []AmmoRecord `xml:"AMMO"`
}

// Tables groups the three decoded source tables of one run
type Tables struct {
	Weapons []WeaponRecord
	Items   []ItemRecord
	Ammo    []AmmoRecord
}

// OutputRow is one exported line of the NCTH weapon table.
// Nil pointers are written as empty cells.
type OutputRow struct {
	Index               uint32
	Name                string
	LongName            string
	Category            WeaponCategory
	Caliber             string
	MagSize             uint32
	Range               float32
	Accuracy            int32
	AimLevels           uint32
	Damage              uint32
	Handling            uint32
	APsToReady          uint32
	APsToAttack         *uint32
	APsToBurst          *uint32
	APsToAuto           *uint32
	APsToReload         uint32
	APsToReloadManually *uint32
	Hands               uint32
	Loudness            uint32
	Reliability         int32
	RepairEase          int32
	ShotsPerBurst       *uint32
	AutofirePerFiveAP   *uint32
	RecoilX             *float32
	RecoilY             *float32
	RecoilTotal         *float32
	Weight              float32
	Coolness            uint32
	Buyable             bool
	Price               *uint32
}
