package weapon

import "ncth_weapons/internal/app"

func u32(v uint32) *uint32 { return &v }
func u16(v uint16) *uint16 { return &v }
func i32(v int32) *int32 { return &v }
func f32(v float32) *float32 { return &v }

// testWeapon returns a weapon record carrying every required field
func testWeapon(index, caliber uint32, name string) app.WeaponRecord {
	return app.WeaponRecord{
		Index:          index,
		Name:           name,
		Type:           u32(1),
		Caliber:        u32(caliber),
		ReadyTime:      u32(10),
		ShotsPer4Turns: f32(2.0),
		Impact:         u32(23),
		MagSize:        u32(15),
		Range:          u16(140),
		AttackVolume:   u32(40),
		APsToReload:    u32(20),
		NCTHAccuracy:   i32(4),
		AimLevels:      u32(2),
		Handling:       u32(6),
	}
}

// testItem returns an item record carrying every required field
func testItem(index uint32, name string) app.ItemRecord {
	return app.ItemRecord{
		Index:    index,
		Name:     name,
		LongName: name + " long",
		Weight:   f32(1.2),
		Coolness: u32(3),
		Price:    u32(450),
	}
}

func testAmmo(index uint32, caliber string) app.AmmoRecord {
	return app.AmmoRecord{Index: index, CaliberName: caliber}
}

func testTriple() Triple {
	return Triple{
		Weapon: testWeapon(1, 2, "Glock 17"),
		Item:   testItem(1, "Glock 17"),
		Ammo:   testAmmo(2, "9mm"),
	}
}
