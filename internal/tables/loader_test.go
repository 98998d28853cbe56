package tables

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ncth_weapons/internal/app"
)

const weaponsXML = `<?xml version="1.0" encoding="utf-8"?>
<WEAPONLIST>
	<WEAPON>
		<uiIndex>1</uiIndex>
		<szWeaponName>Glock 17</szWeaponName>
		<bAccuracy>0</bAccuracy>
		<ubBurstPenalty>0</ubBurstPenalty>
		<AutoPenalty>0</AutoPenalty>
		<MaxDistForMessyDeath>0</MaxDistForMessyDeath>
		<ubWeaponType>1</ubWeaponType>
		<ubCalibre>2</ubCalibre>
		<ubReadyTime>10</ubReadyTime>
		<ubShotsPer4Turns>2.5</ubShotsPer4Turns>
		<ubImpact>23</ubImpact>
		<ubMagSize>17</ubMagSize>
		<usRange>140</usRange>
		<ubAttackVolume>40</ubAttackVolume>
		<APsToReload>20</APsToReload>
		<nAccuracy>4</nAccuracy>
		<ubAimLevels>2</ubAimLevels>
		<Handling>6</Handling>
		<bRecoilX>-0.5</bRecoilX>
		<bRecoilY>2</bRecoilY>
	</WEAPON>
	<WEAPON>
		<uiIndex>0</uiIndex>
		<szWeaponName>Nothing</szWeaponName>
		<bAccuracy>0</bAccuracy>
		<ubBurstPenalty>0</ubBurstPenalty>
		<AutoPenalty>0</AutoPenalty>
		<MaxDistForMessyDeath>0</MaxDistForMessyDeath>
	</WEAPON>
</WEAPONLIST>
`

const itemsXML = `<?xml version="1.0" encoding="utf-8"?>
<ITEMLIST>
	<ITEM>
		<uiIndex>1</uiIndex>
		<szItemName>Glock 17</szItemName>
		<szLongItemName>Glock 17 pistol</szLongItemName>
		<szItemDesc>Reliable.</szItemDesc>
		<usItemClass>2</usItemClass>
		<ubWeight>0.9</ubWeight>
		<usPrice>450</usPrice>
		<ubCoolness>2</ubCoolness>
		<DefaultAttachment>301</DefaultAttachment>
		<DefaultAttachment>302</DefaultAttachment>
		<AvailableAttachmentPoint>1</AvailableAttachmentPoint>
	</ITEM>
</ITEMLIST>
`

const ammoXML = `<?xml version="1.0" encoding="utf-8"?>
<AMMOLIST>
	<AMMO>
		<uiIndex>2</uiIndex>
		<AmmoCaliber>9mm</AmmoCaliber>
	</AMMO>
</AMMOLIST>
`

func writeTables(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoader_Load(t *testing.T) {
	dir := writeTables(t, map[string]string{
		WeaponsFile: "\xEF\xBB\xBF" + weaponsXML,
		ItemsFile:   itemsXML,
		AmmoFile:    ammoXML,
	})

	tables, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(tables.Weapons) != 2 || len(tables.Items) != 1 || len(tables.Ammo) != 1 {
		t.Fatalf("Unexpected table sizes: %d weapons, %d items, %d ammo",
			len(tables.Weapons), len(tables.Items), len(tables.Ammo))
	}

	glock := tables.Weapons[0]
	if glock.Index != 1 || glock.Name != "Glock 17" {
		t.Errorf("Unexpected weapon identity: %d %q", glock.Index, glock.Name)
	}
	if glock.ShotsPer4Turns == nil || *glock.ShotsPer4Turns != 2.5 {
		t.Errorf("Expected shots per 4 turns 2.5, got %v", glock.ShotsPer4Turns)
	}
	if glock.RecoilX == nil || *glock.RecoilX != -0.5 {
		t.Errorf("Expected recoil X -0.5, got %v", glock.RecoilX)
	}
	if glock.BurstAP != nil {
		t.Errorf("Expected absent burst AP, got %d", *glock.BurstAP)
	}

	placeholder := tables.Weapons[1]
	if placeholder.Caliber != nil || placeholder.Type != nil {
		t.Errorf("Expected placeholder without caliber or type")
	}

	item := tables.Items[0]
	if item.LongName != "Glock 17 pistol" || item.Weight == nil || *item.Weight != 0.9 {
		t.Errorf("Unexpected item: %+v", item)
	}
	if len(item.DefaultAttachments) != 2 {
		t.Errorf("Expected 2 default attachments, got %d", len(item.DefaultAttachments))
	}
	if item.TwoHanded != nil {
		t.Errorf("Expected absent two-handed flag")
	}

	if tables.Ammo[0].CaliberName != "9mm" {
		t.Errorf("Expected caliber 9mm, got %q", tables.Ammo[0].CaliberName)
	}
}

func TestLoader_MissingTable(t *testing.T) {
	dir := writeTables(t, map[string]string{
		WeaponsFile: weaponsXML,
		AmmoFile:    ammoXML,
	})

	_, err := NewLoader(dir).Load()

	var tableErr *TableError
	if !errors.As(err, &tableErr) {
		t.Fatalf("Expected *TableError, got %v", err)
	}
	if tableErr.Table != ItemsFile || tableErr.Stage != StageRead {
		t.Errorf("Expected read failure for %s, got %s %s", ItemsFile, tableErr.Stage, tableErr.Table)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoader_MalformedTable(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"truncated", `<AMMOLIST><AMMO><uiIndex>2</uiIndex>`},
		{"bad number", `<AMMOLIST><AMMO><uiIndex>two</uiIndex><AmmoCaliber>9mm</AmmoCaliber></AMMO></AMMOLIST>`},
		{"empty", ``},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeTables(t, map[string]string{
				WeaponsFile: weaponsXML,
				ItemsFile:   itemsXML,
				AmmoFile:    tc.content,
			})

			_, err := NewLoader(dir).Load()

			var tableErr *TableError
			if !errors.As(err, &tableErr) {
				t.Fatalf("Expected *TableError, got %v", err)
			}
			if tableErr.Table != AmmoFile || tableErr.Stage != StageDecode {
				t.Errorf("Expected decode failure for %s, got %s %s", AmmoFile, tableErr.Stage, tableErr.Table)
			}
			if !strings.Contains(err.Error(), "decode") {
				t.Errorf("Expected message to name the stage, got %q", err.Error())
			}
		})
	}
}

func TestDecode_LegacyEncoding(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"windows-1252\"?>\n" +
		"<AMMOLIST><AMMO><uiIndex>7</uiIndex><AmmoCaliber>7.62mm \xe9lite</AmmoCaliber></AMMO></AMMOLIST>"

	var list app.AmmoList
	if err := Decode(strings.NewReader(doc), &list); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(list.Ammo) != 1 || list.Ammo[0].CaliberName != "7.62mm élite" {
		t.Errorf("Expected transcoded caliber name, got %+v", list.Ammo)
	}
}

func TestDecode_UnknownEncoding(t *testing.T) {
	doc := `<?xml version="1.0" encoding="klingon"?><AMMOLIST></AMMOLIST>`

	var list app.AmmoList
	if err := Decode(strings.NewReader(doc), &list); err == nil {
		t.Fatal("Expected error for unknown encoding, got nil")
	}
}

func TestLoader_MissingRequiredElement(t *testing.T) {
	testCases := []struct {
		name    string
		table   string
		content string
		element string
	}{
		{
			"weapon without index", WeaponsFile,
			`<WEAPONLIST><WEAPON><szWeaponName>x</szWeaponName><bAccuracy>0</bAccuracy>` +
				`<ubBurstPenalty>0</ubBurstPenalty><AutoPenalty>0</AutoPenalty>` +
				`<MaxDistForMessyDeath>0</MaxDistForMessyDeath></WEAPON></WEAPONLIST>`,
			"uiIndex",
		},
		{
			"weapon without penalties", WeaponsFile,
			`<WEAPONLIST><WEAPON><uiIndex>3</uiIndex><szWeaponName>x</szWeaponName>` +
				`<bAccuracy>0</bAccuracy></WEAPON></WEAPONLIST>`,
			"ubBurstPenalty",
		},
		{
			"item without description", ItemsFile,
			`<ITEMLIST><ITEM><uiIndex>1</uiIndex><szItemName>a</szItemName>` +
				`<szLongItemName>a</szLongItemName><usItemClass>2</usItemClass></ITEM></ITEMLIST>`,
			"szItemDesc",
		},
		{
			"ammo without caliber", AmmoFile,
			`<AMMOLIST><AMMO><uiIndex>2</uiIndex></AMMO></AMMOLIST>`,
			"AmmoCaliber",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			files := map[string]string{
				WeaponsFile: weaponsXML,
				ItemsFile:   itemsXML,
				AmmoFile:    ammoXML,
			}
			files[tc.table] = tc.content

			_, err := NewLoader(writeTables(t, files)).Load()

			var tableErr *TableError
			if !errors.As(err, &tableErr) {
				t.Fatalf("Expected *TableError, got %v", err)
			}
			if tableErr.Table != tc.table || tableErr.Stage != StageDecode {
				t.Errorf("Expected decode failure for %s, got %s %s", tc.table, tableErr.Stage, tableErr.Table)
			}

			var missing *app.MissingElementError
			if !errors.As(err, &missing) {
				t.Fatalf("Expected *app.MissingElementError, got %v", err)
			}
			if missing.Element != tc.element {
				t.Errorf("Expected missing %s, got %s", tc.element, missing.Element)
			}
		})
	}
}

func TestDecode_EmptyRequiredElement(t *testing.T) {
	doc := `<ITEMLIST><ITEM><uiIndex>4</uiIndex><szItemName>b</szItemName>` +
		`<szLongItemName>b</szLongItemName><szItemDesc/><usItemClass>2</usItemClass></ITEM></ITEMLIST>`

	var list app.ItemList
	if err := Decode(strings.NewReader(doc), &list); err != nil {
		t.Fatalf("Expected present but empty element to decode, got %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Index != 4 || list.Items[0].Description != "" {
		t.Errorf("Unexpected items %+v", list.Items)
	}
}
