package weapon

import (
	"testing"

	"ncth_weapons/internal/app"
)

func TestSortRows(t *testing.T) {
	rows := []app.OutputRow{
		{Index: 1, Name: "SPAS-15", Category: app.CategoryShotgun},
		{Index: 2, Name: "Glock 18", Category: app.CategoryMachinePistol},
		{Index: 3, Name: "Beretta 92F", Category: app.CategoryPistol},
		{Index: 4, Name: "Colt .45", Category: app.CategoryPistol},
		{Index: 5, Name: "AK-74", Category: app.CategoryAssaultRifle},
		{Index: 6, Name: "Barrett", Category: app.CategorySniperRifle},
		{Index: 7, Name: "MP5K", Category: app.CategorySMG},
		{Index: 8, Name: "Dragunov", Category: app.CategorySniperRifle},
		{Index: 9, Name: "RPK", Category: app.CategoryLMG},
		{Index: 10, Name: "Mini-14", Category: app.CategoryRifle},
	}

	sorted := SortRows(rows)

	expected := []uint32{3, 4, 2, 7, 10, 6, 8, 5, 9, 1}
	for i, idx := range expected {
		if sorted[i].Index != idx {
			t.Fatalf("Position %d: expected weapon %d, got %d (%s)", i, idx, sorted[i].Index, sorted[i].Name)
		}
	}

	// Verify original slice unchanged
	if rows[0].Index != 1 {
		t.Errorf("Original slice was modified")
	}
}

func TestSortRows_CaseSensitive(t *testing.T) {
	rows := []app.OutputRow{
		{Index: 1, Name: "beretta"},
		{Index: 2, Name: "Beretta"},
		{Index: 3, Name: "Zastava"},
	}

	sorted := SortRows(rows)

	// Upper case sorts before lower case byte-wise
	if sorted[0].Index != 2 || sorted[1].Index != 3 || sorted[2].Index != 1 {
		t.Errorf("Rows not sorted byte-wise: %v", sorted)
	}
}

func TestSortRows_StableOnTies(t *testing.T) {
	rows := []app.OutputRow{
		{Index: 7, Name: "Glock 17"},
		{Index: 3, Name: "Glock 17"},
		{Index: 5, Name: "Glock 17"},
	}

	sorted := SortRows(rows)

	if sorted[0].Index != 7 || sorted[1].Index != 3 || sorted[2].Index != 5 {
		t.Errorf("Tied rows reordered: %v", sorted)
	}
}

func TestSortRows_EmptySlice(t *testing.T) {
	sorted := SortRows([]app.OutputRow{})

	if len(sorted) != 0 {
		t.Errorf("Expected empty slice, got %d items", len(sorted))
	}
}
