package defs

import (
	"errors"
	"image/color"
	"testing"
)

func testDefs() []EnemyDefinition {
	return []EnemyDefinition{
		{ID: "A", Health: 10, Speed: 10, Radius: 5, Weight: 1, UnlockAt: 0, Color: "#010203"},
		{ID: "B", Health: 10, Speed: 10, Radius: 5, Weight: 1, UnlockAt: 30},
		{ID: "C", Health: 10, Speed: 10, Radius: 5, Weight: 1, UnlockAt: 60},
	}
}

func TestLibraryUnlocked(t *testing.T) {
	lib, err := NewLibrary(testDefs())
	if err != nil {
		t.Fatalf("NewLibrary() failed: %v", err)
	}

	tests := []struct {
		elapsed float64
		want    []string
	}{
		{0, []string{"A"}},
		{29.9, []string{"A"}},
		{30, []string{"A", "B"}},
		{1000, []string{"A", "B", "C"}},
	}
	for _, tc := range tests {
		got := lib.Unlocked(tc.elapsed)
		if len(got) != len(tc.want) {
			t.Errorf("Unlocked(%v) returned %d templates, want %d", tc.elapsed, len(got), len(tc.want))
			continue
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Errorf("Unlocked(%v)[%d] = %s, want %s", tc.elapsed, i, got[i].ID, id)
			}
		}
	}
}

func TestLibraryGetAndFallback(t *testing.T) {
	lib, err := NewLibrary(testDefs())
	if err != nil {
		t.Fatal(err)
	}
	if def, ok := lib.Get("B"); !ok || def.UnlockAt != 30 {
		t.Errorf("Get(B) = %+v, %v", def, ok)
	}
	if _, ok := lib.Get("missing"); ok {
		t.Error("Get(missing) should fail")
	}
	if lib.Fallback().ID != "A" {
		t.Errorf("Fallback() = %s, want A", lib.Fallback().ID)
	}
	if lib.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lib.Len())
	}
}

func TestNewLibraryErrors(t *testing.T) {
	if _, err := NewLibrary(nil); !errors.Is(err, ErrEmptyLibrary) {
		t.Errorf("NewLibrary(nil) = %v, want ErrEmptyLibrary", err)
	}
	dup := append(testDefs(), EnemyDefinition{ID: "A", Health: 1, Radius: 1})
	if _, err := NewLibrary(dup); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}, false},
		{"ff8000", color.RGBA{255, 128, 0, 255}, false},
		{"#ff800080", color.RGBA{255, 128, 0, 128}, false},
		{"", color.RGBA{0, 0, 0, 255}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tc := range tests {
		got, err := ParseHexColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEnemyDefinitionValidate(t *testing.T) {
	good := EnemyDefinition{ID: "X", Health: 1, Radius: 1, Color: "#000000"}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	bad := good
	bad.Radius = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero radius should be rejected")
	}
	bad = good
	bad.Color = "red"
	if err := bad.Validate(); err == nil {
		t.Error("bad colour should be rejected")
	}
}
