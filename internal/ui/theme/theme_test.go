package theme

import "testing"

func TestAccentWraps(t *testing.T) {
	if got := Nord.Accent(7); got != Nord.Accents[2] {
		t.Errorf("Accent(7) = %v, want %v", got, Nord.Accents[2])
	}
	if got := AccentName(-1); got != "rose" {
		t.Errorf("AccentName(-1) = %q, want rose", got)
	}
}

func TestNextCycles(t *testing.T) {
	defer SetTheme(Nord)

	SetTheme(Nord)
	if got := Next(); got.Name != "dracula" {
		t.Errorf("Next() = %s, want dracula", got.Name)
	}
	SetTheme(Dracula)
	if got := Next(); got.Name != "nord" {
		t.Errorf("Next() = %s, want nord", got.Name)
	}
	if _, ok := ByName("solarized"); ok {
		t.Error("unknown theme found")
	}
}
