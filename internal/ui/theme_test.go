package ui

import "testing"

func TestThemeNamesAreBuiltin(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, ok := BuiltinThemes[name]; !ok {
			t.Errorf("theme %q listed but not defined", name)
		}
	}
	if len(ThemeNames()) != len(BuiltinThemes) {
		t.Errorf("ThemeNames() has %d entries, BuiltinThemes has %d", len(ThemeNames()), len(BuiltinThemes))
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeNord)
	if CurrentThemeName() != ThemeNord {
		t.Errorf("CurrentThemeName() = %q, want nord", CurrentThemeName())
	}
	if CurrentTheme().Name != BuiltinThemes[ThemeNord].Name {
		t.Errorf("CurrentTheme() = %q, want %q", CurrentTheme().Name, BuiltinThemes[ThemeNord].Name)
	}

	SetThemeByName("no-such-theme")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("unknown theme should fall back to %q, got %q", DefaultTheme, CurrentThemeName())
	}
}

func TestNextThemeWraps(t *testing.T) {
	defer SetTheme(DefaultTheme)

	names := ThemeNames()
	SetTheme(names[len(names)-1])
	if got := NextTheme(); got != names[0] {
		t.Errorf("NextTheme() = %q, want %q", got, names[0])
	}

	SetTheme(names[0])
	if got := NextTheme(); got != names[1] {
		t.Errorf("NextTheme() = %q, want %q", got, names[1])
	}
}

func TestThemeDefaults(t *testing.T) {
	th := Theme{Primary: "#111111"}
	if th.GetBgSelected() != "#111111" {
		t.Errorf("GetBgSelected() = %q, want Primary", th.GetBgSelected())
	}
	if th.GetBorderFocus() != "#111111" {
		t.Errorf("GetBorderFocus() = %q, want Primary", th.GetBorderFocus())
	}

	th.BgSelected = "#222222"
	if th.GetBgSelected() != "#222222" {
		t.Errorf("GetBgSelected() = %q, want #222222", th.GetBgSelected())
	}
}
