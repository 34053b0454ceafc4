package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"trash-manager/internal/locale"
)

// variantTheme pins the default theme to one variant regardless of the
// desktop preference.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func newVariantTheme(variant fyne.ThemeVariant) fyne.Theme {
	return &variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// darkModeItem is a checkable menu entry switching between dark and light.
// It starts checked when the desktop already uses a dark theme.
func (s *AppState) darkModeItem() *fyne.MenuItem {
	item := fyne.NewMenuItem(s.p.Sprintf(locale.MenuDarkMode), nil)
	item.Checked = s.app.Settings().ThemeVariant() == theme.VariantDark
	item.Action = func() {
		item.Checked = !item.Checked
		s.setDarkMode(item.Checked)
		if s.fileMenu != nil {
			s.fileMenu.Refresh()
		}
	}
	return item
}

func (s *AppState) setDarkMode(dark bool) {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	s.app.Settings().SetTheme(newVariantTheme(variant))
	s.logger.WithField("dark", dark).Debug("Theme variant changed")
}
