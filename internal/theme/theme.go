package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Palette is the application theme: an immutable configuration object
// constructed once at startup and handed to every component that renders
// themed content. It overrides the severity color tokens with a light and
// a dark rendition and delegates everything else to the platform default.
type Palette struct {
	base      fyne.Theme
	overrides map[fyne.ThemeVariant]map[fyne.ThemeColorName]color.Color
}

// NewPalette builds the palette over the default theme.
func NewPalette() *Palette {
	return &Palette{
		base: fynetheme.DefaultTheme(),
		overrides: map[fyne.ThemeVariant]map[fyne.ThemeColorName]color.Color{
			fynetheme.VariantLight: {
				fynetheme.ColorNameError:   color.NRGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff},
				fynetheme.ColorNameWarning: color.NRGBA{R: 0xef, G: 0x6c, B: 0x00, A: 0xff},
				fynetheme.ColorNamePrimary: color.NRGBA{R: 0x15, G: 0x65, B: 0xc0, A: 0xff},
				fynetheme.ColorNameSuccess: color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff},
			},
			fynetheme.VariantDark: {
				fynetheme.ColorNameError:   color.NRGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff},
				fynetheme.ColorNameWarning: color.NRGBA{R: 0xff, G: 0xa7, B: 0x26, A: 0xff},
				fynetheme.ColorNamePrimary: color.NRGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff},
				fynetheme.ColorNameSuccess: color.NRGBA{R: 0x66, G: 0xbb, B: 0x6a, A: 0xff},
			},
		},
	}
}

func (p *Palette) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if byName, ok := p.overrides[variant]; ok {
		if c, ok := byName[name]; ok {
			return c
		}
	}
	return p.base.Color(name, variant)
}

func (p *Palette) Font(style fyne.TextStyle) fyne.Resource {
	return p.base.Font(style)
}

func (p *Palette) Icon(name fyne.ThemeIconName) fyne.Resource {
	return p.base.Icon(name)
}

func (p *Palette) Size(name fyne.ThemeSizeName) float32 {
	return p.base.Size(name)
}

// CurrentColor resolves a color token under the running app's light/dark
// preference at read time.
func (p *Palette) CurrentColor(name fyne.ThemeColorName) color.Color {
	variant := fynetheme.VariantDark
	if app := fyne.CurrentApp(); app != nil {
		variant = app.Settings().ThemeVariant()
	}
	return p.Color(name, variant)
}

// TitleStyle is the text style for row titles.
func (p *Palette) TitleStyle() fyne.TextStyle {
	return fyne.TextStyle{Bold: true}
}

// CaptionStyle is the text style for secondary row text.
func (p *Palette) CaptionStyle() fyne.TextStyle {
	return fyne.TextStyle{Italic: true}
}
