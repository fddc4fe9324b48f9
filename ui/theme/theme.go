package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Mode is the light/dark flag owned by the theme toggle.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// Variant maps the mode onto fyne's theme variant.
func (m Mode) Variant() fyne.ThemeVariant {
	if m == ModeDark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Custom theme color names
const (
	ColorNameSurface        fyne.ThemeColorName = "surface"
	ColorNameSurfaceVariant fyne.ThemeColorName = "surfaceVariant"
	ColorNameDivider        fyne.ThemeColorName = "divider"
	ColorNameInputBg        fyne.ThemeColorName = "inputBg"
	ColorNameDropZone       fyne.ThemeColorName = "dropZone"
	ColorNameDropZoneEdge   fyne.ThemeColorName = "dropZoneEdge"
	ColorNameDropZoneFilled fyne.ThemeColorName = "dropZoneFilled"

	// Request status colors
	ColorNameRequestPending    fyne.ThemeColorName = "requestPending"
	ColorNameRequestProcessing fyne.ThemeColorName = "requestProcessing"
	ColorNameRequestCompleted  fyne.ThemeColorName = "requestCompleted"
	ColorNameRequestFailed     fyne.ThemeColorName = "requestFailed"

	// Text variants
	ColorNameTextSecondary fyne.ThemeColorName = "textSecondary"
	ColorNameTextHint      fyne.ThemeColorName = "textHint"
)

// Custom size names
const (
	SizeNameCardRadius   fyne.ThemeSizeName = "cardRadius"
	SizeNamePreviewImage fyne.ThemeSizeName = "previewImage"
	SizeNameResultHeight fyne.ThemeSizeName = "resultHeight"
)

// AppTheme renders the app in a fixed mode, ignoring the OS variant.
type AppTheme struct {
	mode    Mode
	palette Palette
}

var _ fyne.Theme = (*AppTheme)(nil)

// New returns the theme for mode.
func New(mode Mode) *AppTheme {
	p := LightPalette
	if mode == ModeDark {
		p = DarkPalette
	}
	return &AppTheme{mode: mode, palette: p}
}

// Mode returns the mode this theme renders.
func (t *AppTheme) Mode() Mode {
	return t.mode
}

// Color returns the color for the specified name
func (t *AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	p := t.palette
	switch name {
	// Core colors
	case theme.ColorNameBackground:
		return p.Background
	case theme.ColorNameForeground:
		return p.TextPrimary
	case theme.ColorNamePrimary:
		return ColorPrimary
	case theme.ColorNameButton:
		return p.SurfaceVariant
	case theme.ColorNameForegroundOnPrimary:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// Input colors
	case theme.ColorNameInputBackground:
		return p.InputBg
	case theme.ColorNameInputBorder:
		return p.Divider
	case theme.ColorNamePlaceHolder:
		return p.TextHint
	case theme.ColorNameFocus:
		return WithAlpha(ColorPrimary, 180)

	// Selection colors
	case theme.ColorNameSelection:
		return WithAlpha(ColorPrimary, 80)
	case theme.ColorNameHover:
		return p.Hover
	case theme.ColorNamePressed:
		return p.Pressed

	// Disabled colors
	case theme.ColorNameDisabled:
		return p.TextDisabled
	case theme.ColorNameDisabledButton:
		return p.DisabledBg

	case theme.ColorNameScrollBar:
		return p.Scrollbar
	case theme.ColorNameSeparator:
		return p.Divider

	case theme.ColorNameError:
		return ColorError
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameWarning:
		return ColorWarning

	// Shadow (for cards, dialogs)
	case theme.ColorNameShadow:
		if t.mode == ModeDark {
			return color.NRGBA{R: 0, G: 0, B: 0, A: 100}
		}
		return color.NRGBA{R: 0, G: 0, B: 0, A: 40}

	// Menu/overlay
	case theme.ColorNameOverlayBackground:
		return p.Overlay
	case theme.ColorNameMenuBackground, theme.ColorNameHeaderBackground:
		return p.Surface

	// Custom colors
	case ColorNameSurface:
		return p.Surface
	case ColorNameSurfaceVariant:
		return p.SurfaceVariant
	case ColorNameDivider:
		return p.Divider
	case ColorNameInputBg:
		return p.InputBg
	case ColorNameDropZone:
		return p.DropZone
	case ColorNameDropZoneEdge:
		return p.DropZoneEdge
	case ColorNameDropZoneFilled:
		return Blend(p.DropZone, ColorPrimary, 0.12)
	case ColorNameRequestPending:
		return ColorPending
	case ColorNameRequestProcessing:
		return ColorProcessing
	case ColorNameRequestCompleted:
		return ColorSuccess
	case ColorNameRequestFailed:
		return ColorError
	case ColorNameTextSecondary:
		return p.TextSecondary
	case ColorNameTextHint:
		return p.TextHint

	case theme.ColorNameHyperlink:
		return ColorSecondary

	default:
		return theme.DefaultTheme().Color(name, t.mode.Variant())
	}
}

// Font returns the font for the specified style
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the icon for the specified name
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 6

	case SizeNameCardRadius:
		return 8
	case SizeNamePreviewImage:
		return 160
	case SizeNameResultHeight:
		return 220

	default:
		return theme.DefaultTheme().Size(name)
	}
}
