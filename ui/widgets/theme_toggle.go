package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "ocr-translator/ui/theme"
)

const (
	lightModeIcon = "☀️"
	darkModeIcon  = "🌙"
)

// ThemeToggle is a round button that flips between light and dark mode
type ThemeToggle struct {
	widget.BaseWidget

	OnChanged func(mode appTheme.Mode)

	mode    appTheme.Mode
	hovered bool
	pressed bool
}

// NewThemeToggle creates a toggle showing the given mode
func NewThemeToggle(mode appTheme.Mode, onChanged func(mode appTheme.Mode)) *ThemeToggle {
	t := &ThemeToggle{
		mode:      mode,
		OnChanged: onChanged,
	}
	t.ExtendBaseWidget(t)
	return t
}

// Mode returns the current mode
func (t *ThemeToggle) Mode() appTheme.Mode {
	return t.mode
}

// Icon returns the glyph shown for the current mode
func (t *ThemeToggle) Icon() string {
	if t.mode == appTheme.ModeDark {
		return darkModeIcon
	}
	return lightModeIcon
}

// Toggle flips the mode and notifies OnChanged
func (t *ThemeToggle) Toggle() {
	t.mode = t.mode.Toggle()
	t.Refresh()
	if t.OnChanged != nil {
		t.OnChanged(t.mode)
	}
}

// Tapped handles tap events
func (t *ThemeToggle) Tapped(_ *fyne.PointEvent) {
	t.Toggle()
}

// MouseIn handles mouse enter
func (t *ThemeToggle) MouseIn(_ *desktop.MouseEvent) {
	t.hovered = true
	t.Refresh()
}

// MouseOut handles mouse exit
func (t *ThemeToggle) MouseOut() {
	t.hovered = false
	t.pressed = false
	t.Refresh()
}

// MouseMoved handles mouse movement
func (t *ThemeToggle) MouseMoved(_ *desktop.MouseEvent) {}

// MouseDown handles mouse down
func (t *ThemeToggle) MouseDown(_ *desktop.MouseEvent) {
	t.pressed = true
	t.Refresh()
}

// MouseUp handles mouse up
func (t *ThemeToggle) MouseUp(_ *desktop.MouseEvent) {
	t.pressed = false
	t.Refresh()
}

// CreateRenderer implements fyne.Widget
func (t *ThemeToggle) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewRectangle(color.Transparent)
	track.CornerRadius = 12

	knob := canvas.NewCircle(appTheme.ColorSecondary)

	icon := canvas.NewText(t.Icon(), color.White)
	icon.TextSize = 12
	icon.Alignment = fyne.TextAlignCenter

	r := &themeToggleRenderer{
		track:  track,
		knob:   knob,
		icon:   icon,
		widget: t,
	}
	r.Refresh()
	return r
}

type themeToggleRenderer struct {
	track  *canvas.Rectangle
	knob   *canvas.Circle
	icon   *canvas.Text
	widget *ThemeToggle
}

func (r *themeToggleRenderer) Destroy() {}

func (r *themeToggleRenderer) Layout(size fyne.Size) {
	r.track.Resize(size)

	knobSize := size.Height - 4
	x := float32(2)
	if r.widget.mode == appTheme.ModeDark {
		x = size.Width - knobSize - 2
	}
	r.knob.Resize(fyne.NewSize(knobSize, knobSize))
	r.knob.Move(fyne.NewPos(x, 2))

	r.icon.Resize(fyne.NewSize(knobSize, knobSize))
	r.icon.Move(fyne.NewPos(x, 2+(knobSize-r.icon.MinSize().Height)/2))
}

func (r *themeToggleRenderer) MinSize() fyne.Size {
	return fyne.NewSize(48, 24)
}

func (r *themeToggleRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track, r.knob, r.icon}
}

func (r *themeToggleRenderer) Refresh() {
	switch {
	case r.widget.pressed:
		r.track.FillColor = themeColor(theme.ColorNamePressed)
	case r.widget.hovered:
		r.track.FillColor = themeColor(theme.ColorNameHover)
	default:
		r.track.FillColor = themeColor(appTheme.ColorNameSurfaceVariant)
	}
	r.track.StrokeColor = themeColor(appTheme.ColorNameDivider)
	r.track.StrokeWidth = 1

	r.icon.Text = r.widget.Icon()

	if size := r.widget.Size(); !size.IsZero() {
		r.Layout(size)
	}
	r.track.Refresh()
	r.knob.Refresh()
	r.icon.Refresh()
}
