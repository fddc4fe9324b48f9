package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// themeColor looks up a named color in the current app theme.
func themeColor(name fyne.ThemeColorName) color.Color {
	settings := fyne.CurrentApp().Settings()
	return settings.Theme().Color(name, settings.ThemeVariant())
}

// ThemedRectangle is a rectangle that uses theme colors, so it follows light/dark switches
type ThemedRectangle struct {
	widget.BaseWidget

	ColorName       fyne.ThemeColorName
	StrokeColorName fyne.ThemeColorName
	StrokeWidth     float32
	CornerRadius    float32
	MinWidth        float32
	MinHeight       float32
}

// NewThemedRectangle creates a new themed rectangle
func NewThemedRectangle(colorName fyne.ThemeColorName) *ThemedRectangle {
	r := &ThemedRectangle{ColorName: colorName}
	r.ExtendBaseWidget(r)
	return r
}

// NewThemedRectangleWithRadius creates a themed rectangle with rounded corners
func NewThemedRectangleWithRadius(colorName fyne.ThemeColorName, radius float32) *ThemedRectangle {
	r := &ThemedRectangle{
		ColorName:    colorName,
		CornerRadius: radius,
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetMinSize sets the minimum size for the rectangle
func (r *ThemedRectangle) SetMinSize(size fyne.Size) {
	r.MinWidth = size.Width
	r.MinHeight = size.Height
	r.Refresh()
}

// CreateRenderer implements fyne.Widget
func (r *ThemedRectangle) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(themeColor(r.ColorName))
	rect.CornerRadius = r.CornerRadius

	renderer := &themedRectangleRenderer{
		rect:   rect,
		widget: r,
	}
	renderer.Refresh()
	return renderer
}

type themedRectangleRenderer struct {
	rect   *canvas.Rectangle
	widget *ThemedRectangle
}

func (r *themedRectangleRenderer) Destroy() {}

func (r *themedRectangleRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
}

func (r *themedRectangleRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.widget.MinWidth, r.widget.MinHeight)
}

func (r *themedRectangleRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect}
}

func (r *themedRectangleRenderer) Refresh() {
	r.rect.FillColor = themeColor(r.widget.ColorName)
	r.rect.CornerRadius = r.widget.CornerRadius

	if r.widget.StrokeColorName != "" {
		r.rect.StrokeColor = themeColor(r.widget.StrokeColorName)
		r.rect.StrokeWidth = r.widget.StrokeWidth
	} else {
		r.rect.StrokeWidth = 0
	}

	r.rect.Refresh()
}

// Panel is a container with a themed background
type Panel struct {
	widget.BaseWidget

	Content      fyne.CanvasObject
	ColorName    fyne.ThemeColorName
	CornerRadius float32
	Padding      float32
}

// NewPanel creates a new panel with themed background
func NewPanel(colorName fyne.ThemeColorName, content fyne.CanvasObject) *Panel {
	p := &Panel{
		Content:      content,
		ColorName:    colorName,
		CornerRadius: 8,
		Padding:      12,
	}
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(themeColor(p.ColorName))
	bg.CornerRadius = p.CornerRadius

	return &panelRenderer{
		bg:     bg,
		widget: p,
	}
}

type panelRenderer struct {
	bg     *canvas.Rectangle
	widget *Panel
}

func (r *panelRenderer) Destroy() {}

func (r *panelRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	padding := r.widget.Padding
	r.widget.Content.Resize(fyne.NewSize(size.Width-padding*2, size.Height-padding*2))
	r.widget.Content.Move(fyne.NewPos(padding, padding))
}

func (r *panelRenderer) MinSize() fyne.Size {
	contentMin := r.widget.Content.MinSize()
	padding := r.widget.Padding * 2
	return fyne.NewSize(contentMin.Width+padding, contentMin.Height+padding)
}

func (r *panelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.widget.Content}
}

func (r *panelRenderer) Refresh() {
	r.bg.FillColor = themeColor(r.widget.ColorName)
	r.bg.CornerRadius = r.widget.CornerRadius
	r.bg.Refresh()
	r.widget.Content.Refresh()
}
