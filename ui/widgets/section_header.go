package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "ocr-translator/ui/theme"
)

// SectionHeader is the small caption above each form field
type SectionHeader struct {
	widget.BaseWidget

	Title string
	Hint  string
}

// NewSectionHeader creates a new section header
func NewSectionHeader(title string) *SectionHeader {
	h := &SectionHeader{Title: title}
	h.ExtendBaseWidget(h)
	return h
}

// NewSectionHeaderWithHint creates a section header with a secondary hint after the title
func NewSectionHeaderWithHint(title, hint string) *SectionHeader {
	h := &SectionHeader{Title: title, Hint: hint}
	h.ExtendBaseWidget(h)
	return h
}

// SetHint updates the hint
func (h *SectionHeader) SetHint(hint string) {
	h.Hint = hint
	h.Refresh()
}

// CreateRenderer implements fyne.Widget
func (h *SectionHeader) CreateRenderer() fyne.WidgetRenderer {
	title := canvas.NewText(h.Title, themeColor(theme.ColorNamePrimary))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 12

	hint := canvas.NewText(h.Hint, themeColor(appTheme.ColorNameTextHint))
	hint.TextSize = 11

	r := &sectionHeaderRenderer{
		title:  title,
		hint:   hint,
		widget: h,
	}
	r.Refresh()
	return r
}

type sectionHeaderRenderer struct {
	title  *canvas.Text
	hint   *canvas.Text
	widget *SectionHeader
}

func (r *sectionHeaderRenderer) Destroy() {}

func (r *sectionHeaderRenderer) Layout(size fyne.Size) {
	titleSize := r.title.MinSize()
	r.title.Move(fyne.NewPos(0, 0))
	r.title.Resize(titleSize)

	hintSize := r.hint.MinSize()
	r.hint.Move(fyne.NewPos(titleSize.Width+6, titleSize.Height-hintSize.Height))
	r.hint.Resize(hintSize)
}

func (r *sectionHeaderRenderer) MinSize() fyne.Size {
	titleSize := r.title.MinSize()
	if r.widget.Hint == "" {
		return titleSize
	}
	return fyne.NewSize(titleSize.Width+6+r.hint.MinSize().Width, titleSize.Height)
}

func (r *sectionHeaderRenderer) Objects() []fyne.CanvasObject {
	if r.widget.Hint == "" {
		return []fyne.CanvasObject{r.title}
	}
	return []fyne.CanvasObject{r.title, r.hint}
}

func (r *sectionHeaderRenderer) Refresh() {
	r.title.Text = r.widget.Title
	r.title.Color = themeColor(theme.ColorNamePrimary)
	r.title.Refresh()

	r.hint.Text = r.widget.Hint
	r.hint.Color = themeColor(appTheme.ColorNameTextHint)
	r.hint.Refresh()
}
