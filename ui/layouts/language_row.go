package layouts

import (
	"fyne.io/fyne/v2"
)

// LanguageRowLayout puts two equally wide selectors either side of a fixed-width separator
type LanguageRowLayout struct {
	SeparatorWidth float32
	Padding        float32
}

// NewLanguageRowLayout creates a new language row layout
func NewLanguageRowLayout(separatorWidth, padding float32) *LanguageRowLayout {
	return &LanguageRowLayout{
		SeparatorWidth: separatorWidth,
		Padding:        padding,
	}
}

// Layout arranges the objects: [0] = source, [1] = separator, [2] = target
func (l *LanguageRowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}

	source := objects[0]
	separator := objects[1]
	target := objects[2]

	side := (size.Width - l.SeparatorWidth - l.Padding*2) / 2
	if side < 0 {
		side = 0
	}

	source.Resize(fyne.NewSize(side, size.Height))
	source.Move(fyne.NewPos(0, 0))

	sepHeight := fyne.Min(size.Height, separator.MinSize().Height)
	separator.Resize(fyne.NewSize(l.SeparatorWidth, sepHeight))
	separator.Move(fyne.NewPos(side+l.Padding, size.Height-sepHeight))

	target.Resize(fyne.NewSize(side, size.Height))
	target.Move(fyne.NewPos(size.Width-side, 0))
}

// MinSize returns the minimum size needed for the layout
func (l *LanguageRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}

	sourceMin := objects[0].MinSize()
	separatorMin := objects[1].MinSize()
	targetMin := objects[2].MinSize()

	side := fyne.Max(sourceMin.Width, targetMin.Width)
	minHeight := fyne.Max(sourceMin.Height, fyne.Max(separatorMin.Height, targetMin.Height))

	return fyne.NewSize(side*2+l.SeparatorWidth+l.Padding*2, minHeight)
}

// ContentWithFooter stacks scrollable content above a footer sized to its MinSize
type ContentWithFooter struct{}

// NewContentWithFooter creates a content/footer layout
func NewContentWithFooter() *ContentWithFooter {
	return &ContentWithFooter{}
}

// Layout arranges: [0] = content, [1] = footer
func (l *ContentWithFooter) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}

	content := objects[0]
	footer := objects[1]

	footerHeight := footer.MinSize().Height
	contentHeight := size.Height - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content.Resize(fyne.NewSize(size.Width, contentHeight))
	content.Move(fyne.NewPos(0, 0))

	footer.Resize(fyne.NewSize(size.Width, footerHeight))
	footer.Move(fyne.NewPos(0, contentHeight))
}

// MinSize returns the minimum size
func (l *ContentWithFooter) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}

	contentMin := objects[0].MinSize()
	footerMin := objects[1].MinSize()

	return fyne.NewSize(
		fyne.Max(contentMin.Width, footerMin.Width),
		contentMin.Height+footerMin.Height,
	)
}
