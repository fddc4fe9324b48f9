package layouts

import (
	"fyne.io/fyne/v2"
)

// TopBarLayout places a fixed-height bar above a flexible content area
type TopBarLayout struct {
	BarHeight float32
}

// NewTopBarLayout creates a top bar layout with the specified bar height
func NewTopBarLayout(barHeight float32) *TopBarLayout {
	return &TopBarLayout{BarHeight: barHeight}
}

// Layout arranges the objects: [0] = bar, [1] = content
func (l *TopBarLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}

	bar := objects[0]
	content := objects[1]

	barHeight := fyne.Max(l.BarHeight, bar.MinSize().Height)
	bar.Resize(fyne.NewSize(size.Width, barHeight))
	bar.Move(fyne.NewPos(0, 0))

	contentHeight := size.Height - barHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	content.Resize(fyne.NewSize(size.Width, contentHeight))
	content.Move(fyne.NewPos(0, barHeight))
}

// MinSize returns the minimum size needed for the layout
func (l *TopBarLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, l.BarHeight)
	}

	barMin := objects[0].MinSize()
	contentMin := objects[1].MinSize()

	return fyne.NewSize(
		fyne.Max(barMin.Width, contentMin.Width),
		fyne.Max(l.BarHeight, barMin.Height)+contentMin.Height,
	)
}
