package widgets

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/models"
	appTheme "ocr-translator/ui/theme"
)

// RequestStatusBadge displays the last request's status with a colored dot
type RequestStatusBadge struct {
	widget.BaseWidget

	Status   models.RequestStatus
	Duration time.Duration
}

// NewRequestStatusBadge creates a badge with nothing to report yet
func NewRequestStatusBadge() *RequestStatusBadge {
	b := &RequestStatusBadge{}
	b.ExtendBaseWidget(b)
	return b
}

// SetRequest updates the badge from a request snapshot
func (b *RequestStatusBadge) SetRequest(req models.ProcessRequest) {
	b.Status = req.Status
	b.Duration = req.Duration()
	b.Refresh()
}

// Text returns the label shown next to the dot
func (b *RequestStatusBadge) Text() string {
	switch b.Status {
	case "":
		return ""
	case models.StatusPending:
		return "Queued"
	case models.StatusProcessing:
		return "Processing..."
	case models.StatusCompleted:
		return fmt.Sprintf("Done in %.1fs", b.Duration.Seconds())
	case models.StatusFailed:
		return "Failed"
	default:
		return string(b.Status)
	}
}

// CreateRenderer implements fyne.Widget
func (b *RequestStatusBadge) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(color.Transparent)
	label := canvas.NewText("", color.White)
	label.TextSize = 12

	r := &requestStatusBadgeRenderer{
		dot:    dot,
		label:  label,
		widget: b,
	}
	r.Refresh()
	return r
}

type requestStatusBadgeRenderer struct {
	dot    *canvas.Circle
	label  *canvas.Text
	widget *RequestStatusBadge
}

func (r *requestStatusBadgeRenderer) Destroy() {}

func (r *requestStatusBadgeRenderer) Layout(size fyne.Size) {
	dotSize := float32(8)
	dotY := (size.Height - dotSize) / 2

	r.dot.Resize(fyne.NewSize(dotSize, dotSize))
	r.dot.Move(fyne.NewPos(4, dotY))

	labelY := (size.Height - r.label.MinSize().Height) / 2
	r.label.Move(fyne.NewPos(dotSize+10, labelY))
}

func (r *requestStatusBadgeRenderer) MinSize() fyne.Size {
	labelSize := r.label.MinSize()
	return fyne.NewSize(8+10+labelSize.Width+4, fyne.Max(16, labelSize.Height))
}

func (r *requestStatusBadgeRenderer) Objects() []fyne.CanvasObject {
	if r.widget.Status == "" {
		return nil
	}
	return []fyne.CanvasObject{r.dot, r.label}
}

func (r *requestStatusBadgeRenderer) Refresh() {
	var colorName fyne.ThemeColorName
	switch r.widget.Status {
	case models.StatusProcessing:
		colorName = appTheme.ColorNameRequestProcessing
	case models.StatusCompleted:
		colorName = appTheme.ColorNameRequestCompleted
	case models.StatusFailed:
		colorName = appTheme.ColorNameRequestFailed
	default:
		colorName = appTheme.ColorNameRequestPending
	}

	r.dot.FillColor = themeColor(colorName)
	r.dot.Refresh()

	r.label.Text = r.widget.Text()
	r.label.Color = themeColor(appTheme.ColorNameTextSecondary)
	r.label.Refresh()
}
