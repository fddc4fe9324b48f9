package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/models"
	appTheme "ocr-translator/ui/theme"
)

const pasteHint = "Paste an image here (Ctrl+V) or drop an image"

// PasteArea is the drop target for pasted or dropped images, with a preview.
type PasteArea struct {
	widget.BaseWidget

	// OnPaste is called when the paste button is tapped.
	OnPaste func()

	image   *models.Attachment
	bg      *ThemedRectangle
	hint    *widget.Label
	preview *canvas.Image
	name    *widget.Label
}

// NewPasteArea creates an empty paste area
func NewPasteArea(onPaste func()) *PasteArea {
	p := &PasteArea{OnPaste: onPaste}

	p.bg = NewThemedRectangleWithRadius(appTheme.ColorNameDropZone, 8)
	p.bg.StrokeColorName = appTheme.ColorNameDropZoneEdge
	p.bg.StrokeWidth = 2

	p.hint = widget.NewLabel(pasteHint)
	p.hint.Alignment = fyne.TextAlignCenter
	p.hint.Wrapping = fyne.TextWrapWord

	p.preview = canvas.NewImageFromResource(nil)
	p.preview.FillMode = canvas.ImageFillContain
	p.preview.Hide()

	p.name = widget.NewLabel("")
	p.name.Alignment = fyne.TextAlignCenter
	p.name.Truncation = fyne.TextTruncateEllipsis
	p.name.Hide()

	p.ExtendBaseWidget(p)
	return p
}

// SetImage shows a preview of img. nil clears the preview.
func (p *PasteArea) SetImage(img *models.Attachment) {
	p.image = img
	if img.IsEmpty() {
		p.preview.Resource = nil
		p.preview.Hide()
		p.name.Hide()
		p.hint.Show()
		p.preview.Refresh()
		p.bg.ColorName = appTheme.ColorNameDropZone
		p.bg.Refresh()
		return
	}

	p.preview.Resource = fyne.NewStaticResource(img.Name, img.Data)
	p.preview.Show()
	p.name.SetText(img.Name)
	p.name.Show()
	p.hint.Hide()
	p.preview.Refresh()
	p.bg.ColorName = appTheme.ColorNameDropZoneFilled
	p.bg.Refresh()
}

// HasImage reports whether a preview is showing.
func (p *PasteArea) HasImage() bool {
	return !p.image.IsEmpty()
}

// CreateRenderer implements fyne.Widget
func (p *PasteArea) CreateRenderer() fyne.WidgetRenderer {
	th := fyne.CurrentApp().Settings().Theme()
	previewSize := th.Size(appTheme.SizeNamePreviewImage)
	p.preview.SetMinSize(fyne.NewSize(previewSize, previewSize))

	pasteBtn := widget.NewButtonWithIcon("Paste", theme.ContentPasteIcon(), func() {
		if p.OnPaste != nil {
			p.OnPaste()
		}
	})

	content := container.NewVBox(
		p.hint,
		p.preview,
		p.name,
		container.NewCenter(pasteBtn),
	)

	return widget.NewSimpleRenderer(container.NewStack(
		p.bg,
		container.NewPadded(content),
	))
}
