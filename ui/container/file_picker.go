package container

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
	"ocr-translator/models"
	"ocr-translator/ui/widgets"
)

const noFileText = "No file chosen"

// FilePicker lets the user attach a single file to the submission
type FilePicker struct {
	widget.BaseWidget

	window fyne.Window
	file   *models.Attachment

	OnFileChosen  func(file *models.Attachment)
	OnFileRemoved func()

	header    *widgets.SectionHeader
	nameLabel *widget.Label
	chooseBtn *widget.Button
	removeBtn *widget.Button
}

// NewFilePicker creates an empty file picker
func NewFilePicker(window fyne.Window) *FilePicker {
	p := &FilePicker{window: window}

	p.header = widgets.NewSectionHeaderWithHint("File", "Optional")
	p.nameLabel = widget.NewLabel(noFileText)
	p.nameLabel.Truncation = fyne.TextTruncateEllipsis

	p.chooseBtn = widget.NewButtonWithIcon("Choose File", theme.FolderOpenIcon(), p.showFileDialog)
	p.removeBtn = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), p.remove)
	p.removeBtn.Hide()

	p.ExtendBaseWidget(p)
	return p
}

// File returns the chosen file, or nil
func (p *FilePicker) File() *models.Attachment {
	return p.file
}

// SetFile displays file without firing callbacks. nil resets the picker.
func (p *FilePicker) SetFile(file *models.Attachment) {
	p.file = file
	if file.IsEmpty() {
		p.file = nil
		p.nameLabel.SetText(noFileText)
		p.removeBtn.Hide()
		return
	}
	p.nameLabel.SetText(fmt.Sprintf("%s (%s)", file.Name, formatSize(len(file.Data))))
	p.removeBtn.Show()
}

// Label returns the text shown for the current file
func (p *FilePicker) Label() string {
	return p.nameLabel.Text
}

// Choose reads reader into an attachment and selects it
func (p *FilePicker) Choose(reader fyne.URIReadCloser) error {
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, config.MaxUploadBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", reader.URI().Name(), err)
	}
	if int64(len(data)) > config.MaxUploadBytes {
		return fmt.Errorf("%s is larger than %s", reader.URI().Name(), formatSize(int(config.MaxUploadBytes)))
	}

	file := &models.Attachment{
		Name:     reader.URI().Name(),
		MimeType: reader.URI().MimeType(),
		URI:      reader.URI().String(),
		Data:     data,
	}
	p.SetFile(file)
	logger.Info("File chosen: %s (%d bytes)", file.Name, len(data))

	if p.OnFileChosen != nil {
		p.OnFileChosen(file)
	}
	return nil
}

func (p *FilePicker) remove() {
	p.SetFile(nil)
	if p.OnFileRemoved != nil {
		p.OnFileRemoved()
	}
}

func (p *FilePicker) showFileDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		if reader == nil {
			return
		}
		if err := p.Choose(reader); err != nil {
			logger.Warn("%v", err)
			dialog.ShowError(err, p.window)
		}
	}, p.window)
	fd.Show()
}

func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// CreateRenderer implements fyne.Widget
func (p *FilePicker) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewBorder(nil, nil, p.chooseBtn, p.removeBtn, p.nameLabel)
	return widget.NewSimpleRenderer(container.NewVBox(p.header, row))
}
