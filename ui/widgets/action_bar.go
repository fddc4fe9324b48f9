package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/models"
)

// ActionBar holds the Process and Clear buttons and the request status
type ActionBar struct {
	widget.BaseWidget

	OnProcess func()
	OnClear   func()

	processBtn *widget.Button
	clearBtn   *widget.Button
	status     *RequestStatusBadge
}

// NewActionBar creates the action bar
func NewActionBar(onProcess, onClear func()) *ActionBar {
	b := &ActionBar{
		OnProcess: onProcess,
		OnClear:   onClear,
		status:    NewRequestStatusBadge(),
	}

	b.processBtn = widget.NewButtonWithIcon("Process", theme.ConfirmIcon(), func() {
		if b.OnProcess != nil {
			b.OnProcess()
		}
	})
	b.processBtn.Importance = widget.HighImportance

	b.clearBtn = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() {
		if b.OnClear != nil {
			b.OnClear()
		}
	})

	b.ExtendBaseWidget(b)
	return b
}

// SetPending disables Process while a submission is in flight
func (b *ActionBar) SetPending(pending bool) {
	if pending {
		b.processBtn.SetText("Processing...")
		b.processBtn.Disable()
		return
	}
	b.processBtn.SetText("Process")
	b.processBtn.Enable()
}

// ProcessEnabled reports whether the Process button accepts taps
func (b *ActionBar) ProcessEnabled() bool {
	return !b.processBtn.Disabled()
}

// SetRequest shows the status of the latest request
func (b *ActionBar) SetRequest(req models.ProcessRequest) {
	b.status.SetRequest(req)
}

// ProcessButton exposes the Process button
func (b *ActionBar) ProcessButton() *widget.Button {
	return b.processBtn
}

// ClearButton exposes the Clear button
func (b *ActionBar) ClearButton() *widget.Button {
	return b.clearBtn
}

// CreateRenderer implements fyne.Widget
func (b *ActionBar) CreateRenderer() fyne.WidgetRenderer {
	buttons := container.NewGridWithColumns(2, b.processBtn, b.clearBtn)
	return widget.NewSimpleRenderer(container.NewVBox(
		buttons,
		container.NewHBox(layout.NewSpacer(), b.status, layout.NewSpacer()),
	))
}
