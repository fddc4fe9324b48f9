package widgets

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
	appTheme "ocr-translator/ui/theme"
)

const (
	copyLabel   = "Copy"
	copiedLabel = "Copied!"
)

// ResultModal shows a processing result with Copy and Close actions.
type ResultModal struct {
	Result string

	// ResetDelay is how long "Copied!" stays after a copy.
	ResetDelay time.Duration

	OnClose func()

	window  fyne.Window
	dlg     dialog.Dialog
	copyBtn *widget.Button

	mu         sync.Mutex
	copied     bool
	generation uint64
	resetTimer *time.Timer
	visible    bool
	closed     bool
}

// NewResultModal creates a hidden modal for result on window.
func NewResultModal(result string, window fyne.Window, onClose func()) *ResultModal {
	m := &ResultModal{
		Result:     result,
		ResetDelay: config.CopyFeedbackDuration,
		OnClose:    onClose,
		window:     window,
	}
	m.build()
	return m
}

func (m *ResultModal) build() {
	resultLabel := widget.NewLabel(m.Result)
	resultLabel.Wrapping = fyne.TextWrapWord
	resultLabel.Selectable = true

	th := fyne.CurrentApp().Settings().Theme()
	scroll := container.NewVScroll(resultLabel)
	scroll.SetMinSize(fyne.NewSize(config.WindowWidth-120, th.Size(appTheme.SizeNameResultHeight)))

	m.copyBtn = widget.NewButtonWithIcon(copyLabel, theme.ContentCopyIcon(), m.Copy)
	closeBtn := widget.NewButtonWithIcon("Close", theme.CancelIcon(), m.Close)
	closeBtn.Importance = widget.HighImportance

	content := container.NewBorder(
		nil,
		container.NewGridWithColumns(2, m.copyBtn, closeBtn),
		nil, nil,
		container.NewVBox(scroll, layout.NewSpacer()),
	)

	m.dlg = dialog.NewCustomWithoutButtons("Result", content, m.window)
	m.dlg.SetOnClosed(m.markClosed)
}

// Show makes the modal visible.
func (m *ResultModal) Show() {
	m.mu.Lock()
	m.visible = true
	m.mu.Unlock()
	m.dlg.Show()
}

// Visible reports whether the modal is currently shown.
func (m *ResultModal) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

// Copied reports whether the "Copied!" indicator is showing.
func (m *ResultModal) Copied() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copied
}

// CopyButtonText returns the current label of the copy button.
func (m *ResultModal) CopyButtonText() string {
	return m.copyBtn.Text
}

// Copy writes the result to the clipboard and shows "Copied!" for ResetDelay.
// A later copy restarts the delay.
func (m *ResultModal) Copy() {
	fyne.CurrentApp().Clipboard().SetContent(m.Result)

	m.mu.Lock()
	m.copied = true
	m.generation++
	gen := m.generation
	if m.resetTimer != nil {
		m.resetTimer.Stop()
	}
	m.resetTimer = time.AfterFunc(m.ResetDelay, func() { m.resetCopied(gen) })
	m.mu.Unlock()

	m.copyBtn.SetText(copiedLabel)
	logger.Debug("Result copied to clipboard (%d bytes)", len(m.Result))
}

func (m *ResultModal) resetCopied(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || !m.copied {
		m.mu.Unlock()
		return
	}
	m.copied = false
	m.mu.Unlock()

	fyne.Do(func() {
		m.copyBtn.SetText(copyLabel)
	})
}

// Close hides the modal and invokes OnClose once.
func (m *ResultModal) Close() {
	m.dlg.Hide()
	m.markClosed()
}

func (m *ResultModal) markClosed() {
	m.mu.Lock()
	m.visible = false
	if m.resetTimer != nil {
		m.resetTimer.Stop()
		m.resetTimer = nil
	}
	m.copied = false
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	if m.OnClose != nil {
		m.OnClose()
	}
}
