package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/internal/logger"
	"ocr-translator/models"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// SettingsDialog edits the processing endpoint, timeout and log level
type SettingsDialog struct {
	window fyne.Window
	config *models.Config

	endpointEntry  *widget.Entry
	timeoutEntry   *widget.Entry
	logLevelSelect *widget.Select
	pathLabel      *widget.Label

	// OnSave is called with the validated config after it was written to disk.
	OnSave func(config *models.Config)
}

// NewSettingsDialog creates a settings dialog for config. config is not
// modified until the user saves valid settings.
func NewSettingsDialog(window fyne.Window, config *models.Config) *SettingsDialog {
	d := &SettingsDialog{
		window: window,
		config: config,
	}
	d.build()
	return d
}

// Show displays the settings dialog
func (d *SettingsDialog) Show() {
	content := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Endpoint", d.endpointEntry),
			widget.NewFormItem("Timeout (s)", d.timeoutEntry),
			widget.NewFormItem("Log Level", d.logLevelSelect),
		),
		widget.NewSeparator(),
		d.pathLabel,
	)

	dlg := dialog.NewCustomConfirm("Settings", "Save", "Cancel", content, func(save bool) {
		if !save {
			return
		}
		if err := d.save(); err != nil {
			logger.Warn("Settings not saved: %v", err)
			dialog.ShowError(err, d.window)
		}
	}, d.window)
	dlg.Resize(fyne.NewSize(480, 0))
	dlg.Show()
}

func (d *SettingsDialog) build() {
	d.endpointEntry = widget.NewEntry()
	d.endpointEntry.SetPlaceHolder("http://localhost:5000/process")
	d.endpointEntry.SetText(d.config.Endpoint)

	d.timeoutEntry = widget.NewEntry()
	d.timeoutEntry.SetText(strconv.Itoa(d.config.RequestTimeoutSeconds))
	d.timeoutEntry.Validator = func(s string) error {
		_, err := parseTimeout(s)
		return err
	}

	d.logLevelSelect = widget.NewSelect(logLevels, nil)
	d.logLevelSelect.SetSelected(strings.ToLower(d.config.Level().String()))

	d.pathLabel = widget.NewLabel("Saved to " + d.config.ConfigPath())
	d.pathLabel.TextStyle = fyne.TextStyle{Italic: true}
	d.pathLabel.Wrapping = fyne.TextWrapWord
}

// collect builds a config from the form fields and validates it.
func (d *SettingsDialog) collect() (*models.Config, error) {
	timeout, err := parseTimeout(d.timeoutEntry.Text)
	if err != nil {
		return nil, err
	}

	updated := *d.config
	updated.Endpoint = strings.TrimSpace(d.endpointEntry.Text)
	updated.RequestTimeoutSeconds = timeout
	updated.LogLevel = d.logLevelSelect.Selected

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (d *SettingsDialog) save() error {
	updated, err := d.collect()
	if err != nil {
		return err
	}
	if err := updated.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	*d.config = *updated
	logger.Info("Settings saved: endpoint=%s timeout=%v level=%s",
		updated.Endpoint, updated.RequestTimeout(), updated.LogLevel)

	if d.OnSave != nil {
		d.OnSave(d.config)
	}
	return nil
}

func parseTimeout(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("timeout must be a whole number of seconds, got %q", s)
	}
	return n, nil
}
