package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/internal/config"
	httpclient "ocr-translator/internal/http"
	"ocr-translator/internal/logger"
	"ocr-translator/models"
	"ocr-translator/services"
	uicontainer "ocr-translator/ui/container"
	"ocr-translator/ui/dialogs"
	"ocr-translator/ui/layouts"
	appTheme "ocr-translator/ui/theme"
	"ocr-translator/ui/widgets"
)

const topBarHeight = 48

const (
	imageHintOptional = "Optional"
	imageHintIgnored  = "Not sent: the chosen file takes precedence"
)

// MainUI is the main application UI
type MainUI struct {
	window     fyne.Window
	config     *models.Config
	controller *services.FormController
	mode       appTheme.Mode

	// UI Components
	themeToggle    *widgets.ThemeToggle
	textEntry      *widget.Entry
	filePicker     *uicontainer.FilePicker
	pasteArea      *widgets.PasteArea
	imageHeader    *widgets.SectionHeader
	actionSelect   *widget.Select
	sourceSelector *widgets.LanguageSelector
	targetSelector *widgets.LanguageSelector
	languageRow    *fyne.Container
	actionBar      *widgets.ActionBar
	resultModal    *widgets.ResultModal
}

// NewMainUI creates the main application UI
func NewMainUI(w fyne.Window, cfg *models.Config) *MainUI {
	ui := &MainUI{
		window:     w,
		config:     cfg,
		controller: services.NewFormController(newProcessor(cfg)),
		mode:       appTheme.ModeLight,
	}

	// Submit runs off the UI goroutine, so every callback hops back with fyne.Do.
	ui.controller.OnAlert = func(message string) {
		fyne.Do(func() {
			dialog.ShowInformation("Nothing to process", message, ui.window)
		})
	}
	ui.controller.OnPendingChanged = func(pending bool) {
		fyne.Do(func() {
			ui.actionBar.SetPending(pending)
		})
	}
	ui.controller.OnRequestChanged = func(req models.ProcessRequest) {
		logger.Debug("%s Request %s: %s", req.StatusIcon(), req.ID, req.Status)
		fyne.Do(func() {
			ui.actionBar.SetRequest(req)
		})
	}
	ui.controller.OnResult = func(result string) {
		fyne.Do(func() {
			ui.showResult(result)
		})
	}

	return ui
}

// Build creates the complete UI layout
func (ui *MainUI) Build() fyne.CanvasObject {
	ui.themeToggle = widgets.NewThemeToggle(ui.mode, ui.applyTheme)

	ui.textEntry = widget.NewMultiLineEntry()
	ui.textEntry.SetPlaceHolder("Enter text to process...")
	ui.textEntry.Wrapping = fyne.TextWrapWord
	ui.textEntry.SetMinRowsVisible(5)
	ui.textEntry.OnChanged = ui.controller.SetText

	ui.filePicker = uicontainer.NewFilePicker(ui.window)
	ui.filePicker.OnFileChosen = func(file *models.Attachment) {
		ui.controller.SetFile(file)
		ui.updateImageHint()
	}
	ui.filePicker.OnFileRemoved = func() {
		ui.controller.SetFile(nil)
		ui.updateImageHint()
	}

	ui.pasteArea = widgets.NewPasteArea(ui.pasteFromClipboard)
	ui.imageHeader = widgets.NewSectionHeaderWithHint("Image", imageHintOptional)

	ui.sourceSelector = widgets.NewLanguageSelector("From", widgets.SourceLanguages(), ui.controller.SetSourceLanguage)
	ui.targetSelector = widgets.NewLanguageSelector("To", widgets.TargetLanguages(), ui.controller.SetTargetLanguage)
	ui.languageRow = container.New(
		layouts.NewLanguageRowLayout(24, 4),
		ui.sourceSelector,
		widget.NewIcon(theme.NavigateNextIcon()),
		ui.targetSelector,
	)

	labels := make([]string, 0, 2)
	for _, a := range models.Actions() {
		labels = append(labels, a.Label())
	}
	ui.actionSelect = widget.NewSelect(labels, ui.onActionSelected)
	ui.actionSelect.SetSelected(ui.controller.State().Action.Label())

	ui.actionBar = widgets.NewActionBar(ui.onProcess, ui.onClear)

	form := container.NewVBox(
		widgets.NewSectionHeader("Text"),
		ui.textEntry,
		ui.filePicker,
		ui.imageHeader,
		ui.pasteArea,
		widgets.NewSectionHeader("Action"),
		ui.actionSelect,
		ui.languageRow,
	)

	body := container.New(
		layouts.NewContentWithFooter(),
		container.NewVScroll(container.NewPadded(widgets.NewPanel(appTheme.ColorNameSurface, form))),
		container.NewPadded(ui.actionBar),
	)

	ui.window.Canvas().AddShortcut(&fyne.ShortcutPaste{}, func(fyne.Shortcut) {
		ui.pasteFromClipboard()
	})
	ui.window.SetOnDropped(ui.onDropped)

	return container.New(layouts.NewTopBarLayout(topBarHeight), ui.buildTopBar(), body)
}

func (ui *MainUI) buildTopBar() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(config.WindowTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameSubHeadingText

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.showSettings)
	settingsBtn.Importance = widget.LowImportance

	bar := container.NewHBox(
		title,
		layout.NewSpacer(),
		settingsBtn,
		ui.themeToggle,
	)

	return container.NewStack(
		widgets.NewThemedRectangle(appTheme.ColorNameSurfaceVariant),
		container.NewPadded(bar),
	)
}

func (ui *MainUI) applyTheme(mode appTheme.Mode) {
	ui.mode = mode
	fyne.CurrentApp().Settings().SetTheme(appTheme.New(mode))
	logger.Debug("Theme switched to %s", mode)
}

func (ui *MainUI) onActionSelected(label string) {
	action := models.ActionFromLabel(label)
	ui.controller.SetAction(action)
	if action == models.ActionTranslate {
		ui.languageRow.Show()
	} else {
		ui.languageRow.Hide()
	}
}

func (ui *MainUI) onProcess() {
	timeout := ui.config.RequestTimeout()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ui.submit(ctx)
	}()
}

func (ui *MainUI) submit(ctx context.Context) {
	err := ui.controller.Submit(ctx)
	if errors.Is(err, services.ErrSubmissionPending) {
		logger.Debug("Process ignored: %v", err)
	}
}

func (ui *MainUI) onClear() {
	ui.controller.Clear()
	state := ui.controller.State()

	ui.textEntry.SetText(state.Text)
	ui.filePicker.SetFile(nil)
	ui.pasteArea.SetImage(nil)
	ui.updateImageHint()
	ui.sourceSelector.SetSelected(state.SourceLang)
	ui.targetSelector.SetSelected(state.TargetLang)
}

func (ui *MainUI) pasteFromClipboard() {
	content := fyne.CurrentApp().Clipboard().Content()
	items := clipboardItems(content)
	if len(items) == 0 {
		logger.Debug("Clipboard holds no image reference")
		return
	}
	go ui.acceptImage(items)
}

func (ui *MainUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	items := droppedItems(uris)
	go ui.acceptImage(items)
}

// acceptImage hands items to the controller and refreshes the preview.
// It may block on file reads, so it must not run on the UI goroutine.
func (ui *MainUI) acceptImage(items []models.TransferItem) {
	ok, err := ui.controller.AcceptPastedOrDroppedImage(items)
	fyne.Do(func() {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if ok {
			ui.pasteArea.SetImage(ui.controller.State().PastedImage)
			ui.updateImageHint()
		}
	})
}

// updateImageHint warns when a pasted image will be dropped in favour of the chosen file.
func (ui *MainUI) updateImageHint() {
	state := ui.controller.State()
	if !state.File.IsEmpty() && !state.PastedImage.IsEmpty() {
		ui.imageHeader.SetHint(imageHintIgnored)
		return
	}
	ui.imageHeader.SetHint(imageHintOptional)
}

func (ui *MainUI) showResult(result string) {
	ui.resultModal = widgets.NewResultModal(result, ui.window, ui.controller.CloseResult)
	ui.resultModal.Show()
}

func (ui *MainUI) showSettings() {
	settingsDialog := dialogs.NewSettingsDialog(ui.window, ui.config)
	settingsDialog.OnSave = ui.applyConfig
	settingsDialog.Show()
}

func (ui *MainUI) applyConfig(cfg *models.Config) {
	ui.config = cfg
	logger.SetLevel(cfg.Level())
	ui.controller.SetProcessor(newProcessor(cfg))
}

// newProcessor builds a client for cfg's endpoint whose transport timeout matches the request timeout.
func newProcessor(cfg *models.Config) *services.ProcessorClient {
	client := httpclient.NewPooledClient(httpclient.DefaultClientConfig().WithTimeout(cfg.RequestTimeout()))
	return services.NewProcessorClient(cfg.Endpoint, client)
}
