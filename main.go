package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"ocr-translator/internal/config"
	"ocr-translator/internal/logger"
	"ocr-translator/models"
	"ocr-translator/ui"
	appTheme "ocr-translator/ui/theme"
)

func main() {
	cfg, err := models.LoadConfig()
	if err != nil {
		logger.Warn("Failed to load config, using defaults: %v", err)
		cfg = models.DefaultConfig()
	}
	logger.SetLevel(cfg.Level())

	a := app.New()
	a.Settings().SetTheme(appTheme.New(appTheme.ModeLight))

	w := a.NewWindow(config.WindowTitle)
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))

	mainUI := ui.NewMainUI(w, cfg)
	w.SetContent(mainUI.Build())

	logger.Info("Submitting to %s", cfg.Endpoint)
	w.ShowAndRun()
}
