package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ocr-translator/internal/text"
)

// Language represents a language option
type Language struct {
	Code string
	Name string
}

func languagesFor(codes []string) []Language {
	langs := make([]Language, len(codes))
	for i, code := range codes {
		langs[i] = Language{Code: code, Name: text.GetLanguageName(code)}
	}
	return langs
}

// SourceLanguages returns available source languages, "Auto-Detect" first
func SourceLanguages() []Language {
	return languagesFor(text.SourceLanguageCodes)
}

// TargetLanguages returns available target languages
func TargetLanguages() []Language {
	return languagesFor(text.TargetLanguageCodes)
}

// LanguageSelector is a labelled dropdown for language selection
type LanguageSelector struct {
	widget.BaseWidget

	Label     string
	Languages []Language
	OnChanged func(code string)

	selected string
	select_  *widget.Select
}

// NewLanguageSelector creates a new language selector with the first language selected
func NewLanguageSelector(label string, languages []Language, onChanged func(code string)) *LanguageSelector {
	s := &LanguageSelector{
		Label:     label,
		Languages: languages,
	}

	options := make([]string, len(languages))
	for i, lang := range languages {
		options[i] = lang.Name
	}
	s.select_ = widget.NewSelect(options, s.onSelect)
	if len(languages) > 0 {
		s.selected = languages[0].Code
		s.select_.SetSelectedIndex(0)
	}

	// Set after the initial selection so construction does not report a change.
	s.OnChanged = onChanged
	s.ExtendBaseWidget(s)
	return s
}

func (s *LanguageSelector) onSelect(name string) {
	for _, lang := range s.Languages {
		if lang.Name == name {
			s.selected = lang.Code
			if s.OnChanged != nil {
				s.OnChanged(lang.Code)
			}
			return
		}
	}
}

// SetSelected sets the selected language by code. Unknown codes are ignored.
func (s *LanguageSelector) SetSelected(code string) {
	for _, lang := range s.Languages {
		if lang.Code == code {
			s.select_.SetSelected(lang.Name)
			return
		}
	}
}

// GetSelected returns the selected language code
func (s *LanguageSelector) GetSelected() string {
	return s.selected
}

// Select exposes the underlying dropdown.
func (s *LanguageSelector) Select() *widget.Select {
	return s.select_
}

// CreateRenderer implements fyne.Widget
func (s *LanguageSelector) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(
		NewSectionHeader(s.Label),
		s.select_,
	))
}
