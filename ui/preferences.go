package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Glance/config"
)

// preferences collects setting changes and applies them together when the
// user presses Apply.
type preferences struct {
	cfg     *config.AppConfig
	pending map[string]func()
	apply   *widget.Button

	onApplied func()
}

func newPreferences(cfg *config.AppConfig, onApplied func()) *preferences {
	p := &preferences{
		cfg:       cfg,
		pending:   make(map[string]func()),
		onApplied: onApplied,
	}
	p.apply = widget.NewButton("Apply Changes", p.applyChanges)
	p.apply.Disable()
	return p
}

// content builds the preference rows.
func (p *preferences) content() fyne.CanvasObject {
	themeSelect := widget.NewSelect(ThemeNames, nil)
	initialTheme := p.cfg.GetTheme()
	if !slices.Contains(ThemeNames, initialTheme) {
		initialTheme = ThemeSystem
	}
	themeSelect.SetSelected(initialTheme)
	themeSelect.OnChanged = func(s string) {
		p.track(config.AppThemeKey, s != initialTheme, func() { p.cfg.SetTheme(s) })
	}

	initialMiniatures := p.cfg.GetShowMiniatures()
	miniCheck := widget.NewCheck("", nil)
	miniCheck.SetChecked(initialMiniatures)
	miniCheck.OnChanged = func(b bool) {
		p.track(config.ShowMiniaturesKey, b != initialMiniatures, func() { p.cfg.SetShowMiniatures(b) })
	}

	return container.NewVBox(
		createSectionTitleLabel("Appearance"),
		newSettingRow(widget.NewLabel("Theme"), themeSelect),
		newSettingRow(widget.NewLabel("Show miniatures"), miniCheck),
		createDescriptionLabel("Changes take effect after Apply."),
		p.apply,
	)
}

// track records or forgets a pending change and updates the Apply button.
func (p *preferences) track(key string, changed bool, apply func()) {
	if changed {
		p.pending[key] = apply
	} else {
		delete(p.pending, key)
	}
	if len(p.pending) > 0 {
		p.apply.Enable()
	} else {
		p.apply.Disable()
	}
}

func (p *preferences) applyChanges() {
	for _, apply := range p.pending {
		apply()
	}
	p.pending = make(map[string]func())
	p.apply.Disable()
	if p.onApplied != nil {
		p.onApplied()
	}
}

// createSectionTitleLabel creates a bold section heading
func createSectionTitleLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Importance = widget.HighImportance
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// createDescriptionLabel creates an italic hint line
func createDescriptionLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.LowImportance
	label.TextStyle = fyne.TextStyle{Italic: true}
	return label
}
