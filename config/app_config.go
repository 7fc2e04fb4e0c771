package config

import "fyne.io/fyne/v2"

// AppThemeKey is the key for the app theme preference
const AppThemeKey = "app_theme"

// LastDirectoryKey is the key for the most recently opened image directory
const LastDirectoryKey = "last_directory"

// ShowMiniaturesKey is the key for the miniature strip visibility preference
const ShowMiniaturesKey = "show_miniatures"

// AppConfig holds the user-facing application settings.
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetTheme returns the current application theme
func (c *AppConfig) GetTheme() string {
	return c.prefs.StringWithFallback(AppThemeKey, "System")
}

// SetTheme sets the application theme
func (c *AppConfig) SetTheme(theme string) {
	c.prefs.SetString(AppThemeKey, theme)
}

// GetLastDirectory returns the directory opened last, or "" if none.
func (c *AppConfig) GetLastDirectory() string {
	return c.prefs.StringWithFallback(LastDirectoryKey, "")
}

// SetLastDirectory records the directory being viewed.
func (c *AppConfig) SetLastDirectory(dir string) {
	c.prefs.SetString(LastDirectoryKey, dir)
}

// GetShowMiniatures returns whether the miniature strip is shown
func (c *AppConfig) GetShowMiniatures() bool {
	return c.prefs.BoolWithFallback(ShowMiniaturesKey, true)
}

// SetShowMiniatures sets whether the miniature strip is shown
func (c *AppConfig) SetShowMiniatures(show bool) {
	c.prefs.SetBool(ShowMiniaturesKey, show)
}
