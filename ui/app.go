// Package ui is the Fyne front end of Glance: the viewer window, its toolbar,
// the miniature strip and the preferences window.
package ui

import (
	"context"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Glance/asset"
	"github.com/dixieflatline76/Glance/config"
	"github.com/dixieflatline76/Glance/pkg/content"
	"github.com/dixieflatline76/Glance/pkg/geometry"
	"github.com/dixieflatline76/Glance/pkg/sysinfo"
	"github.com/dixieflatline76/Glance/pkg/viewer"
	"github.com/dixieflatline76/Glance/util/log"
)

// GlanceApp is the viewer application: one window showing one album.
type GlanceApp struct {
	app      fyne.App
	window   fyne.Window
	cfg      *config.AppConfig
	tuning   config.Tuning
	assetMgr *asset.Manager

	album   *content.Album
	session *viewer.Session
	view    *ImageView

	status       *widget.Label
	filterChecks map[viewer.Filter]*widget.Check
	strip        *fyne.Container

	cancelLoad  context.CancelFunc
	cancelMinis context.CancelFunc
}

// NewGlanceApp builds the main window on a.
func NewGlanceApp(a fyne.App, t config.Tuning) *GlanceApp {
	ga := &GlanceApp{
		app:          a,
		cfg:          config.NewAppConfig(a.Preferences()),
		tuning:       t,
		assetMgr:     asset.NewManager(),
		filterChecks: make(map[viewer.Filter]*widget.Check),
	}
	ga.app.Settings().SetTheme(themeFor(ga.cfg.GetTheme()))
	if icon, err := ga.assetMgr.GetIcon(asset.AppIconName); err == nil {
		ga.app.SetIcon(icon)
	}

	ga.window = a.NewWindow(config.AppName)
	ga.view = NewImageView(t.ScrollZoomStep)
	ga.status = widget.NewLabel(placeholderText)
	ga.status.Truncation = fyne.TextTruncateEllipsis
	ga.strip = container.NewStack()

	ga.window.SetContent(container.NewBorder(
		ga.createToolbar(),
		container.NewVBox(ga.strip, container.NewBorder(nil, nil, nil, ga.createFilterBar(), ga.status)),
		nil, nil,
		ga.view,
	))
	ga.registerKeys()
	ga.setAlbum(content.NewAlbum())
	ga.window.SetOnClosed(func() {
		ga.cancelBackground()
		ga.session.Stop()
	})
	return ga
}

// Window returns the main window.
func (ga *GlanceApp) Window() fyne.Window {
	return ga.window
}

// Session returns the session of the album being shown.
func (ga *GlanceApp) Session() *viewer.Session {
	return ga.session
}

// ShowAndRun sizes the window to the screen, shows it and runs the event loop.
func (ga *GlanceApp) ShowAndRun() {
	size := ga.preferredSize()
	ga.window.Resize(fyne.NewSize(float32(size.W), float32(size.H)))
	ga.window.CenterOnScreen()
	ga.window.ShowAndRun()
}

// Open loads every image in dir in the background and shows it when done.
// A newer Open cancels an older one still loading.
func (ga *GlanceApp) Open(dir string) {
	if ga.cancelLoad != nil {
		ga.cancelLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ga.cancelLoad = cancel
	ga.status.SetText(fmt.Sprintf("Loading %s", dir))

	go func() {
		album, err := content.LoadDir(ctx, dir, ga.tuning.LoadWorkers)
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				log.Printf("Failed to open %s: %v", dir, err)
				ga.status.SetText(placeholderText)
				dialog.ShowError(err, ga.window)
				return
			}
			ga.cfg.SetLastDirectory(dir)
			ga.setAlbum(album)
		})
	}()
}

// setAlbum replaces the album being shown. The filter selection carries over.
func (ga *GlanceApp) setAlbum(album *content.Album) {
	var filters viewer.FilterSet
	if ga.session != nil {
		filters = ga.session.Filters()
		ga.session.Stop()
	}

	ga.album = album
	ga.session = viewer.NewSession(album, ga.view, ga.tuning, fyne.Do)
	ga.session.OnChange(ga.onSessionChanged)
	ga.view.SetSession(ga.session)
	for _, f := range filters.Active() {
		ga.session.ToggleFilter(f)
	}
	ga.session.Refresh()
	ga.refreshMiniatures()
}

func (ga *GlanceApp) onSessionChanged() {
	ga.view.Update()
	ga.updateStatus()
}

func (ga *GlanceApp) updateStatus() {
	item, ok := ga.album.Current()
	if !ok {
		ga.status.SetText(placeholderText)
		return
	}
	text := fmt.Sprintf("%d/%d  %s", ga.album.Index()+1, ga.album.Len(), item.Name)
	if state := ga.session.State(); state.Zoomed() {
		text += fmt.Sprintf("  %.1fx", state.Scale)
	}
	if active := ga.session.Filters(); !active.Empty() {
		text += "  [" + active.String() + "]"
	}
	ga.status.SetText(text)
}

// refreshMiniatures rebuilds the strip in the background, or hides it when
// disabled in preferences.
func (ga *GlanceApp) refreshMiniatures() {
	if ga.cancelMinis != nil {
		ga.cancelMinis()
	}
	ga.strip.RemoveAll()
	if !ga.cfg.GetShowMiniatures() || ga.album.Len() == 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	ga.cancelMinis = cancel
	items := ga.album.Items()
	size := ga.tuning.MiniatureSize

	go func() {
		thumbs, err := loadMiniatures(ctx, items, size, ga.tuning.LoadWorkers)
		if err != nil {
			log.Debugf("Miniatures abandoned: %v", err)
			return
		}
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			ga.strip.Objects = []fyne.CanvasObject{newMiniatureStrip(thumbs, items, size, ga.session.Select)}
			ga.strip.Refresh()
		})
	}()
}

func (ga *GlanceApp) cancelBackground() {
	if ga.cancelLoad != nil {
		ga.cancelLoad()
	}
	if ga.cancelMinis != nil {
		ga.cancelMinis()
	}
}

func (ga *GlanceApp) createToolbar() *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), ga.showOpenDialog),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() { ga.session.Previous() }),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() { ga.session.Next() }),
		widget.NewToolbarAction(theme.ZoomFitIcon(), func() { ga.session.ResetZoom() }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), ga.showSaveDialog),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), ga.showPreferences),
		widget.NewToolbarAction(theme.HelpIcon(), ga.showShortcuts),
	)
}

func (ga *GlanceApp) createFilterBar() fyne.CanvasObject {
	bar := container.NewHBox()
	for _, f := range viewer.Filters {
		check := widget.NewCheck(f.String(), func(on bool) {
			if ga.session.Filters().Enabled(f) != on {
				ga.session.ToggleFilter(f)
			}
		})
		ga.filterChecks[f] = check
		bar.Add(check)
	}
	return bar
}

// toggleFilter flips a filter through its check box so both stay in step.
func (ga *GlanceApp) toggleFilter(f viewer.Filter) {
	check := ga.filterChecks[f]
	check.SetChecked(!check.Checked)
}

func (ga *GlanceApp) registerKeys() {
	ga.window.Canvas().SetOnTypedKey(ga.typedKey)
	ga.window.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { ga.showSaveDialog() },
	)
}

func (ga *GlanceApp) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		ga.session.Previous()
	case fyne.KeyRight:
		ga.session.Next()
	case fyne.KeyEscape:
		ga.session.ResetZoom()
	case fyne.KeyEqual, fyne.KeyPlus:
		ga.session.Zoom(ga.tuning.ScrollZoomStep)
	case fyne.KeyMinus:
		ga.session.Zoom(-ga.tuning.ScrollZoomStep)
	case fyne.KeyG:
		ga.toggleFilter(viewer.FilterGrayscale)
	case fyne.KeyP:
		ga.toggleFilter(viewer.FilterPixel)
	case fyne.KeyB:
		ga.toggleFilter(viewer.FilterBlur)
	}
}

func (ga *GlanceApp) showOpenDialog() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ga.window)
			return
		}
		if uri == nil {
			return
		}
		ga.Open(uri.Path())
	}, ga.window)
}

func (ga *GlanceApp) showSaveDialog() {
	if _, err := ga.session.Frame(); err != nil {
		log.Printf("Nothing to save: %v", err)
		return
	}

	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ga.window)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()
		if err := ga.writeSnapshot(w, w.URI().Extension()); err != nil {
			log.Printf("Failed to save snapshot: %v", err)
			dialog.ShowError(err, ga.window)
		}
	}, ga.window)
	save.SetFileName(snapshotFileName)
	save.Show()
}

// writeSnapshot encodes the current view in the format of ext and writes it to w.
func (ga *GlanceApp) writeSnapshot(w io.Writer, ext string) error {
	data, err := ga.session.Export(ext)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (ga *GlanceApp) showPreferences() {
	w := ga.app.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	prefs := newPreferences(ga.cfg, func() {
		ga.app.Settings().SetTheme(themeFor(ga.cfg.GetTheme()))
		ga.refreshMiniatures()
	})
	w.SetContent(prefs.content())
	w.Resize(fyne.NewSize(420, 220))
	w.CenterOnScreen()
	w.Show()
}

func (ga *GlanceApp) showShortcuts() {
	text, err := ga.assetMgr.GetText(asset.ShortcutsName)
	if err != nil {
		return
	}
	label := widget.NewLabel(text)
	label.TextStyle = fyne.TextStyle{Monospace: true}
	dialog.ShowCustom("Shortcuts", "Close", label, ga.window)
}

// preferredSize caps the default window size to a fraction of the screen.
func (ga *GlanceApp) preferredSize() geometry.Size {
	desired := geometry.Size{W: defaultWindowWidth, H: defaultWindowHeight}
	screen, err := sysinfo.ScreenSize()
	if err != nil {
		log.Printf("Screen size unknown, using default window size: %v", err)
		return desired
	}
	return geometry.PreferredWindowSize(desired, screen, ga.tuning.WindowFraction)
}
