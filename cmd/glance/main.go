package main

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/Glance/config"
	"github.com/dixieflatline76/Glance/ui"
	"github.com/dixieflatline76/Glance/util/log"
)

func loadTuning() config.Tuning {
	dir, err := config.GetPath()
	if err != nil {
		log.Printf("Using default tuning: %v", err)
		return config.DefaultTuning()
	}
	t, err := config.EnsureTuning(filepath.Join(dir, config.TuningFile))
	if err != nil {
		log.Printf("Using default tuning: %v", err)
	}
	return t
}

func main() {
	log.Printf("%s %s starting", config.AppName, config.AppVersion)

	a := app.NewWithID(config.AppID)
	glance := ui.NewGlanceApp(a, loadTuning())

	dir := config.NewAppConfig(a.Preferences()).GetLastDirectory()
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if dir != "" {
		glance.Open(dir)
	}

	glance.ShowAndRun()
}
