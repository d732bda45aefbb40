package cmd

import (
	"fmt"

	"github.com/abhisek/mbti/internal/app"
	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/screen"
)

// runApp builds dependencies and launches the TUI. initial, if non-nil,
// builds a screen to open above home.
func runApp(initial func(*questions.Catalog) (screen.Screen, error)) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	mode, err := questions.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	opts := app.Options{
		Logger:  logger,
		Catalog: catalog,
		Mode:    mode,
		Theme:   cfg.Theme,
		Splash:  initial == nil && !noSplash,
	}
	if initial != nil {
		if opts.Initial, err = initial(catalog); err != nil {
			return err
		}
	}
	return app.Run(opts)
}
