package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"tasklight/internal/logger"
)

// Splash brackets the bootstrap sequence: Preserve holds the startup
// visual before any async work, Release drops it once the root UI is
// decided. Each is called exactly once.
type Splash interface {
	Preserve()
	Release()
}

// NewSplash returns the platform splash. Drivers without splash support
// (mobile, tests) get a no-op.
func NewSplash(fyneApp fyne.App, log logger.Logger) Splash {
	drv, ok := fyneApp.Driver().(desktop.Driver)
	if !ok {
		return nopSplash{}
	}
	return &splashWindow{driver: drv, logger: log}
}

type splashWindow struct {
	driver desktop.Driver
	logger logger.Logger
	window fyne.Window
}

func (s *splashWindow) Preserve() {
	fyne.Do(func() {
		s.window = s.driver.CreateSplashWindow()

		spinner := widget.NewActivity()
		spinner.Start()

		s.window.SetContent(container.NewVBox(
			widget.NewLabel("Tasklight"),
			spinner,
		))
		s.window.Show()
	})
	s.logger.Debug("Splash", "splash preserved", nil)
}

func (s *splashWindow) Release() {
	fyne.Do(func() {
		if s.window != nil {
			s.window.Close()
			s.window = nil
		}
	})
	s.logger.Debug("Splash", "splash released", nil)
}

type nopSplash struct{}

func (nopSplash) Preserve() {}
func (nopSplash) Release()  {}
