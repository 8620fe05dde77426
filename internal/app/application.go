package app

import (
	"context"

	"fyne.io/fyne/v2"

	"tasklight/internal/backend"
	"tasklight/internal/config"
	"tasklight/internal/controllers"
	"tasklight/internal/gui"
	"tasklight/internal/gui/components"
	"tasklight/internal/logger"
	"tasklight/internal/model"
	"tasklight/internal/theme"
)

const (
	AppName = "Tasklight"
	AppID   = "com.tasklight.app"
)

// Application assembles the store, controllers and UI and runs the
// bootstrap sequence before any of it becomes interactive.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	palette *theme.Palette
	logger  logger.Logger

	store          *model.Store
	formController *controllers.FormController
	guiManager     *gui.Manager
	bootstrap      *Bootstrap
	lifecycle      *Lifecycle
}

// NewApplication wires the application over an existing Fyne app using
// constructor injection throughout; nothing reaches for ambient state.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) *Application {
	palette := theme.NewPalette()
	fyneApp.Settings().SetTheme(palette)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetMaster()

	store := model.NewStore()
	formController := controllers.NewFormController(store, log)
	guiManager := gui.NewManager(window, palette, store, log)

	initializer := backend.FromConfig(cfg.Backend, log)
	splash := NewSplash(fyneApp, log)
	bootstrap := NewBootstrap(initializer, splash, log)
	lifecycle := NewLifecycle(guiManager, log)

	application := &Application{
		fyneApp:        fyneApp,
		window:         window,
		palette:        palette,
		logger:         log,
		store:          store,
		formController: formController,
		guiManager:     guiManager,
		bootstrap:      bootstrap,
		lifecycle:      lifecycle,
	}

	guiManager.SetSubmitHandler(application.handleSubmit)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"backend_enabled": cfg.Backend.Enabled,
		"window_width":    cfg.Window.Width,
		"window_height":   cfg.Window.Height,
	})
	return application
}

// Run starts the bootstrap sequence and enters the UI event loop. It
// blocks until the application exits.
func (a *Application) Run(ctx context.Context) error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	go func() {
		err := a.bootstrap.Run(ctx)
		fyne.Do(func() {
			a.mount(err)
		})
	}()

	a.fyneApp.Run()
	return nil
}

// Shutdown tears the session down; safe to call more than once.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}

// mount decides the root UI from the bootstrap outcome: the todo screen
// on success, the full-screen error state on failure.
func (a *Application) mount(err *BootstrapError) {
	if err != nil {
		screen := components.NewErrorScreen(a.palette, err.Error())
		a.window.SetContent(screen.GetContainer())
		a.window.Show()
		return
	}

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()
	a.logger.Info("Application", "todo screen mounted", nil)
}

// handleSubmit runs the form controller against the submitted values and
// feeds the outcome back into the view.
func (a *Application) handleSubmit(title, description, priorityLabel string) {
	errs := a.formController.Submit(title, description, priorityLabel)
	if len(errs) > 0 {
		a.guiManager.ShowFormErrors(fieldMessages(errs))
		return
	}
	a.guiManager.ResetForm(a.formController.Defaults())
}

// fieldMessages keeps the first message per field for inline display.
func fieldMessages(errs []controllers.ValidationError) map[string]string {
	messages := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := messages[e.Field]; !ok {
			messages[e.Field] = e.Message
		}
	}
	return messages
}
