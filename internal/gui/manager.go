package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"tasklight/internal/gui/components"
	"tasklight/internal/logger"
	"tasklight/internal/model"
	"tasklight/internal/theme"
)

// Manager owns the todo screen's components and keeps the list view in
// step with the store. Handlers are wired in by the app layer.
type Manager struct {
	window     fyne.Window
	palette    *theme.Palette
	store      *model.Store
	logger     logger.Logger
	isShutdown bool

	form      *components.TodoForm
	list      *components.TodoList
	statusBar *components.StatusBar

	submitHandler func(title, description, priorityLabel string)
}

// NewManager builds the todo screen components over the given store.
func NewManager(window fyne.Window, palette *theme.Palette, store *model.Store, log logger.Logger) *Manager {
	m := &Manager{
		window:    window,
		palette:   palette,
		store:     store,
		logger:    log,
		form:      components.NewTodoForm(),
		list:      components.NewTodoList(palette),
		statusBar: components.NewStatusBar(),
	}

	// Every store mutation triggers a full re-render of the list.
	store.SetOnChange(m.renderList)
	m.renderList()

	m.form.SetSubmitHandler(func(title, description, priorityLabel string) {
		if m.submitHandler != nil {
			m.submitHandler(title, description, priorityLabel)
		}
	})

	log.Info("GUIManager", "todo screen initialized", map[string]interface{}{
		"priorities": len(model.Labels()),
	})
	return m
}

// GetMainContainer lays out the todo screen: form on top, list filling
// the center, status bar at the bottom.
func (m *Manager) GetMainContainer() fyne.CanvasObject {
	return container.NewBorder(
		m.form.GetContainer(),
		m.statusBar.GetContainer(),
		nil,
		nil,
		m.list.GetContainer(),
	)
}

// SetSubmitHandler registers the callback that receives the raw form
// values when the user taps the add button.
func (m *Manager) SetSubmitHandler(handler func(title, description, priorityLabel string)) {
	m.submitHandler = handler
}

// ShowFormErrors surfaces per-field validation messages inline.
func (m *Manager) ShowFormErrors(messages map[string]string) {
	m.form.ShowFieldErrors(messages)
	m.statusBar.SetStatus("Fix the highlighted fields")
}

// ResetForm restores the form to its defaults after a submission.
func (m *Manager) ResetForm(title, description, priorityLabel string) {
	m.form.Reset(title, description, priorityLabel)
	m.statusBar.SetStatus("Todo added")
}

// Form exposes the creation form, primarily for tests driving the UI.
func (m *Manager) Form() *components.TodoForm {
	return m.form
}

// List exposes the list view, primarily for tests inspecting rows.
func (m *Manager) List() *components.TodoList {
	return m.list
}

func (m *Manager) renderList() {
	snapshot := m.store.All()
	m.list.SetRows(components.Rows(snapshot))
	m.statusBar.SetTodoCount(len(snapshot))
}

// Shutdown clears the session state; the store owns the todos and they
// do not outlive the screen.
func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true

	m.store.SetOnChange(nil)
	m.store.Clear()
	m.logger.Info("GUIManager", "shutdown completed", nil)
}
