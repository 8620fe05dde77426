package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the current session state at the bottom of the screen.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
}

// NewStatusBar creates the status bar in its initial state.
func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel("Ready"),
		countLabel:  widget.NewLabel("No todos"),
	}

	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countLabel,
	)
	return sb
}

// GetContainer returns the status bar's root container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetStatus updates the status message.
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// SetTodoCount updates the todo counter.
func (sb *StatusBar) SetTodoCount(count int) {
	switch count {
	case 0:
		sb.countLabel.SetText("No todos")
	case 1:
		sb.countLabel.SetText("1 todo")
	default:
		sb.countLabel.SetText(fmt.Sprintf("%d todos", count))
	}
}
