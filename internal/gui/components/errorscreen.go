package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tasklight/internal/theme"
)

// ErrorScreen is the full-screen fallback mounted when startup fails.
// It has no retry affordance: restarting the app is the recovery path.
type ErrorScreen struct {
	content      fyne.CanvasObject
	messageLabel *widget.Label
}

// NewErrorScreen builds the screen around the failure message.
func NewErrorScreen(palette *theme.Palette, message string) *ErrorScreen {
	heading := canvas.NewText("Tasklight could not start", palette.CurrentColor(fynetheme.ColorNameError))
	heading.TextStyle = palette.TitleStyle()
	heading.TextSize = palette.Size(fynetheme.SizeNameSubHeadingText)
	heading.Alignment = fyne.TextAlignCenter

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord
	messageLabel.Alignment = fyne.TextAlignCenter

	hint := widget.NewLabel("Check your connection settings and restart the app.")
	hint.Alignment = fyne.TextAlignCenter

	body := container.NewVBox(
		widget.NewIcon(fynetheme.ErrorIcon()),
		heading,
		messageLabel,
		hint,
	)

	return &ErrorScreen{
		content:      container.NewCenter(body),
		messageLabel: messageLabel,
	}
}

// GetContainer returns the screen's root canvas object.
func (es *ErrorScreen) GetContainer() fyne.CanvasObject {
	return es.content
}

// Message returns the displayed failure message.
func (es *ErrorScreen) Message() string {
	return es.messageLabel.Text
}
