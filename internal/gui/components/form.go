package components

import (
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tasklight/internal/controllers"
	"tasklight/internal/model"
)

// TodoForm is the creation form: title, description, priority selection
// and an add button, with inline per-field error labels.
type TodoForm struct {
	container *fyne.Container

	titleEntry       *widget.Entry
	descriptionEntry *widget.Entry
	prioritySelect   *widget.Select
	addButton        *widget.Button

	titleError       *widget.Label
	descriptionError *widget.Label
	priorityError    *widget.Label

	submitHandler func(title, description, priorityLabel string)
}

// NewTodoForm builds the form with the priority control populated from
// the catalog labels.
func NewTodoForm() *TodoForm {
	tf := &TodoForm{}
	tf.createComponents()
	tf.buildLayout()
	return tf
}

func (tf *TodoForm) createComponents() {
	tf.titleEntry = widget.NewEntry()
	tf.titleEntry.SetPlaceHolder("What needs doing?")
	tf.titleEntry.OnChanged = tf.clampTitle

	tf.descriptionEntry = widget.NewMultiLineEntry()
	tf.descriptionEntry.SetPlaceHolder("Add a short description")
	tf.descriptionEntry.Wrapping = fyne.TextWrapWord

	tf.prioritySelect = widget.NewSelect(model.Labels(), nil)

	tf.addButton = widget.NewButton("Add Todo", tf.onSubmit)
	tf.addButton.Importance = widget.HighImportance

	tf.titleError = newErrorLabel()
	tf.descriptionError = newErrorLabel()
	tf.priorityError = newErrorLabel()
}

func newErrorLabel() *widget.Label {
	label := widget.NewLabel("")
	label.Importance = widget.DangerImportance
	label.Hide()
	return label
}

func (tf *TodoForm) buildLayout() {
	tf.container = container.NewVBox(
		widget.NewLabel("Title"),
		tf.titleEntry,
		tf.titleError,
		widget.NewLabel("Description"),
		tf.descriptionEntry,
		tf.descriptionError,
		widget.NewLabel("Priority"),
		tf.prioritySelect,
		tf.priorityError,
		tf.addButton,
	)
}

// clampTitle enforces the title length limit at the input layer; overlong
// text is truncated rather than rejected.
func (tf *TodoForm) clampTitle(text string) {
	if utf8.RuneCountInString(text) <= controllers.TitleMaxLen {
		return
	}
	runes := []rune(text)
	tf.titleEntry.SetText(string(runes[:controllers.TitleMaxLen]))
}

// GetContainer returns the form's root container.
func (tf *TodoForm) GetContainer() *fyne.Container {
	return tf.container
}

// SetSubmitHandler registers the callback fired with the current field
// values when the add button is tapped.
func (tf *TodoForm) SetSubmitHandler(handler func(title, description, priorityLabel string)) {
	tf.submitHandler = handler
}

func (tf *TodoForm) onSubmit() {
	if tf.submitHandler != nil {
		tf.submitHandler(tf.titleEntry.Text, tf.descriptionEntry.Text, tf.prioritySelect.Selected)
	}
}

// Values returns the current field contents.
func (tf *TodoForm) Values() (title, description, priorityLabel string) {
	return tf.titleEntry.Text, tf.descriptionEntry.Text, tf.prioritySelect.Selected
}

// Reset restores the fields to the given defaults and clears any error
// labels. Called after a successful submission.
func (tf *TodoForm) Reset(title, description, priorityLabel string) {
	tf.titleEntry.SetText(title)
	tf.descriptionEntry.SetText(description)
	tf.prioritySelect.SetSelected(priorityLabel)
	tf.ShowFieldErrors(nil)
}

// ShowFieldErrors displays one message per failed field, keyed by the
// form field name, and hides the labels of fields that passed.
func (tf *TodoForm) ShowFieldErrors(messages map[string]string) {
	setFieldError(tf.titleError, messages[controllers.FieldTitle])
	setFieldError(tf.descriptionError, messages[controllers.FieldDescription])
	setFieldError(tf.priorityError, messages[controllers.FieldPriority])
}

func setFieldError(label *widget.Label, message string) {
	if message == "" {
		label.SetText("")
		label.Hide()
		return
	}
	label.SetText(message)
	label.Show()
}
