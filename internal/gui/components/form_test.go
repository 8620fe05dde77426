package components

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"tasklight/internal/controllers"

	"github.com/stretchr/testify/assert"
)

func TestFormClampsTitleAtLimit(t *testing.T) {
	test.NewApp()
	tf := NewTodoForm()

	tf.titleEntry.SetText(strings.Repeat("a", controllers.TitleMaxLen+10))

	title, _, _ := tf.Values()
	assert.Len(t, []rune(title), controllers.TitleMaxLen)
}

func TestFormClampCountsRunes(t *testing.T) {
	test.NewApp()
	tf := NewTodoForm()

	tf.titleEntry.SetText(strings.Repeat("ü", controllers.TitleMaxLen+3))

	title, _, _ := tf.Values()
	assert.Equal(t, strings.Repeat("ü", controllers.TitleMaxLen), title)
}

func TestFormSubmitPassesCurrentValues(t *testing.T) {
	test.NewApp()
	tf := NewTodoForm()

	var gotTitle, gotDescription, gotPriority string
	tf.SetSubmitHandler(func(title, description, priorityLabel string) {
		gotTitle, gotDescription, gotPriority = title, description, priorityLabel
	})

	tf.titleEntry.SetText("Water plants")
	tf.descriptionEntry.SetText("The ones on the balcony")
	tf.prioritySelect.SetSelected("Low")

	test.Tap(tf.addButton)

	assert.Equal(t, "Water plants", gotTitle)
	assert.Equal(t, "The ones on the balcony", gotDescription)
	assert.Equal(t, "Low", gotPriority)
}

func TestFormShowsAndClearsFieldErrors(t *testing.T) {
	test.NewApp()
	tf := NewTodoForm()

	tf.ShowFieldErrors(map[string]string{
		controllers.FieldTitle:    "title must not be empty",
		controllers.FieldPriority: "select a priority",
	})

	assert.True(t, tf.titleError.Visible())
	assert.Equal(t, "title must not be empty", tf.titleError.Text)
	assert.False(t, tf.descriptionError.Visible())
	assert.True(t, tf.priorityError.Visible())

	tf.ShowFieldErrors(nil)
	assert.False(t, tf.titleError.Visible())
	assert.False(t, tf.priorityError.Visible())
}

func TestFormResetRestoresDefaults(t *testing.T) {
	test.NewApp()
	tf := NewTodoForm()

	tf.titleEntry.SetText("Leftover")
	tf.descriptionEntry.SetText("Old description text")
	tf.prioritySelect.SetSelected("Urgent")
	tf.ShowFieldErrors(map[string]string{controllers.FieldTitle: "stale error"})

	tf.Reset("", "", "Low")

	title, description, priorityLabel := tf.Values()
	assert.Empty(t, title)
	assert.Empty(t, description)
	assert.Equal(t, "Low", priorityLabel)
	assert.False(t, tf.titleError.Visible())
}
