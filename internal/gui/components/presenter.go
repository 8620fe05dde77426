package components

import (
	"fyne.io/fyne/v2"

	"tasklight/internal/model"
)

// ListRow is the display record the list view renders for one todo.
type ListRow struct {
	Title         string
	Description   string
	PriorityLabel string
	Color         fyne.ThemeColorName
	Icon          fyne.ThemeIconName
}

// Rows projects a store snapshot into display records. Pure: same
// snapshot in, same rows out, no mutation of the input.
func Rows(todos []model.Todo) []ListRow {
	rows := make([]ListRow, len(todos))
	for i, todo := range todos {
		rows[i] = ListRow{
			Title:         todo.Title,
			Description:   todo.Description,
			PriorityLabel: todo.Priority.Label(),
			Color:         todo.Priority.Color(),
			Icon:          todo.Priority.Icon(),
		}
	}
	return rows
}
