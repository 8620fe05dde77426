package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tasklight/internal/theme"
)

// TodoList renders the store's current snapshot as display rows. The
// whole list is re-rendered on every change; at this data scale there is
// no incremental patching.
type TodoList struct {
	palette *theme.Palette
	list    *widget.List
	empty   *widget.Label
	content *fyne.Container

	rows []ListRow
}

// NewTodoList builds an empty list view.
func NewTodoList(palette *theme.Palette) *TodoList {
	tl := &TodoList{palette: palette}

	tl.list = widget.NewList(tl.rowCount, tl.createRow, tl.updateRow)
	tl.empty = widget.NewLabel("Nothing to do yet")
	tl.empty.Alignment = fyne.TextAlignCenter

	tl.content = container.NewStack(tl.list, tl.empty)
	return tl
}

// GetContainer returns the list's root canvas object.
func (tl *TodoList) GetContainer() fyne.CanvasObject {
	return tl.content
}

// SetRows replaces the displayed rows and refreshes the view.
func (tl *TodoList) SetRows(rows []ListRow) {
	tl.rows = rows
	if len(rows) == 0 {
		tl.empty.Show()
	} else {
		tl.empty.Hide()
	}
	tl.list.Refresh()
}

// Rows returns the rows currently displayed.
func (tl *TodoList) Rows() []ListRow {
	return tl.rows
}

func (tl *TodoList) rowCount() int {
	return len(tl.rows)
}

func (tl *TodoList) createRow() fyne.CanvasObject {
	icon := widget.NewIcon(fynetheme.InfoIcon())

	title := canvas.NewText("", tl.palette.CurrentColor(fynetheme.ColorNameForeground))
	title.TextStyle = tl.palette.TitleStyle()
	title.TextSize = tl.palette.Size(fynetheme.SizeNameText)

	description := widget.NewLabel("")
	description.Truncation = fyne.TextTruncateEllipsis

	badge := canvas.NewText("", tl.palette.CurrentColor(fynetheme.ColorNamePrimary))
	badge.TextSize = tl.palette.Size(fynetheme.SizeNameCaptionText)

	return container.NewHBox(icon, container.NewVBox(title, description, badge))
}

func (tl *TodoList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(tl.rows) {
		return
	}
	row := tl.rows[id]

	box := obj.(*fyne.Container)
	icon := box.Objects[0].(*widget.Icon)
	fields := box.Objects[1].(*fyne.Container)
	title := fields.Objects[0].(*canvas.Text)
	description := fields.Objects[1].(*widget.Label)
	badge := fields.Objects[2].(*canvas.Text)

	icon.SetResource(tl.palette.Icon(row.Icon))

	title.Text = row.Title
	title.Refresh()

	description.SetText(row.Description)

	badge.Text = row.PriorityLabel
	badge.Color = tl.palette.CurrentColor(row.Color)
	badge.Refresh()
}
