package model

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Priority classifies the severity of a todo. The set is closed: exactly
// four variants, ordered Urgent > High > Medium > Low. Each variant carries
// the semantic color and icon tokens the list view renders it with.
type Priority struct {
	rank  int
	label string
	color fyne.ThemeColorName
	icon  fyne.ThemeIconName
}

var (
	PriorityUrgent = Priority{rank: 0, label: "Urgent", color: theme.ColorNameError, icon: theme.IconNameError}
	PriorityHigh   = Priority{rank: 1, label: "High", color: theme.ColorNameWarning, icon: theme.IconNameWarning}
	PriorityMedium = Priority{rank: 2, label: "Medium", color: theme.ColorNamePrimary, icon: theme.IconNameInfo}
	PriorityLow    = Priority{rank: 3, label: "Low", color: theme.ColorNameSuccess, icon: theme.IconNameConfirm}
)

// ErrUnknownPriority is returned when a label does not resolve to a
// catalog variant. Resolution never substitutes a different severity.
type ErrUnknownPriority struct {
	Label string
}

func (e ErrUnknownPriority) Error() string {
	return fmt.Sprintf("unknown priority label %q", e.Label)
}

// Priorities returns the catalog in severity order, most severe first.
func Priorities() []Priority {
	return []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
}

// Labels returns the ordered display labels for populating a selection
// control.
func Labels() []string {
	priorities := Priorities()
	labels := make([]string, len(priorities))
	for i, p := range priorities {
		labels[i] = p.label
	}
	return labels
}

// ByLabel resolves a display label back to its catalog variant.
func ByLabel(label string) (Priority, error) {
	for _, p := range Priorities() {
		if p.label == label {
			return p, nil
		}
	}
	return Priority{}, ErrUnknownPriority{Label: label}
}

// Label returns the display label shown in selection controls and rows.
func (p Priority) Label() string {
	return p.label
}

// Color returns the semantic color token for this severity.
func (p Priority) Color() fyne.ThemeColorName {
	return p.color
}

// Icon returns the symbolic icon token for this severity.
func (p Priority) Icon() fyne.ThemeIconName {
	return p.icon
}

// Rank returns the severity rank, zero being the most severe.
func (p Priority) Rank() int {
	return p.rank
}

// MoreSevere reports whether p outranks other.
func (p Priority) MoreSevere(other Priority) bool {
	return p.rank < other.rank
}
