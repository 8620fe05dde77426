package controllers

import (
	"fmt"
	"unicode/utf8"

	"tasklight/internal/logger"
	"tasklight/internal/model"
)

// Field length constraints enforced by the creation form.
const (
	TitleMaxLen       = 20
	DescriptionMinLen = 5
	DescriptionMaxLen = 40
)

// Validation error codes surfaced inline at the owning field.
const (
	CodeEmptyTitle         = "EmptyTitle"
	CodeTitleTooLong       = "TitleTooLong"
	CodeEmptyDescription   = "EmptyDescription"
	CodeDescriptionTooLong = "DescriptionTooLong"
	CodeNoPrioritySelected = "NoPrioritySelected"
	CodeUnknownPriority    = "UnknownPriority"
)

// Form field names, matching the creation form's inputs.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPriority    = "priority"
)

// ValidationError describes a single failed form constraint. It never
// propagates beyond the form controller; the view renders Message next to
// the named field.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormController validates creation form input and materializes it into
// store entries.
type FormController struct {
	store  *model.Store
	logger logger.Logger
}

// NewFormController wires the controller to the store it appends to.
func NewFormController(store *model.Store, log logger.Logger) *FormController {
	return &FormController{
		store:  store,
		logger: log,
	}
}

// Defaults returns the initial field values: empty inputs and the
// lowest-severity priority preselected.
func (fc *FormController) Defaults() (title, description, priorityLabel string) {
	labels := model.Labels()
	return "", "", labels[len(labels)-1]
}

// Validate checks the three inputs against the form constraints. On
// success it returns the todo the inputs materialize into; on failure it
// returns one error per violated field and a zero todo.
func (fc *FormController) Validate(title, description, priorityLabel string) (model.Todo, []ValidationError) {
	var errs []ValidationError

	switch {
	case title == "":
		errs = append(errs, ValidationError{
			Field:   FieldTitle,
			Code:    CodeEmptyTitle,
			Message: "title must not be empty",
		})
	case utf8.RuneCountInString(title) > TitleMaxLen:
		// The entry widget clamps input at the limit; hitting this means
		// the value arrived programmatically, so reject it outright.
		errs = append(errs, ValidationError{
			Field:   FieldTitle,
			Code:    CodeTitleTooLong,
			Message: fmt.Sprintf("title must be at most %d characters", TitleMaxLen),
		})
	}

	switch descLen := utf8.RuneCountInString(description); {
	case descLen < DescriptionMinLen:
		errs = append(errs, ValidationError{
			Field:   FieldDescription,
			Code:    CodeEmptyDescription,
			Message: fmt.Sprintf("description must be at least %d characters", DescriptionMinLen),
		})
	case descLen > DescriptionMaxLen:
		errs = append(errs, ValidationError{
			Field:   FieldDescription,
			Code:    CodeDescriptionTooLong,
			Message: fmt.Sprintf("description must be at most %d characters", DescriptionMaxLen),
		})
	}

	var priority model.Priority
	if priorityLabel == "" {
		errs = append(errs, ValidationError{
			Field:   FieldPriority,
			Code:    CodeNoPrioritySelected,
			Message: "select a priority",
		})
	} else {
		resolved, err := model.ByLabel(priorityLabel)
		if err != nil {
			// Resolution failure is surfaced, never silently downgraded
			// to a substitute severity.
			errs = append(errs, ValidationError{
				Field:   FieldPriority,
				Code:    CodeUnknownPriority,
				Message: err.Error(),
			})
		} else {
			priority = resolved
		}
	}

	if len(errs) > 0 {
		return model.Todo{}, errs
	}

	return model.NewTodo(title, description, priority), nil
}

// Submit validates the inputs and, on success, appends the resulting todo
// to the store. The store is untouched when validation fails.
func (fc *FormController) Submit(title, description, priorityLabel string) []ValidationError {
	todo, errs := fc.Validate(title, description, priorityLabel)
	if len(errs) > 0 {
		codes := make([]string, len(errs))
		for i, e := range errs {
			codes[i] = e.Code
		}
		fc.logger.Debug("FormController", "submission rejected", map[string]interface{}{
			"errors": codes,
		})
		return errs
	}

	fc.store.Add(todo)
	fc.logger.Info("FormController", "todo created", map[string]interface{}{
		"id":       todo.ID,
		"priority": todo.Priority.Label(),
	})
	return nil
}
