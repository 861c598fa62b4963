package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// StatusOptions returns one huh option per task status
func StatusOptions() []huh.Option[models.Status] {
	options := make([]huh.Option[models.Status], 0, len(models.Statuses))
	for _, status := range models.Statuses {
		options = append(options, huh.NewOption(status.Label(), status))
	}
	return options
}

// CreateTaskForm creates a huh form for adding/editing a task.
// The form writes through the pointers, which belong to state.FormState.
func CreateTaskForm(
	title *string,
	description *string,
	status *models.Status,
	deadline *string,
	confirm *bool,
	descriptionLines int,
	saveKey string,
) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(func(s string) error { return validation.Required("title", s) }).
			Value(title),
	)

	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is supported").
			CharLimit(5000).
			Lines(descriptionLines).
			Validate(func(s string) error { return validation.Required("description", s) }).
			Value(description),
	)

	fields = append(fields,
		huh.NewSelect[models.Status]().
			Key("status").
			Title("Status").
			Options(StatusOptions()...).
			Value(status),
	)

	fields = append(fields,
		huh.NewInput().
			Key("deadline").
			Title("Deadline").
			Placeholder(models.DeadlineLayout).
			Validate(func(s string) error {
				_, err := validation.Deadline(s)
				return err
			}).
			Value(deadline),
	)

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Save this task?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(NewFormKeyMap(saveKey)).WithShowHelp(false)
}
