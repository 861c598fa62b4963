package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// CreateFilterForm creates the status / deadline filter form.
// The empty status and an empty deadline mean "no filter".
func CreateFilterForm(status *models.Status, deadline *string, saveKey string) *huh.Form {
	options := append([]huh.Option[models.Status]{huh.NewOption("Any", models.Status(""))}, StatusOptions()...)

	fields := []huh.Field{
		huh.NewSelect[models.Status]().
			Key("status").
			Title("Status").
			Options(options...).
			Value(status),

		huh.NewInput().
			Key("deadline").
			Title("Due on or before").
			Placeholder(models.DeadlineLayout + " (empty for any)").
			Validate(func(s string) error {
				_, err := validation.OptionalDeadline(s)
				return err
			}).
			Value(deadline),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(NewFormKeyMap(saveKey)).
		WithShowHelp(false)
}
