package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// validate checks request bodies. Field names in errors are the JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("taskstatus", "oneof=new in_progress completed")
	if err := v.RegisterValidation("deadline", func(fl validator.FieldLevel) bool {
		_, err := validation.Deadline(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// registerRequest is the body of POST /api/auth/register
type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginRequest is the body of POST /api/auth/login
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// taskRequest is the body of create and update requests
type taskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"required,taskstatus"`
	Deadline    string `json:"deadline" validate:"required,deadline"`
}

// statusRequest is the body of PATCH /api/tasks/{taskID}/updateStatus
type statusRequest struct {
	Status string `json:"status" validate:"required,taskstatus"`
}

func (req *registerRequest) credentials() (models.Credentials, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return models.Credentials{}, requestError(err)
	}
	return models.Credentials{Email: req.Email, Password: req.Password}, nil
}

func (req *loginRequest) credentials() (models.Credentials, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return models.Credentials{}, requestError(err)
	}
	return models.Credentials{Email: req.Email, Password: req.Password}, nil
}

func (req *taskRequest) input() (models.TaskInput, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	req.Deadline = strings.TrimSpace(req.Deadline)
	if err := validate.Struct(req); err != nil {
		return models.TaskInput{}, requestError(err)
	}

	deadline, err := validation.Deadline(req.Deadline)
	if err != nil {
		return models.TaskInput{}, err
	}
	return models.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.Status(req.Status),
		Deadline:    deadline,
	}, nil
}

func (req *statusRequest) status() (models.Status, error) {
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := validate.Struct(req); err != nil {
		return "", requestError(err)
	}
	return models.Status(req.Status), nil
}

// requestError turns validator failures into one readable message per field
func requestError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fmt.Sprintf("%q is not a valid email address", fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "taskstatus":
		return fmt.Sprintf("invalid status '%v' (must be: new, in_progress, completed)", fe.Value())
	case "deadline":
		return fmt.Sprintf("invalid deadline '%v' (expected YYYY-MM-DD)", fe.Value())
	}
	return fe.Field() + " is invalid"
}
