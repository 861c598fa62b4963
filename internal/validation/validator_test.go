package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "ana@example.com", false},
		{"valid with subdomain", "ana.b@mail.example.org", false},
		{"surrounding whitespace", "  ana@example.com ", false},
		{"empty", "", true},
		{"no at sign", "ana.example.com", true},
		{"no domain dot", "ana@example", true},
		{"display name", "Ana <ana@example.com>", true},
		{"trailing dot", "ana@example.", true},
		{"missing local part", "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmail_RequiredType(t *testing.T) {
	var fe *FieldError
	require.True(t, errors.As(Email(""), &fe))
	assert.Equal(t, ErrorTypeRequired, fe.Type)
	assert.Equal(t, "email", fe.Field)
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("secret"))
	assert.NoError(t, Password("longer password"))

	var fe *FieldError
	require.True(t, errors.As(Password("12345"), &fe))
	assert.Equal(t, ErrorTypeInvalidLength, fe.Type)
	assert.Contains(t, fe.Message, "at least 6")

	require.True(t, errors.As(Password(""), &fe))
	assert.Equal(t, ErrorTypeRequired, fe.Type)
}

func TestCredentials_ReportsAllFields(t *testing.T) {
	err := Credentials(models.Credentials{Email: "nope", Password: "1"})
	require.Error(t, err)

	var ve *Errors
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 2)
	assert.Equal(t, "email", ve.First().Field)
	assert.Contains(t, err.Error(), "multiple validation errors")

	assert.NoError(t, Credentials(models.Credentials{Email: "a@b.io", Password: "hunter2"}))
}

func TestStatus(t *testing.T) {
	s, err := Status("In_Progress")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, s)

	_, err = Status("archived")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be: new, in_progress, completed")

	_, err = Status("")
	assert.Error(t, err)

	s, err = OptionalStatus("")
	assert.NoError(t, err)
	assert.Equal(t, models.Status(""), s)
}

func TestDeadline(t *testing.T) {
	d, err := Deadline("2026-05-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, time.Local), d)

	d, err = Deadline("2026-05-04T10:30:00Z")
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)))

	_, err = Deadline("04/05/2026")
	assert.Error(t, err)

	_, err = Deadline("")
	assert.Error(t, err)

	d, err = OptionalDeadline(" ")
	assert.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestPageSize(t *testing.T) {
	for _, size := range []int{10, 20, 30} {
		assert.NoError(t, PageSize(size))
	}
	assert.Error(t, PageSize(15))
	assert.Error(t, PageSize(0))
}

func TestTaskInput(t *testing.T) {
	valid := models.TaskInput{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      models.StatusNew,
		Deadline:    time.Now(),
	}
	assert.NoError(t, TaskInput(valid))

	t.Run("all fields missing", func(t *testing.T) {
		err := TaskInput(models.TaskInput{})
		var ve *Errors
		require.True(t, errors.As(err, &ve))
		assert.Len(t, ve.Fields, 4)
		assert.Equal(t, "title", ve.First().Field)
	})

	t.Run("invalid status", func(t *testing.T) {
		in := valid
		in.Status = "archived"
		err := TaskInput(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status")
	})

	t.Run("blank title", func(t *testing.T) {
		in := valid
		in.Title = "   "
		assert.Error(t, TaskInput(in))
	})
}
