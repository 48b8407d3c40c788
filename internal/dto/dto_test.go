package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestSignupRequest_Validation(t *testing.T) {
	tests := []struct {
		name       string
		request    SignupRequest
		wantFields []string
	}{
		{
			name:    "valid",
			request: SignupRequest{Username: "alice.b+1@x", Password1: "correct-horse", Password2: "correct-horse"},
		},
		{
			name:    "unicode letters allowed",
			request: SignupRequest{Username: "иван", Password1: "correct-horse", Password2: "correct-horse"},
		},
		{
			name:       "missing username",
			request:    SignupRequest{Password1: "correct-horse", Password2: "correct-horse"},
			wantFields: []string{"username"},
		},
		{
			name:       "username with spaces",
			request:    SignupRequest{Username: "alice b", Password1: "correct-horse", Password2: "correct-horse"},
			wantFields: []string{"username"},
		},
		{
			name:       "username too long",
			request:    SignupRequest{Username: strings.Repeat("a", 151), Password1: "correct-horse", Password2: "correct-horse"},
			wantFields: []string{"username"},
		},
		{
			name:       "password too short",
			request:    SignupRequest{Username: "alice", Password1: "short", Password2: "short"},
			wantFields: []string{"password1"},
		},
		{
			name:       "passwords differ",
			request:    SignupRequest{Username: "alice", Password1: "correct-horse", Password2: "battery-staple"},
			wantFields: []string{"password2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.request)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FieldErrors(err)
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestTaskFormRequest_TitleLength(t *testing.T) {
	ok := TaskFormRequest{Title: strings.Repeat("ж", 100), Description: "d"}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	long := TaskFormRequest{Title: strings.Repeat("a", 101), Description: "d"}
	fields := FieldErrors(binding.Validator.ValidateStruct(&long))
	assert.Equal(t, "Ensure this value has at most 100 characters.", fields["title"])

	empty := TaskFormRequest{}
	fields = FieldErrors(binding.Validator.ValidateStruct(&empty))
	assert.Equal(t, "This field is required.", fields["title"])
	assert.Equal(t, "This field is required.", fields["description"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
	assert.Nil(t, FieldErrors(nil))
}

func TestFormName(t *testing.T) {
	assert.Equal(t, "title", formName("Title"))
	assert.Equal(t, "password1", formName("Password1"))
	assert.Equal(t, "clear_image", formName("ClearImage"))
}

func TestAssignTaskRequest_ExecutorID(t *testing.T) {
	id := uuid.New()

	got, err := AssignTaskRequest{Executor: id.String()}.ExecutorID()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	got, err = AssignTaskRequest{Executor: "  "}.ExecutorID()
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = AssignTaskRequest{Executor: "bob"}.ExecutorID()
	assert.Error(t, err)
}

func TestAssignTaskRequest_DeadlineTime(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2026-03-31T18:00:00Z", time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC)},
		{"2026-03-31T20:00:00+02:00", time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC)},
		{"2026-03-31T18:00", time.Date(2026, 3, 31, 18, 0, 0, 0, time.UTC)},
		{"2026-03-31 18:00:30", time.Date(2026, 3, 31, 18, 0, 30, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := AssignTaskRequest{Deadline: tt.raw}.DeadlineTime(nil)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v", got)
		})
	}

	got, err := AssignTaskRequest{}.DeadlineTime(time.UTC)
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = AssignTaskRequest{Deadline: "tomorrow"}.DeadlineTime(time.UTC)
	assert.Error(t, err)
}
