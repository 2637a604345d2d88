package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/inkwell/internal/platform/validator"
)

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"Jane.Doe_99-x", true},
		{strings.Repeat("a", 24), true},
		{"ab", false},
		{strings.Repeat("a", 25), false},
		{"has space", false},
		{"émile", false},
		{"semi;colon", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsValidUsername(tt.in))
		})
	}
}

type profileInput struct {
	Username string `json:"username" validate:"username"`
	Name     string `json:"name" validate:"max=80"`
	Title    string `json:"title" validate:"notblank"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	errs, err := validator.Struct(profileInput{Username: "x", Name: strings.Repeat("n", 81), Title: "  "})
	require.NoError(t, err)
	require.Len(t, errs, 3)

	fields := map[string]string{}
	for _, fe := range errs {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, validator.ErrInvalidUsername.Error(), fields["username"])
	assert.Equal(t, "name must be at most 80 characters", fields["name"])
	assert.Equal(t, "title is required", fields["title"])
}

func TestStructValid(t *testing.T) {
	errs, err := validator.Struct(profileInput{Username: "writer", Name: "W", Title: "t"})
	require.NoError(t, err)
	assert.Nil(t, errs)
}
