package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	resp := Error("user not found", "uri=/v1/users/42")

	assert.Equal(t, "user not found", resp.Message)
	assert.Equal(t, "uri=/v1/users/42", resp.Details)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Username string `validate:"required,min=3,max=50"`
		Email    string `validate:"required,email"`
	}

	v := validator.New()
	ts := TestStruct{
		Username: "ab",
		Email:    "not-an-email",
	}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors, "uri=/v1/users")

	assert.Contains(t, resp.Message["Username"], "field Username must contain at least 3 characters")
	assert.Contains(t, resp.Message["Email"], "field Email must be a valid email address")
	assert.Equal(t, "uri=/v1/users", resp.Details)
}

func TestValidationErrorRequired(t *testing.T) {
	type TestStruct struct {
		Password string `validate:"required"`
	}

	v := validator.New()
	ts := TestStruct{}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors, "uri=/v1/users")

	assert.Contains(t, resp.Message["Password"], "field Password is a required field")
}

func TestFieldError(t *testing.T) {
	resp := FieldError("password", "password must contain at least one letter and one digit", "uri=/v1/users")

	assert.Equal(t, []string{"password must contain at least one letter and one digit"}, resp.Message["password"])
	assert.False(t, resp.Timestamp.IsZero())
}
