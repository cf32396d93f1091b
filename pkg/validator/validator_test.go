package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&loginForm{Username: "priya", Password: "pass123"}))

	err := v.Validate(&loginForm{Username: "priya"})
	assert.Error(t, err)
	assert.Equal(t, "password: required", Describe(err))

	err = v.Validate(&loginForm{})
	assert.Equal(t, "username: required, password: required", Describe(err))
}

func TestDescribe_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
