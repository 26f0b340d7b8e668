package app_errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sheetQuery struct {
	Month  int    `validate:"required,min=1,max=12"`
	Assignee string `validate:"omitempty,uuid"`
}

func TestParseValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(sheetQuery{Month: 13, Assignee: "nope"})
	details := ParseValidationError(err)

	require.Len(t, details, 2)
	assert.Equal(t, "month", details[0].Field)
	assert.Equal(t, "max", details[0].Reason)
	assert.Equal(t, "validation.max", details[0].MessageKey)
	assert.Equal(t, "12", details[0].Params["max"])

	assert.Equal(t, "assignee", details[1].Field)
	assert.Equal(t, "validation.uuid", details[1].MessageKey)
}

func TestParseValidationError_NotAValidationError(t *testing.T) {
	assert.Nil(t, ParseValidationError(assert.AnError))
}
