package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInstitutionalEmail(t *testing.T) {
	assert.True(t, IsInstitutionalEmail("jdoe@pfw.edu"))
	assert.True(t, IsInstitutionalEmail("jdoe@purdue.edu"))
	assert.False(t, IsInstitutionalEmail("jdoe@gmail.com"))
	assert.False(t, IsInstitutionalEmail("jdoe@pfw.edu.evil.com"))
}

func TestLowercaseEmail(t *testing.T) {
	assert.Equal(t, "jdoe@pfw.edu", LowercaseEmail("  JDoe@PFW.edu "))
}

func TestEmailLocalPart(t *testing.T) {
	assert.Equal(t, "jdoe", EmailLocalPart("jdoe@pfw.edu"))
	assert.Equal(t, "no-at-sign", EmailLocalPart("no-at-sign"))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Count *int   `validate:"required,min=1,max=5"`
	}

	one := 1
	assert.NoError(t, ValidateStruct(&payload{Name: "x", Count: &one}))
	assert.Error(t, ValidateStruct(&payload{Count: &one}))
	assert.Error(t, ValidateStruct(&payload{Name: "x"}))

	six := 6
	assert.Error(t, ValidateStruct(&payload{Name: "x", Count: &six}))
}
