package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("john.smith@example.com"))
	assert.True(t, ValidateEmail("a+b@sub.domain.org"))

	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+15551234567"))
	assert.True(t, ValidatePhone("+1 (555) 123-4567"))
	assert.True(t, ValidatePhone("5551234567"))

	assert.False(t, ValidatePhone("123"))
	assert.False(t, ValidatePhone(""))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+15551234567", FormatPhone("+1 (555) 123-4567"))
	assert.Equal(t, "5551234567", FormatPhone("555.123.4567"))
}

func TestValidateNamePart(t *testing.T) {
	assert.True(t, ValidateNamePart("Smith"))
	assert.True(t, ValidateNamePart("O'Brien"))
	assert.True(t, ValidateNamePart("Ponce de Leon"))

	assert.False(t, ValidateNamePart("J"))
	assert.False(t, ValidateNamePart("Smith42"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", SanitizeString("<script>alert(1)</script>"))
	assert.Equal(t, "plain text", SanitizeString("plain text"))
}
