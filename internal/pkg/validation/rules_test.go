package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRollNumber(t *testing.T) {
	valid := []string{
		"2025BTCS282",
		"2024BTAI001",
		"1999BTCS999",
	}
	for _, roll := range valid {
		assert.True(t, IsValidRollNumber(roll), "expected %q to be valid", roll)
	}

	invalid := []string{
		"",
		"25BTCS282",      // short admission year
		"2025BTME282",    // branch outside CS/AI
		"2025btcs282",    // lower case
		"2025BTCS28",     // short serial
		"2025BTCS2820",   // long serial
		" 2025BTCS282",   // leading space
		"2025BTCS282 ",   // trailing space
		"2025-BTCS-282",  // separators
		"2025BTCSABC",    // non-numeric serial
	}
	for _, roll := range invalid {
		assert.False(t, IsValidRollNumber(roll), "expected %q to be invalid", roll)
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2026-09-01"))
	assert.False(t, IsValidDate("2026/09/01"))
	assert.False(t, IsValidDate("01-09-2026"))
	assert.False(t, IsValidDate("2026-9-1"))
}
