package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Roll number pattern: admission year, "BT", branch code (CS or AI), serial
	RollNumberPattern = `^\d{4}BT(CS|AI)\d{3}$`

	// Leave dates travel as plain calendar days
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	RollNumber *regexp.Regexp
	Date       *regexp.Regexp
}{
	RollNumber: regexp.MustCompile(RollNumberPattern),
	Date:       regexp.MustCompile(DatePattern),
}

// IsValidRollNumber reports whether s is a well-formed student roll number.
func IsValidRollNumber(s string) bool {
	return CompiledPatterns.RollNumber.MatchString(s)
}

// IsValidDate reports whether s is a YYYY-MM-DD calendar day.
func IsValidDate(s string) bool {
	return CompiledPatterns.Date.MatchString(s)
}
