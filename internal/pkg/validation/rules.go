package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Cedula: 8 to 10 numeric digits
	CedulaPattern = `^\d{8,10}$`

	// Course code: three uppercase letters followed by three digits, e.g. MAT101
	CourseCodePattern = `^[A-Z]{3}\d{3}$`

	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Schedule min length after trimming
	ScheduleMinLength = 5
)

// Bounds for numeric academic fields
const (
	SemesterMin = 1
	SemesterMax = 12
	CreditsMin  = 1
	CreditsMax  = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Cedula     *regexp.Regexp
	CourseCode *regexp.Regexp
	Email      *regexp.Regexp
}{
	Cedula:     regexp.MustCompile(CedulaPattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
	Email:      regexp.MustCompile(EmailPattern),
}

// IsValidCedula reports whether the cedula is 8-10 numeric digits.
func IsValidCedula(cedula string) bool {
	return CompiledPatterns.Cedula.MatchString(cedula)
}

// IsValidCourseCode reports whether the code matches the AAA111 format.
func IsValidCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(code)
}

// IsValidEmail reports whether the address is syntactically valid.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidSemester reports whether the semester is within [1,12].
func IsValidSemester(semester int) bool {
	return semester >= SemesterMin && semester <= SemesterMax
}

// IsValidCredits reports whether the credit count is within [1,6].
func IsValidCredits(credits int) bool {
	return credits >= CreditsMin && credits <= CreditsMax
}

// NormalizeSchedule trims and collapses internal whitespace so that two
// spellings of the same time slot compare equal.
func NormalizeSchedule(schedule string) string {
	return strings.Join(strings.Fields(schedule), " ")
}

// IsValidSchedule reports whether the normalized schedule meets the minimum length.
func IsValidSchedule(schedule string) bool {
	return len(NormalizeSchedule(schedule)) >= ScheduleMinLength
}

// SchedulesCollide reports whether two schedules occupy the same time slot.
// Slot equality is the conflict model: comparison is whitespace-normalized
// and case-insensitive.
func SchedulesCollide(a, b string) bool {
	return strings.EqualFold(NormalizeSchedule(a), NormalizeSchedule(b))
}
