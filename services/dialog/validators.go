package dialog

import (
	"regexp"
	"time"

	"salonbot/utils"

	"go.uber.org/zap"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

// ValidateName accepts alphabetic words separated by single spaces, with no
// leading or trailing whitespace.
func ValidateName(name string) bool {
	return nameRe.MatchString(name)
}

// IsValidEmail applies a permissive shape check: something before an @,
// something after it, and a dot in the domain part.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsWithinWorkingHours reports whether the given ISO-8601 timestamp falls
// inside the [start, end) hour window once converted to the named timezone.
// Unparseable input or an unknown timezone counts as outside.
func IsWithinWorkingHours(dateTime, timezone string, start, end int) bool {
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Warn("Unknown timezone in working-hours check",
			zap.String("timezone", timezone), zap.Error(err))
		return false
	}

	t, err := parseISO(dateTime)
	if err != nil {
		logger.Warn("Unparseable date-time in working-hours check",
			zap.String("dateTime", dateTime), zap.Error(err))
		return false
	}

	hour := t.In(loc).Hour()
	return hour >= start && hour < end
}
