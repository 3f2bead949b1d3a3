package domain

import "time"

// IsBirthday reports whether today is the anniversary of birthDate: month and
// day must both match, the year is ignored. The comparison uses whatever
// calendar date the caller passes as "today", so timezone handling is the
// caller's concern.
//
// A February 29 birth date matches only on February 29, i.e. the greeting
// fires only in leap years.
func IsBirthday(birthDate Date, today time.Time) bool {
	return birthDate.Month() == today.Month() && birthDate.Day() == today.Day()
}
