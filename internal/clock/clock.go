package clock

import "time"

// Clock is injected everywhere "today" matters, so date rules can be
// tested with a fixed time.
type Clock interface {
	Now() time.Time
}

type UTC struct{}

func (UTC) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same UTC calendar date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// BeforeDate reports whether t's UTC date is earlier than ref's.
func BeforeDate(t, ref time.Time) bool {
	return DateOf(t).Before(DateOf(ref))
}
