package clock

import (
	"time"

	"hotelbook/shared/timezone"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return timezone.Now()
}

// Mock is a settable clock for tests.
type Mock struct {
	current time.Time
}

func NewMock(t time.Time) *Mock {
	return &Mock{current: t}
}

func (m *Mock) Now() time.Time {
	return m.current
}

func (m *Mock) Set(t time.Time) {
	m.current = t
}

func (m *Mock) Add(d time.Duration) {
	m.current = m.current.Add(d)
}
