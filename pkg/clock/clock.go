package clock

import "time"

// Clock Абстракция времени для детерминированных тестов
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func New() Clock { return realClock{} }
