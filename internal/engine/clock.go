package engine

import (
	"time"

	"github.com/google/uuid"
)

// IdentityClock provides unique identifiers and wall-clock time. Injected
// so tests can supply deterministic identities and a fixed clock.
type IdentityClock interface {
	NewID() string
	Now() time.Time
}

type systemClock struct{}

func (systemClock) NewID() string  { return uuid.NewString() }
func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() IdentityClock {
	return systemClock{}
}
