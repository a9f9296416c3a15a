// Package adapters provides implementations of application adapter interfaces.
package adapters

import (
	"time"

	"github.com/budgeteur/backend/internal/application/adapter"
)

// systemClock reads the wall clock.
type systemClock struct{}

// NewSystemClock returns an adapter.Clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current UTC time.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
