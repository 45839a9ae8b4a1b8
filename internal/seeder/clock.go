package seeder

import (
	"time"

	"github.com/samber/lo"
)

// systemClock reads wall clock in UTC. Timestamps are unix milliseconds,
// so runs started in the same second get distinct versions.
type systemClock struct{}

func (c systemClock) Timestamp() int64 {
	return c.Now().UnixMilli()
}

func (systemClock) Now() *time.Time {
	return lo.ToPtr(time.Now().UTC())
}
