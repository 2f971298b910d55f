// Package biztime provides the clock and business-timezone boundaries used by
// usage accounting. All storage uses UTC; the business timezone only decides
// where a day, week or month starts.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when the configuration leaves server.timezone empty.
const DefaultTimezone = "UTC"

var (
	bizLocation *time.Location
	locMu       sync.RWMutex
)

// Init sets the business timezone. It may be called again (tests do).
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	locMu.Lock()
	bizLocation = loc
	locMu.Unlock()
	return nil
}

// Location returns the business timezone, UTC if Init was never called.
func Location() *time.Location {
	locMu.RLock()
	defer locMu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Clock abstracts the current time so that durations can be tested.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return NowUTC() }

// FixedClock is a manually advanced clock.
type FixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t.UTC()}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// StartOfDayUTC returns midnight of t's business day, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// StartOfWeekUTC returns Monday 00:00 of t's business week, in UTC.
func StartOfWeekUTC(t time.Time) time.Time {
	b := t.In(Location())
	offset := (int(b.Weekday()) + 6) % 7
	day := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location())
	return day.AddDate(0, 0, -offset).UTC()
}

// StartOfMonthUTC returns the first instant of t's business month, in UTC.
func StartOfMonthUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, Location()).UTC()
}
