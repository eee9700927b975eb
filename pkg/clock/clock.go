// Package clock renders the timestamps persisted by the HRM API. Every stamp
// is taken in one fixed offset (UTC+7 by default) regardless of server locale.
package clock

import (
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/hrm-backend/pkg/config"
)

const (
	stampLayout = "2006-01-02T15:04:05.000000"
	timeLayout  = "15:04:05"
)

type Clock struct {
	loc     *time.Location
	legacyZ bool
	now     func() time.Time
}

type Option func(*Clock)

// WithNow overrides the instant source, used by tests.
func WithNow(fn func() time.Time) Option {
	return func(c *Clock) {
		if fn != nil {
			c.now = fn
		}
	}
}

func New(cfg config.ClockConfig, opts ...Option) *Clock {
	offset := cfg.OffsetHours * int(time.Hour/time.Second)
	c := &Clock{
		loc:     time.FixedZone(fmt.Sprintf("UTC%+d", cfg.OffsetHours), offset),
		legacyZ: cfg.LegacyZ,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the current instant in the configured zone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// UTC returns the current instant in UTC; used for instants that are compared.
func (c *Clock) UTC() time.Time {
	return c.now().UTC()
}

// Stamp renders t as local wall time with microseconds. In legacy mode the
// suffix is a literal Z even though the wall time is not UTC.
func (c *Clock) Stamp(t time.Time) string {
	local := t.In(c.loc)
	if c.legacyZ {
		return local.Format(stampLayout) + "Z"
	}
	return local.Format(stampLayout + "-07:00")
}

func (c *Clock) NowStamp() string {
	return c.Stamp(c.now())
}

// SplitStamp returns the date and HH:MM:SS portions of a stamp.
func SplitStamp(stamp string) (string, string) {
	date, rest, found := strings.Cut(stamp, "T")
	if !found {
		return date, ""
	}
	if len(rest) >= len(timeLayout) {
		return date, rest[:len(timeLayout)]
	}
	return date, rest
}
