package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/angelmondragon/hrm-backend/pkg/config"
)

func fixed() time.Time {
	return time.Date(2024, 3, 1, 20, 15, 30, 123456000, time.UTC)
}

func TestStampLegacyZ(t *testing.T) {
	c := New(config.ClockConfig{OffsetHours: 7, LegacyZ: true}, WithNow(fixed))

	assert.Equal(t, "2024-03-02T03:15:30.123456Z", c.NowStamp())
	date, _ := SplitStamp(c.NowStamp())
	assert.Equal(t, "2024-03-02", date)
}

func TestStampProperOffset(t *testing.T) {
	c := New(config.ClockConfig{OffsetHours: 7, LegacyZ: false}, WithNow(fixed))

	stamp := c.NowStamp()
	assert.Equal(t, "2024-03-02T03:15:30.123456+07:00", stamp)

	parsed, err := time.Parse(time.RFC3339Nano, stamp)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(fixed()))
}

func TestNowIsOffsetButSameInstant(t *testing.T) {
	c := New(config.ClockConfig{OffsetHours: 7, LegacyZ: true}, WithNow(fixed))

	now := c.Now()
	_, offset := now.Zone()
	assert.Equal(t, 7*3600, offset)
	assert.True(t, now.Equal(c.UTC()))
	assert.Equal(t, time.UTC, c.UTC().Location())
}

func TestSplitStamp(t *testing.T) {
	date, tm := SplitStamp("2024-03-02T03:15:30.123456Z")
	assert.Equal(t, "2024-03-02", date)
	assert.Equal(t, "03:15:30", tm)

	date, tm = SplitStamp("2024-03-02T03:15:30+07:00")
	assert.Equal(t, "2024-03-02", date)
	assert.Equal(t, "03:15:30", tm)

	date, tm = SplitStamp("2024-03-02")
	assert.Equal(t, "2024-03-02", date)
	assert.Empty(t, tm)
}
