package utilities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrettyDate_KnownMoment(t *testing.T) {
	// 2020-01-01T00:00:00Z
	ts := time.UnixMilli(1577836800000)
	assert.Equal(t, "Wednesday, January 1 - 2020", PrettyDate(ts))
}

func TestPrettyDate_IgnoresLocation(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	local := time.Date(2019, time.December, 31, 16, 0, 0, 0, loc) // same instant as above
	assert.Equal(t, "Wednesday, January 1 - 2020", PrettyDate(local))
}

func TestPrettyDate_EndOfYear(t *testing.T) {
	ts := time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "Sunday, December 31 - 2023", PrettyDate(ts))
}
