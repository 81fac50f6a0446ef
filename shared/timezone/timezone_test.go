package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tandoor/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2026-09-15")

	assert.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())
	assert.Equal(t, 15, parsed.Day())

	_, err = timezone.Parse("2006-01-02", "15/09/2026")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	moment := time.Date(2026, 9, 15, 19, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-09-15", timezone.Format(moment, "2006-01-02"))
}

func TestParseFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2026-09-15")

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-15", timezone.Format(parsed, "2006-01-02"))
}
