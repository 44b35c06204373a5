package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

var refNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestParseTimestamp(t *testing.T) {
	want := time.Unix(1700000000, 0)

	seconds, err := ParseTimestamp("1700000000")
	require.NoError(t, err)
	assert.True(t, want.Equal(seconds))

	millis, err := ParseTimestamp(" 1700000000000 ")
	require.NoError(t, err)
	assert.True(t, want.Equal(millis))

	fractional, err := ParseTimestamp("1700000000.5")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000500), fractional.UnixMilli())
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, raw := range []string{"", "  ", "yesterday", "NaN", "Inf", "1e20", "-1e20", "9.3e18"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseTimestamp(raw)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestFormatAbsolute(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC)

	assert.Equal(t, "2024-05-01 09:05", FormatAbsolute(ts, "en"))
	assert.Equal(t, "2024-05-01 09:05", FormatAbsolute(ts, ""))
	assert.Equal(t, "01.05.2024 09:05", FormatAbsolute(ts, "de"))
	assert.Equal(t, "01.05.2024 09:05", FormatAbsolute(ts, "de-AT"))
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "0m"},
		{5 * time.Minute, "5m"},
		{2 * time.Hour, "2h 0m"},
		{27*time.Hour + 5*time.Minute, "1d 3h 5m"},
		{24*time.Hour + 5*time.Minute, "1d 5m"},
		{-90 * time.Minute, "1h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.d))
		})
	}
}

func TestFormatRelative_Past(t *testing.T) {
	day := 24 * time.Hour
	tests := []struct {
		ago time.Duration
		en  string
		de  string
	}{
		{30 * time.Minute, "in the last hour", "in der letzten Stunde"},
		{5 * time.Hour, "in the last 24h", "in den letzten 24h"},
		{30 * time.Hour, "yesterday", "gestern"},
		{3 * day, "about 3 days ago", "vor etwa 3 Tagen"},
		{8 * day, "about a week ago", "vor etwa einer Woche"},
		{15 * day, "about 2 weeks ago", "vor etwa 2 Wochen"},
		{22 * day, "about 3 weeks ago", "vor etwa 3 Wochen"},
		{30 * day, "about a month ago", "vor etwa einem Monat"},
		{60 * day, "about 2 months ago", "vor etwa 2 Monaten"},
		{200 * day, "about 7 months ago", "vor etwa 7 Monaten"},
		{400 * day, "about a year ago", "vor etwa einem Jahr"},
		{800 * day, "about 2 years ago", "vor etwa 2 Jahren"},
	}

	for _, tt := range tests {
		t.Run(tt.en, func(t *testing.T) {
			ts := refNow.Add(-tt.ago)
			assert.Equal(t, tt.en, FormatRelative(ts, refNow, "en"))
			assert.Equal(t, tt.de, FormatRelative(ts, refNow, "de"))
		})
	}
}

func TestFormatRelative_Future(t *testing.T) {
	day := 24 * time.Hour
	tests := []struct {
		ahead time.Duration
		en    string
		de    string
	}{
		{30 * time.Minute, "within the next hour", "innerhalb der nächsten Stunde"},
		{30 * time.Hour, "tomorrow", "morgen"},
		{3 * day, "in about 3 days", "in etwa 3 Tagen"},
		{60 * day, "in about 2 months", "in etwa 2 Monaten"},
		{800 * day, "in about 2 years", "in etwa 2 Jahren"},
	}

	for _, tt := range tests {
		t.Run(tt.en, func(t *testing.T) {
			ts := refNow.Add(tt.ahead)
			assert.Equal(t, tt.en, FormatRelative(ts, refNow, "en"))
			assert.Equal(t, tt.de, FormatRelative(ts, refNow, "de"))
		})
	}
}

func TestTooltipText(t *testing.T) {
	past := refNow.Add(-(27*time.Hour + 5*time.Minute))
	future := refNow.Add(2 * time.Hour)

	assert.Equal(t, "2024-06-14 08:55 • 1d 3h 5m ago", TooltipText(past, refNow, "en"))
	assert.Equal(t, "14.06.2024 08:55 • vor 1T 3h 5m", TooltipText(past, refNow, "de"))
	assert.Equal(t, "2024-06-15 14:00 • in 2h 0m", TooltipText(future, refNow, "en"))
	assert.Equal(t, "15.06.2024 14:00 • in 2h 0m", TooltipText(future, refNow, "de"))
}

func TestDescribeTimestamp(t *testing.T) {
	ts := refNow.Add(-3 * 24 * time.Hour)
	raw := strconv.FormatInt(ts.Unix(), 10)

	got, err := DescribeTimestamp(raw, refNow, "en")

	require.NoError(t, err)
	assert.True(t, ts.Equal(got.Time))
	assert.Equal(t, "about 3 days ago", got.Text)
	assert.Equal(t, "2024-06-12 12:00 • 3d 0m ago", got.Tooltip)
}

func TestDescribeTimestamp_Invalid(t *testing.T) {
	_, err := DescribeTimestamp("soon", refNow, "en")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
