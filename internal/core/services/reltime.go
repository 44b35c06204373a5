package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

// secondsCutoff separates second timestamps from millisecond ones.
const secondsCutoff = 1e12

var elapsedDays = regexp.MustCompile(`(\d+)d`)

// ParseTimestamp parses a numeric epoch timestamp. Values below 1e12 are
// taken as seconds, larger values as milliseconds.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp: %w", domain.ErrInvalidInput)
	}

	ts, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(ts) || math.IsInf(ts, 0) {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", raw, domain.ErrInvalidInput)
	}

	if ts < secondsCutoff {
		ts *= 1000
	}
	if ts >= math.MaxInt64 || ts < math.MinInt64 {
		return time.Time{}, fmt.Errorf("timestamp %q out of range: %w", raw, domain.ErrInvalidInput)
	}
	return time.UnixMilli(int64(ts)), nil
}

// isGerman reports whether locale selects German phrasing.
func isGerman(locale string) bool {
	return strings.HasPrefix(strings.ToLower(locale), "de")
}

// FormatAbsolute renders t in its own location: dd.MM.yyyy HH:mm for
// German locales, yyyy-MM-dd HH:mm otherwise.
func FormatAbsolute(t time.Time, locale string) string {
	if isGerman(locale) {
		return t.Format("02.01.2006 15:04")
	}
	return t.Format("2006-01-02 15:04")
}

// FormatElapsed renders the absolute value of d in whole minutes as
// "Nd Nh Nm". Zero days and hours are omitted; minutes always appear.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	minutes := int64(d / time.Minute)
	days := minutes / (60 * 24)
	hours := (minutes - days*24*60) / 60
	mins := minutes - days*24*60 - hours*60

	parts := make([]string, 0, 3)
	if days != 0 {
		parts = append(parts, strconv.FormatInt(days, 10)+"d")
	}
	if hours != 0 {
		parts = append(parts, strconv.FormatInt(hours, 10)+"h")
	}
	parts = append(parts, strconv.FormatInt(mins, 10)+"m")
	return strings.Join(parts, " ")
}

// phrases holds the wording of one language and direction.
type phrases struct {
	hour, day, oneDay          string
	days                       string // contains %d
	week, twoWeeks, threeWeeks string
	month, months              string // months contains %d
	year, years                string // years contains %d
}

var (
	pastEN = phrases{
		hour: "in the last hour", day: "in the last 24h", oneDay: "yesterday",
		days: "about %d days ago", week: "about a week ago",
		twoWeeks: "about 2 weeks ago", threeWeeks: "about 3 weeks ago",
		month: "about a month ago", months: "about %d months ago",
		year: "about a year ago", years: "about %d years ago",
	}
	pastDE = phrases{
		hour: "in der letzten Stunde", day: "in den letzten 24h", oneDay: "gestern",
		days: "vor etwa %d Tagen", week: "vor etwa einer Woche",
		twoWeeks: "vor etwa 2 Wochen", threeWeeks: "vor etwa 3 Wochen",
		month: "vor etwa einem Monat", months: "vor etwa %d Monaten",
		year: "vor etwa einem Jahr", years: "vor etwa %d Jahren",
	}
	futureEN = phrases{
		hour: "within the next hour", day: "within the next 24h", oneDay: "tomorrow",
		days: "in about %d days", week: "in about a week",
		twoWeeks: "in about 2 weeks", threeWeeks: "in about 3 weeks",
		month: "in about a month", months: "in about %d months",
		year: "in about a year", years: "in about %d years",
	}
	futureDE = phrases{
		hour: "innerhalb der nächsten Stunde", day: "innerhalb der nächsten 24h", oneDay: "morgen",
		days: "in etwa %d Tagen", week: "in etwa einer Woche",
		twoWeeks: "in etwa 2 Wochen", threeWeeks: "in etwa 3 Wochen",
		month: "in etwa einem Monat", months: "in etwa %d Monaten",
		year: "in etwa einem Jahr", years: "in etwa %d Jahren",
	}
)

// FormatRelative describes t relative to now in coarse buckets
// ("yesterday", "about 3 weeks ago", "in about a month").
func FormatRelative(t, now time.Time, locale string) string {
	diffMs := now.Sub(t).Milliseconds()
	future := diffMs < 0
	if diffMs < 0 {
		diffMs = -diffMs
	}
	absHours := diffMs / 3_600_000
	absDays := absHours / 24

	p := pastEN
	switch {
	case future && isGerman(locale):
		p = futureDE
	case future:
		p = futureEN
	case isGerman(locale):
		p = pastDE
	}

	switch {
	case absHours < 1:
		return p.hour
	case absHours < 24:
		return p.day
	case absDays == 1:
		return p.oneDay
	case absDays < 7:
		return fmt.Sprintf(p.days, absDays)
	case absDays < 14:
		return p.week
	case absDays < 21:
		return p.twoWeeks
	case absDays < 28:
		return p.threeWeeks
	case absDays < 45:
		return p.month
	case absDays < 365:
		months := (absDays + 15) / 30
		if months <= 1 {
			return p.month
		}
		return fmt.Sprintf(p.months, months)
	}

	years := (absDays + 182) / 365
	if years <= 1 {
		return p.year
	}
	return fmt.Sprintf(p.years, years)
}

// TooltipText combines the absolute time and the exact elapsed time,
// e.g. "2024-05-01 10:00 • 2d 3h 5m ago".
func TooltipText(t, now time.Time, locale string) string {
	abs := FormatAbsolute(t, locale)
	diff := now.Sub(t)
	elapsed := FormatElapsed(diff)

	if isGerman(locale) {
		german := elapsedDays.ReplaceAllString(elapsed, "${1}T")
		if diff >= 0 {
			return abs + " • vor " + german
		}
		return abs + " • in " + german
	}

	if diff >= 0 {
		return abs + " • " + elapsed + " ago"
	}
	return abs + " • in " + elapsed
}

// RelativeTime is the rendered form of a timestamp.
type RelativeTime struct {
	Time    time.Time `json:"time"`
	Text    string    `json:"text"`
	Tooltip string    `json:"tooltip"`
}

// DescribeTimestamp parses raw and renders it relative to now.
func DescribeTimestamp(raw string, now time.Time, locale string) (RelativeTime, error) {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return RelativeTime{}, err
	}
	t = t.In(now.Location())
	return RelativeTime{
		Time:    t,
		Text:    FormatRelative(t, now, locale),
		Tooltip: TooltipText(t, now, locale),
	}, nil
}
