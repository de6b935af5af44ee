package recommender

import (
	"fmt"
	"regexp"
	"time"

	"github.com/teambition/rrule-go"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseDate validates that a date string matches the strict YYYY-MM-DD
// pattern and parses to a real calendar date.
func parseDate(value string) (time.Time, error) {
	if !datePattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("date %q does not match yyyy-mm-dd", value)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// workdays expands an inclusive date range into the activity's eligible
// workdays: every day from start to end, minus weekends when
// excludeWeekends is set, minus the explicitly excluded dates.
func workdays(start, end time.Time, excludeWeekends bool, excluded map[string]bool) ([]string, error) {
	if start.After(end) {
		return nil, fmt.Errorf("incorrect date range: %s is after %s",
			start.Format(dateLayout), end.Format(dateLayout))
	}

	opt := rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
		Until:   end,
	}
	if excludeWeekends {
		opt.Byweekday = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build workday rule: %w", err)
	}

	var days []string
	for _, d := range rule.All() {
		day := d.Format(dateLayout)
		if excluded[day] {
			continue
		}
		days = append(days, day)
	}

	return days, nil
}
