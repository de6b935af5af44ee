package recommender

// Calendar is a date-indexed remaining-capacity ledger for one crew or
// company. Keys are YYYY-MM-DD dates; values only ever decrease during
// a run and never drop below zero.
type Calendar map[string]float64

// Add accumulates quantity onto a date. Used only during ingestion;
// multiple capacity rows for the same date sum.
func (c Calendar) Add(date string, quantity float64) {
	c[date] += quantity
}

// Available sums the remaining capacity over the given days. Days with
// no entry contribute zero.
func (c Calendar) Available(days []string) float64 {
	var total float64
	for _, day := range days {
		total += c[day]
	}
	return total
}

// window is the contiguous span between the first and last day an
// assignee contributed capacity to a job. The zero value means the
// assignee never contributed.
type window struct {
	start string
	end   string
}

func (w window) isSet() bool {
	return w.start != "" && w.end != ""
}

func (w *window) mark(day string) {
	if w.start == "" {
		w.start = day
	}
	w.end = day
}

// consumeCompany draws capacity for one job directly from a company
// calendar, day by day, capping each day at the activity's per-day
// quantity. It mutates the calendar and returns the consumption window.
// The day loop stops as soon as the requirement is met.
func consumeCompany(cal Calendar, days []string, target, perDay float64) window {
	var w window
	remaining := target

	for _, day := range days {
		daily := cal[day]
		if daily > 0 && remaining > 0 {
			w.mark(day)

			take := perDay
			if daily < perDay {
				take = daily
			}
			remaining -= take
			cal[day] = daily - take
		}

		if remaining <= 0 {
			break
		}
	}

	return w
}
