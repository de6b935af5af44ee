package recommender

// phase tracks the engine's two-phase ingest-then-run lifecycle. Any
// out-of-order or repeated call fails with a sequencing error.
type phase int

const (
	phaseNew phase = iota
	phaseProgramFed
	phaseCapacityFed
	phaseDone
)

// location carries optional coordinates; ok is false when either
// component is missing, which makes distances indeterminate.
type location struct {
	lat, lon float64
	ok       bool
}

func newLocation(lat, lon float64) location {
	return location{lat: lat, lon: lon, ok: lat != 0 && lon != 0}
}

type siteState struct {
	loc location
}

type activityState struct {
	id             string
	projectID      string
	siteID         string
	scope          string
	certifications []string
	skills         []string
	priority       int
	capacity       int
	start          string
	end            string
}

type crewState struct {
	id             string
	certifications []string
	skills         []string
	loc            location
	calendar       Calendar
}

// companyState is the mutable per-company allocation state: the
// aggregated calendar is decremented in lockstep with crew calendars
// and the allocated counter feeds fair-share remainders and the final
// statistics.
type companyState struct {
	id                   string
	loc                  location
	scopes               []string
	skills               []string
	certifications       []string
	activitiesPercentage int
	crewOrder            []string
	crews                map[string]*crewState
	calendar             Calendar
	allocated            float64
}

// jobRef is one entry of the priority-ordered job queue.
type jobRef struct {
	id    string
	start string
}

// jobRequirement is the concrete demand of one job: its eligible
// workdays and the resulting total-capacity target.
type jobRequirement struct {
	activityID string
	perDay     float64
	days       []string
	target     float64
}
