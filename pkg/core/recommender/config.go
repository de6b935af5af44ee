package recommender

// Config controls how the engine builds workday calendars and which
// eligibility checks apply. The zero value is not useful; start from
// DefaultConfig and override fields as needed.
type Config struct {
	// ExcludeWeekends removes Saturdays and Sundays from every
	// activity's eligible workdays.
	ExcludeWeekends bool

	// ExcludedWorkDates lists YYYY-MM-DD dates removed from every
	// activity's eligible workdays (holidays, shutdowns).
	ExcludedWorkDates []string

	// PermissibleCapacityDiscrepancy is the slack tolerance: a
	// candidate qualifies, and a requirement counts as met, despite a
	// shortfall smaller than this amount.
	PermissibleCapacityDiscrepancy float64

	// CrewRecommended enables crew-level recommendations. When false,
	// recommendations carry the company id in the crew field and
	// capacity is drawn from the company calendar directly.
	CrewRecommended bool

	// ConsiderCrewLocation ranks a company's crews by distance to the
	// activity's site when both have coordinates.
	ConsiderCrewLocation bool

	// ConsiderScopes, ConsiderCertifications and ConsiderSkills toggle
	// the corresponding eligibility checks.
	ConsiderScopes         bool
	ConsiderCertifications bool
	ConsiderSkills         bool

	// CumulativeAllocation accumulates each company's allocated
	// counter across jobs. The historical engine set the counter to
	// the most recent job's total instead, which skews fair-share
	// remainders and statistics toward the last job per company; that
	// behavior remains the default for output parity.
	CumulativeAllocation bool
}

// DefaultConfig returns the engine defaults: weekends excluded, all
// eligibility checks on, crew-level detail on, discrepancy slack of 1.
func DefaultConfig() Config {
	return Config{
		ExcludeWeekends:                true,
		ExcludedWorkDates:              nil,
		PermissibleCapacityDiscrepancy: 1,
		CrewRecommended:                true,
		ConsiderCrewLocation:           true,
		ConsiderScopes:                 true,
		ConsiderCertifications:         true,
		ConsiderSkills:                 true,
		CumulativeAllocation:           false,
	}
}
