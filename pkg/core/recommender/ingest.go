package recommender

import (
	"fmt"
	"sort"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
)

// FeedProgramPlan validates and ingests the program-side input graph:
// uniqueness of site/project/activity ids, referential integrity
// between them, strict date validation, and priority/capacity
// normalization. It builds the job queue ordered by priority descending
// and, within equal priority, by start date ascending (stable).
//
// Any violation is fatal: the engine is left unusable and a fresh
// instance must be created.
func (e *Engine) FeedProgramPlan(plan *model.ProgramPlan) error {
	if e.phase != phaseNew {
		return fmt.Errorf("program plan was already fed")
	}
	if plan == nil {
		return fmt.Errorf("program plan is required")
	}
	if plan.ProgramID == "" {
		return fmt.Errorf("programId is missing")
	}
	if plan.CustomerID == "" {
		return fmt.Errorf("customerId is missing")
	}

	e.programID = plan.ProgramID
	e.customerID = plan.CustomerID

	for _, site := range plan.Sites {
		if _, exists := e.sites[site.SiteID]; exists {
			return fmt.Errorf("duplicate site id %q: site ids must be unique", site.SiteID)
		}
		e.sites[site.SiteID] = &siteState{loc: newLocation(site.Latitude, site.Longitude)}
	}

	for _, project := range plan.Projects {
		if _, exists := e.projects[project.ProjectID]; exists {
			return fmt.Errorf("duplicate project id %q: project ids must be unique", project.ProjectID)
		}
		if _, known := e.sites[project.SiteID]; !known {
			return fmt.Errorf("project %q references unknown site %q", project.ProjectID, project.SiteID)
		}
		e.projects[project.ProjectID] = project.SiteID
	}

	var high, important, normal []jobRef

	for _, activity := range plan.Activities {
		if _, exists := e.activities[activity.ActivityID]; exists {
			return fmt.Errorf("duplicate activity id %q: activity ids must be unique", activity.ActivityID)
		}
		if _, known := e.sites[activity.SiteID]; !known {
			return fmt.Errorf("activity %q references unknown site %q", activity.ActivityID, activity.SiteID)
		}
		projectSite, known := e.projects[activity.ProjectID]
		if !known {
			return fmt.Errorf("activity %q references unknown project %q", activity.ActivityID, activity.ProjectID)
		}
		if projectSite != activity.SiteID {
			return fmt.Errorf("activity %q site %q does not match project %q site %q",
				activity.ActivityID, activity.SiteID, activity.ProjectID, projectSite)
		}

		start, err := parseDate(activity.ActivityStartDate)
		if err != nil {
			return fmt.Errorf("activity %q start date: %w", activity.ActivityID, err)
		}
		end, err := parseDate(activity.ActivityEndDate)
		if err != nil {
			return fmt.Errorf("activity %q end date: %w", activity.ActivityID, err)
		}
		if start.After(end) {
			return fmt.Errorf("activity %q has inverted date range %s..%s",
				activity.ActivityID, activity.ActivityStartDate, activity.ActivityEndDate)
		}

		capacity := normalizeOneToThree(activity.Capacity)
		priority := normalizeOneToThree(activity.Priority)

		e.activities[activity.ActivityID] = &activityState{
			id:             activity.ActivityID,
			projectID:      activity.ProjectID,
			siteID:         activity.SiteID,
			scope:          activity.Scope,
			certifications: activity.Certifications,
			skills:         activity.Skills,
			priority:       priority,
			capacity:       capacity,
			start:          activity.ActivityStartDate,
			end:            activity.ActivityEndDate,
		}

		e.requiredCapacity += float64(capacity)

		ref := jobRef{id: activity.ActivityID, start: activity.ActivityStartDate}
		switch priority {
		case model.PriorityHigh:
			high = append(high, ref)
		case model.PriorityImportant:
			important = append(important, ref)
		default:
			normal = append(normal, ref)
		}
	}

	// YYYY-MM-DD sorts lexicographically in date order.
	byStart := func(refs []jobRef) {
		sort.SliceStable(refs, func(i, j int) bool { return refs[i].start < refs[j].start })
	}
	byStart(high)
	byStart(important)
	byStart(normal)

	e.queue = append(e.queue, high...)
	e.queue = append(e.queue, important...)
	e.queue = append(e.queue, normal...)

	e.phase = phaseProgramFed
	return nil
}

// FeedCrewCapacities validates and ingests the supply-side input graph.
// Every company must carry exactly one allocation whose programId
// matches the fed program; crew ids must be unique and reference known
// companies; every capacity row must reference a known company+crew
// pair. Crew calendars aggregate into company calendars, and the global
// provided-capacity counter accumulates every (clamped) quantity.
//
// Must be called after FeedProgramPlan.
func (e *Engine) FeedCrewCapacities(info *model.CapacityInfo) error {
	if e.phase == phaseNew {
		return fmt.Errorf("program plan must be fed before crew capacities")
	}
	if e.phase != phaseProgramFed {
		return fmt.Errorf("crew capacities were already fed")
	}
	if info == nil {
		return fmt.Errorf("capacity info is required")
	}
	if info.CapacityInfoID == "" {
		return fmt.Errorf("capacityInfoId is missing")
	}
	if info.CreatedAt == "" {
		return fmt.Errorf("capacity info createdAt is missing")
	}

	e.capacityInfoID = info.CapacityInfoID
	e.capacityCreatedAt = info.CreatedAt

	for _, company := range info.Companies {
		if _, exists := e.companies[company.CompanyID]; exists {
			return fmt.Errorf("duplicate company id %q: company ids must be unique", company.CompanyID)
		}

		allocation, err := findAllocation(info.Allocations, company.CompanyID)
		if err != nil {
			return err
		}
		if allocation.ProgramID != e.programID {
			return fmt.Errorf("allocation for company %q references program %q, expected %q",
				company.CompanyID, allocation.ProgramID, e.programID)
		}

		e.companyOrder = append(e.companyOrder, company.CompanyID)
		e.companies[company.CompanyID] = &companyState{
			id:                   company.CompanyID,
			loc:                  newLocation(company.Latitude, company.Longitude),
			scopes:               normalizeScopes(allocation.Scopes),
			activitiesPercentage: normalizePercentage(allocation.ActivitiesPercentage),
			crews:                make(map[string]*crewState),
			calendar:             make(Calendar),
		}
	}

	seenCrews := make(map[string]bool)
	for _, crew := range info.Crews {
		if crew.CrewID == "" {
			return fmt.Errorf("crew of company %q is missing a crewId", crew.CompanyID)
		}
		if seenCrews[crew.CrewID] {
			return fmt.Errorf("duplicate crew id %q: crew ids must be unique", crew.CrewID)
		}
		seenCrews[crew.CrewID] = true

		company, known := e.companies[crew.CompanyID]
		if !known {
			return fmt.Errorf("crew %q references unknown company %q", crew.CrewID, crew.CompanyID)
		}

		company.crewOrder = append(company.crewOrder, crew.CrewID)
		company.crews[crew.CrewID] = &crewState{
			id:             crew.CrewID,
			certifications: crew.Certifications,
			skills:         crew.Skills,
			loc:            newLocation(crew.Latitude, crew.Longitude),
			calendar:       make(Calendar),
		}

		// A company's skill and certification sets are the union over
		// its crews.
		company.skills = append(company.skills, crew.Skills...)
		company.certifications = append(company.certifications, crew.Certifications...)
	}

	for i, entry := range info.Capacities {
		company, known := e.companies[entry.CompanyID]
		if !known {
			return fmt.Errorf("capacity row %d references unknown company %q", i, entry.CompanyID)
		}
		crew, known := company.crews[entry.CrewID]
		if !known {
			return fmt.Errorf("capacity row %d references unknown crew %q of company %q",
				i, entry.CrewID, entry.CompanyID)
		}

		if _, err := parseDate(entry.WorkDate); err != nil {
			return fmt.Errorf("capacity row %d: %w", i, err)
		}

		quantity := normalizeQuantity(entry.Capacity)
		e.providedCapacity += quantity
		crew.calendar.Add(entry.WorkDate, quantity)
		company.calendar.Add(entry.WorkDate, quantity)
	}

	e.phase = phaseCapacityFed
	return nil
}

// findAllocation returns the single allocation record for a company.
// Zero or several records are both ingestion errors.
func findAllocation(allocations []model.Allocation, companyID string) (*model.Allocation, error) {
	var found *model.Allocation
	for i := range allocations {
		if allocations[i].CompanyID != companyID {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("company %q has more than one allocation", companyID)
		}
		found = &allocations[i]
	}
	if found == nil {
		return nil, fmt.Errorf("no allocation provided for company %q", companyID)
	}
	return found, nil
}

// normalizeOneToThree clamps activity priority and per-day capacity to
// the valid 1..3 range; anything else defaults to 1.
func normalizeOneToThree(value int) int {
	if value >= 1 && value <= 3 {
		return value
	}
	return 1
}

// normalizePercentage clamps a target share to 1..100, defaulting to
// 100 for missing or out-of-range values.
func normalizePercentage(value int) int {
	if value >= 1 && value <= 100 {
		return value
	}
	return 100
}

// normalizeQuantity clamps malformed or negative supply quantities to 0.
func normalizeQuantity(value float64) float64 {
	if value > 0 {
		return value
	}
	return 0
}

// normalizeScopes defaults an empty scope set to the wildcard.
func normalizeScopes(scopes []string) []string {
	if len(scopes) > 0 {
		return scopes
	}
	return []string{model.ScopeAny}
}
