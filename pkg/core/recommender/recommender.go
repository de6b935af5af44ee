// Package recommender implements the capacity allocation engine: it
// ingests a program plan and a capacity info document, matches
// activities to companies and crews under eligibility and fair-share
// constraints, and produces recommendations plus utilization
// statistics.
//
// The engine is a pure, single-pass computation over its two inputs and
// configuration. It owns all calendars for the duration of one run and
// processes jobs strictly in queue order, so each instance supports
// exactly one run.
package recommender

import (
	"fmt"
	"math"
	"sort"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
)

// Engine drives one recommendation run. Lifecycle:
//
//	New → FeedProgramPlan → FeedCrewCapacities → Recommend
//
// Calling any step out of order, or twice, returns an error.
type Engine struct {
	cfg   Config
	phase phase

	programID  string
	customerID string

	capacityInfoID    string
	capacityCreatedAt string

	// requiredCapacity is the sum of all activities' per-day capacity,
	// the denominator base for fair-share remainders.
	requiredCapacity float64
	providedCapacity float64

	sites      map[string]*siteState
	projects   map[string]string // project id -> site id
	activities map[string]*activityState
	queue      []jobRef

	companyOrder []string
	companies    map[string]*companyState

	excluded map[string]bool
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	excluded := make(map[string]bool, len(cfg.ExcludedWorkDates))
	for _, d := range cfg.ExcludedWorkDates {
		excluded[d] = true
	}

	return &Engine{
		cfg:        cfg,
		sites:      make(map[string]*siteState),
		projects:   make(map[string]string),
		activities: make(map[string]*activityState),
		companies:  make(map[string]*companyState),
		excluded:   excluded,
	}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Recommend runs the per-job allocation loop and returns the
// recommendation list and final statistics. Jobs are processed strictly
// in queue order; later jobs see the calendars depleted by earlier
// ones. A job with no eligible company is silently dropped.
func (e *Engine) Recommend() (*model.RecommendationResult, error) {
	switch e.phase {
	case phaseDone:
		return nil, fmt.Errorf("engine has already run: each instance supports exactly one run")
	case phaseCapacityFed:
		// ready
	default:
		return nil, fmt.Errorf("program plan and crew capacities must both be fed before recommending")
	}
	e.phase = phaseDone

	recommendations := []model.Recommendation{}

	for _, job := range e.queue {
		activity := e.activities[job.id]

		req, err := e.requirementFor(activity)
		if err != nil {
			return nil, fmt.Errorf("activity %q: %w", activity.id, err)
		}

		candidates := e.eligibleCompanies(activity, req)
		companyID := selectCompany(candidates, e.companies, e.requiredCapacity)
		if companyID == "" {
			continue
		}
		company := e.companies[companyID]

		if e.cfg.CrewRecommended {
			crewIDs := e.rankCrews(company, activity, req)
			windows := consumeCrews(company, crewIDs, req.days, req.target)

			for _, crewID := range crewIDs {
				w := windows[crewID]
				if !w.isSet() {
					continue
				}
				recommendations = append(recommendations, model.Recommendation{
					ActivityID: activity.id,
					CompanyID:  companyID,
					CrewID:     crewID,
					SiteID:     activity.siteID,
					ProjectID:  activity.projectID,
					StartDate:  w.start,
					EndDate:    w.end,
				})
			}
		} else {
			w := consumeCompany(company.calendar, req.days, req.target, req.perDay)
			if w.isSet() {
				recommendations = append(recommendations, model.Recommendation{
					ActivityID: activity.id,
					CompanyID:  companyID,
					CrewID:     companyID,
					SiteID:     activity.siteID,
					ProjectID:  activity.projectID,
					StartDate:  w.start,
					EndDate:    w.end,
				})
			}
		}

		// Historical behavior: the counter reflects only the most
		// recent job drawn from this company. See Config.CumulativeAllocation.
		if e.cfg.CumulativeAllocation {
			company.allocated += req.target
		} else {
			company.allocated = req.target
		}
	}

	return &model.RecommendationResult{
		Recommendations: recommendations,
		Statistics:      e.statistics(),
	}, nil
}

// requirementFor computes a job's eligible workdays and total capacity
// target from the activity's date range and the engine configuration.
func (e *Engine) requirementFor(activity *activityState) (jobRequirement, error) {
	start, err := parseDate(activity.start)
	if err != nil {
		return jobRequirement{}, err
	}
	end, err := parseDate(activity.end)
	if err != nil {
		return jobRequirement{}, err
	}

	days, err := workdays(start, end, e.cfg.ExcludeWeekends, e.excluded)
	if err != nil {
		return jobRequirement{}, err
	}

	return jobRequirement{
		activityID: activity.id,
		perDay:     float64(activity.capacity),
		days:       days,
		target:     float64(len(days) * activity.capacity),
	}, nil
}

// eligibleCompanies narrows the company set for one job: every enabled
// certification/skill/scope check must pass, and the company calendar
// must hold enough capacity over the job's eligible days, within the
// permissible discrepancy slack. Companies are visited in the insertion
// order of the capacity document.
func (e *Engine) eligibleCompanies(activity *activityState, req jobRequirement) []string {
	var eligible []string

	for _, id := range e.companyOrder {
		company := e.companies[id]

		if !e.cfg.meetsRequirements(activity, company.certifications, company.skills) {
			continue
		}
		if e.cfg.ConsiderScopes && !scopeSatisfied(activity.scope, company.scopes) {
			continue
		}
		if company.calendar.Available(req.days)+e.cfg.PermissibleCapacityDiscrepancy <= req.target {
			continue
		}

		eligible = append(eligible, id)
	}

	return eligible
}

type crewRank struct {
	id       string
	capacity float64
	distance float64
}

// rankCrews filters a company's crews through the certification/skill
// checks and ranks them by ascending distance to the activity's site.
// When every candidate's distance is indeterminate the ranking falls
// back to descending available capacity. Crews are then accumulated
// greedily until the collected capacity, plus the discrepancy slack,
// meets the job target.
func (e *Engine) rankCrews(company *companyState, activity *activityState, req jobRequirement) []string {
	site := e.sites[activity.siteID]

	var ranked []crewRank
	for _, id := range company.crewOrder {
		crew := company.crews[id]

		if !e.cfg.meetsRequirements(activity, crew.certifications, crew.skills) {
			continue
		}

		distance := math.Inf(1)
		if e.cfg.ConsiderCrewLocation && site.loc.ok && crew.loc.ok {
			distance = Distance(site.loc.lat, site.loc.lon, crew.loc.lat, crew.loc.lon, Miles)
		}

		ranked = append(ranked, crewRank{
			id:       id,
			capacity: crew.calendar.Available(req.days),
			distance: distance,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].distance < ranked[j].distance })

	allIndeterminate := true
	for _, r := range ranked {
		if !math.IsInf(r.distance, 1) {
			allIndeterminate = false
			break
		}
	}
	if allIndeterminate {
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].capacity > ranked[j].capacity })
	}

	var selected []string
	var collected float64
	for _, r := range ranked {
		selected = append(selected, r.id)
		collected += r.capacity

		if collected+e.cfg.PermissibleCapacityDiscrepancy > req.target {
			break
		}
	}

	return selected
}

// consumeCrews drains capacity for one job from the selected crews, day
// by day in ranked order. A contributing crew's whole daily supply is
// consumed (its calendar day drops to zero and the company calendar is
// decremented in lockstep), so the requirement may be overshot. The day
// loop stops as soon as the requirement is met.
func consumeCrews(company *companyState, crewIDs []string, days []string, target float64) map[string]window {
	windows := make(map[string]window, len(crewIDs))
	remaining := target

	for _, day := range days {
		for _, crewID := range crewIDs {
			crew := company.crews[crewID]
			daily := crew.calendar[day]
			if daily > 0 && remaining > 0 {
				remaining -= daily
				company.calendar[day] -= daily
				crew.calendar[day] = 0

				w := windows[crewID]
				w.mark(day)
				windows[crewID] = w
			}
		}

		if remaining <= 0 {
			break
		}
	}

	return windows
}

// statistics assembles the final supply/allocation totals from the
// post-run company states.
func (e *Engine) statistics() model.Statistics {
	stats := model.Statistics{
		ProvidedCapacity:   e.providedCapacity,
		CompanyAllocations: []model.CompanyAllocation{},
	}

	for _, id := range e.companyOrder {
		company := e.companies[id]
		stats.AllocatedCapacity += company.allocated

		provided := 0
		if e.providedCapacity > 0 {
			provided = int(math.Floor(company.allocated * 100 / e.providedCapacity))
		}

		stats.CompanyAllocations = append(stats.CompanyAllocations, model.CompanyAllocation{
			CompanyID:           id,
			Allocated:           company.allocated,
			RequestedPercentage: company.activitiesPercentage,
			ProvidedPercentage:  provided,
		})
	}

	return stats
}
