package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
)

func basePlan() *model.ProgramPlan {
	return &model.ProgramPlan{
		ProgramID:  "prog-1",
		CustomerID: "cust-1",
		Sites:      []model.Site{{SiteID: "site-1"}},
		Projects:   []model.Project{{ProjectID: "proj-1", SiteID: "site-1"}},
		Activities: []model.Activity{{
			ActivityID:        "act-1",
			ProjectID:         "proj-1",
			SiteID:            "site-1",
			Capacity:          2,
			ActivityStartDate: "2024-01-01",
			ActivityEndDate:   "2024-01-02",
		}},
	}
}

func baseCapacity(entries ...model.CapacityEntry) *model.CapacityInfo {
	return &model.CapacityInfo{
		CapacityInfoID: "cap-1",
		CreatedAt:      "2024-01-01T00:00:00Z",
		Companies:      []model.Company{{CompanyID: "co-1"}},
		Crews:          []model.Crew{{CompanyID: "co-1", CrewID: "crew-1"}},
		Allocations: []model.Allocation{
			{ProgramID: "prog-1", CompanyID: "co-1", ActivitiesPercentage: 100},
		},
		Capacities: entries,
	}
}

func TestFeedProgramPlan_MissingIdentifiers(t *testing.T) {
	e := New(DefaultConfig())
	err := e.FeedProgramPlan(&model.ProgramPlan{CustomerID: "cust-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "programId")

	e = New(DefaultConfig())
	err = e.FeedProgramPlan(&model.ProgramPlan{ProgramID: "prog-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customerId")
}

func TestFeedProgramPlan_DuplicateIDs(t *testing.T) {
	plan := basePlan()
	plan.Sites = append(plan.Sites, model.Site{SiteID: "site-1"})
	err := New(DefaultConfig()).FeedProgramPlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site-1")

	plan = basePlan()
	plan.Projects = append(plan.Projects, model.Project{ProjectID: "proj-1", SiteID: "site-1"})
	err = New(DefaultConfig()).FeedProgramPlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proj-1")

	plan = basePlan()
	plan.Activities = append(plan.Activities, plan.Activities[0])
	err = New(DefaultConfig()).FeedProgramPlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "act-1")
}

func TestFeedProgramPlan_DanglingReferences(t *testing.T) {
	plan := basePlan()
	plan.Projects[0].SiteID = "nope"
	err := New(DefaultConfig()).FeedProgramPlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")

	plan = basePlan()
	plan.Activities[0].ProjectID = "ghost"
	err = New(DefaultConfig()).FeedProgramPlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestFeedProgramPlan_ActivitySiteMustMatchProjectSite(t *testing.T) {
	plan := basePlan()
	plan.Sites = append(plan.Sites, model.Site{SiteID: "site-2"})
	plan.Activities[0].SiteID = "site-2"

	err := New(DefaultConfig()).FeedProgramPlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "act-1")
}

func TestFeedProgramPlan_MalformedDates(t *testing.T) {
	plan := basePlan()
	plan.Activities[0].ActivityStartDate = "01-01-2024"
	assert.Error(t, New(DefaultConfig()).FeedProgramPlan(plan))

	plan = basePlan()
	plan.Activities[0].ActivityEndDate = "2024-02-30"
	assert.Error(t, New(DefaultConfig()).FeedProgramPlan(plan))

	plan = basePlan()
	plan.Activities[0].ActivityStartDate = "2024-01-05"
	plan.Activities[0].ActivityEndDate = "2024-01-01"
	err := New(DefaultConfig()).FeedProgramPlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inverted")
}

func TestFeedProgramPlan_NormalizesPriorityAndCapacity(t *testing.T) {
	plan := basePlan()
	plan.Activities[0].Priority = 7
	plan.Activities[0].Capacity = 0

	e := New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(plan))

	activity := e.activities["act-1"]
	assert.Equal(t, 1, activity.priority)
	assert.Equal(t, 1, activity.capacity)
	assert.Equal(t, 1.0, e.requiredCapacity)
}

func TestFeedCrewCapacities_RequiresProgramFirst(t *testing.T) {
	e := New(DefaultConfig())
	err := e.FeedCrewCapacities(baseCapacity())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "program plan must be fed")
}

func TestFeedCrewCapacities_RepeatedFeedFails(t *testing.T) {
	e := New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	require.NoError(t, e.FeedCrewCapacities(baseCapacity()))

	assert.Error(t, e.FeedCrewCapacities(baseCapacity()))
}

func TestFeedCrewCapacities_MissingIdentifiers(t *testing.T) {
	e := New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))

	info := baseCapacity()
	info.CapacityInfoID = ""
	assert.Error(t, e.FeedCrewCapacities(info))

	e = New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	info = baseCapacity()
	info.CreatedAt = ""
	assert.Error(t, e.FeedCrewCapacities(info))
}

func TestFeedCrewCapacities_AllocationChecks(t *testing.T) {
	e := New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	info := baseCapacity()
	info.Allocations = nil
	err := e.FeedCrewCapacities(info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no allocation")

	e = New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	info = baseCapacity()
	info.Allocations[0].ProgramID = "other-program"
	err = e.FeedCrewCapacities(info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "other-program")

	e = New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	info = baseCapacity()
	info.Allocations = append(info.Allocations, info.Allocations[0])
	err = e.FeedCrewCapacities(info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one allocation")
}

func TestFeedCrewCapacities_CrewChecks(t *testing.T) {
	e := New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	info := baseCapacity()
	info.Crews[0].CrewID = ""
	err := e.FeedCrewCapacities(info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a crewId")

	e = New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	info = baseCapacity()
	info.Crews = append(info.Crews, model.Crew{CompanyID: "co-1", CrewID: "crew-1"})
	assert.Error(t, e.FeedCrewCapacities(info), "duplicate crew ids are rejected")

	e = New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	info = baseCapacity()
	info.Crews[0].CompanyID = "ghost-co"
	assert.Error(t, e.FeedCrewCapacities(info))
}

func TestFeedCrewCapacities_CapacityRowChecks(t *testing.T) {
	e := New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	info := baseCapacity(model.CapacityEntry{CompanyID: "co-1", CrewID: "ghost-crew", WorkDate: "2024-01-01", Capacity: 1})
	assert.Error(t, e.FeedCrewCapacities(info))

	e = New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))
	info = baseCapacity(model.CapacityEntry{CompanyID: "co-1", CrewID: "crew-1", WorkDate: "bad-date", Capacity: 1})
	assert.Error(t, e.FeedCrewCapacities(info))
}

func TestFeedCrewCapacities_AggregatesCalendars(t *testing.T) {
	e := New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))

	info := baseCapacity(
		model.CapacityEntry{CompanyID: "co-1", CrewID: "crew-1", WorkDate: "2024-01-01", Capacity: 1},
		model.CapacityEntry{CompanyID: "co-1", CrewID: "crew-1", WorkDate: "2024-01-01", Capacity: 0.5},
		model.CapacityEntry{CompanyID: "co-1", CrewID: "crew-1", WorkDate: "2024-01-02", Capacity: -3},
	)
	require.NoError(t, e.FeedCrewCapacities(info))

	company := e.companies["co-1"]
	assert.Equal(t, 1.5, company.crews["crew-1"].calendar["2024-01-01"])
	assert.Equal(t, 1.5, company.calendar["2024-01-01"])
	assert.Equal(t, 0.0, company.calendar["2024-01-02"], "negative quantities clamp to zero")
	assert.Equal(t, 1.5, e.providedCapacity)
}

func TestFeedCrewCapacities_DefaultsScopesAndPercentage(t *testing.T) {
	e := New(DefaultConfig())
	require.NoError(t, e.FeedProgramPlan(basePlan()))

	info := baseCapacity()
	info.Allocations[0].Scopes = nil
	info.Allocations[0].ActivitiesPercentage = 150
	require.NoError(t, e.FeedCrewCapacities(info))

	company := e.companies["co-1"]
	assert.Equal(t, []string{model.ScopeAny}, company.scopes)
	assert.Equal(t, 100, company.activitiesPercentage)
}
