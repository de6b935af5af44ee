package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/crew-recommender/pkg/core/recommender"
)

func TestGenerator_Deterministic(t *testing.T) {
	a := New(DefaultConfig(), 42).ProgramPlan()
	b := New(DefaultConfig(), 42).ProgramPlan()

	assert.Equal(t, a.ProgramID, b.ProgramID)
	require.Equal(t, len(a.Activities), len(b.Activities))
	for i := range a.Activities {
		assert.Equal(t, a.Activities[i], b.Activities[i])
	}
}

func TestGenerator_PlanIsWellFormed(t *testing.T) {
	plan := New(DefaultConfig(), 7).ProgramPlan()

	require.NotEmpty(t, plan.ProgramID)
	require.NotEmpty(t, plan.CustomerID)
	require.NotEmpty(t, plan.Sites)
	require.NotEmpty(t, plan.Projects)
	require.NotEmpty(t, plan.Activities)

	sites := make(map[string]bool)
	for _, s := range plan.Sites {
		sites[s.SiteID] = true
	}
	projects := make(map[string]string)
	for _, p := range plan.Projects {
		assert.True(t, sites[p.SiteID])
		projects[p.ProjectID] = p.SiteID
	}
	for _, a := range plan.Activities {
		assert.Equal(t, projects[a.ProjectID], a.SiteID)
		assert.LessOrEqual(t, a.ActivityStartDate, a.ActivityEndDate)
	}
}

func TestGenerator_AllocationsSumToHundred(t *testing.T) {
	g := New(DefaultConfig(), 99)
	info := g.CapacityInfo("prog-1")

	total := 0
	for _, alloc := range info.Allocations {
		assert.Equal(t, "prog-1", alloc.ProgramID)
		assert.NotEmpty(t, alloc.Scopes)
		total += alloc.ActivitiesPercentage
	}
	assert.Equal(t, 100, total)
}

func TestGenerator_OutputFeedsEngine(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g := New(DefaultConfig(), seed)
		plan := g.ProgramPlan()
		info := g.CapacityInfo(plan.ProgramID)

		engine := recommender.New(recommender.DefaultConfig())
		require.NoError(t, engine.FeedProgramPlan(plan), "seed %d", seed)
		require.NoError(t, engine.FeedCrewCapacities(info), "seed %d", seed)

		result, err := engine.Recommend()
		require.NoError(t, err, "seed %d", seed)
		require.NotNil(t, result)
	}
}
