package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
)

func testPlan() *model.ProgramPlan {
	return &model.ProgramPlan{
		ProgramID:        "prog-1",
		ProgramTitle:     "Spring works",
		ProgramStartDate: "2024-01-01",
		ProgramEndDate:   "2024-04-20",
		CustomerID:       "cust-1",
		CustomerTitle:    "Acme",
		Sites: []model.Site{
			{SiteID: "site-1", SiteTitle: "Depot", Latitude: 51.5, Longitude: -0.12},
			{SiteID: "site-2"},
		},
		Projects: []model.Project{
			{ProjectID: "proj-1", SiteID: "site-1", ProjectTitle: "north-yard"},
		},
		Activities: []model.Activity{
			{
				ActivityID:        "act-1",
				ProjectID:         "proj-1",
				SiteID:            "site-1",
				Scope:             "electrical",
				Skills:            []string{"welding", "rigging"},
				Priority:          3,
				Capacity:          2,
				ActivityStartDate: "2024-01-01",
				ActivityEndDate:   "2024-01-05",
			},
			{
				ActivityID:        "act-2",
				ProjectID:         "proj-1",
				SiteID:            "site-1",
				ActivityStartDate: "2024-02-01",
				ActivityEndDate:   "2024-02-02",
			},
		},
	}
}

func testCapacity() *model.CapacityInfo {
	return &model.CapacityInfo{
		CapacityInfoID: "cap-1",
		CreatedAt:      "2024-01-01T00:00:00Z",
		Companies: []model.Company{
			{CompanyID: "co-1", CompanyTitle: "BuildCo", Rating: 80, Latitude: 50, Longitude: 1},
		},
		Crews: []model.Crew{
			{CompanyID: "co-1", CrewID: "crew-1", Skills: []string{"welding"}},
		},
		Allocations: []model.Allocation{
			{ProgramID: "prog-1", CompanyID: "co-1", ActivitiesPercentage: 100},
		},
		Capacities: []model.CapacityEntry{
			{CompanyID: "co-1", CrewID: "crew-1", WorkDate: "2024-01-01", Capacity: 0.5},
		},
	}
}

func TestProgramWorkbook_SheetsAndRows(t *testing.T) {
	f, err := ProgramWorkbook(testPlan())
	require.NoError(t, err)

	require.Len(t, f.Sheets, 4)
	assert.Equal(t, "Program", f.Sheets[0].Name)
	assert.Equal(t, "Sites", f.Sheets[1].Name)
	assert.Equal(t, "Projects", f.Sheets[2].Name)
	assert.Equal(t, "Activities", f.Sheets[3].Name)

	program := f.Sheets[0]
	require.Len(t, program.Rows, 2)
	assert.Equal(t, "Program ID", program.Rows[0].Cells[0].String())
	assert.Equal(t, "prog-1", program.Rows[1].Cells[0].String())
	assert.Equal(t, "Acme", program.Rows[1].Cells[5].String())

	sites := f.Sheets[1]
	require.Len(t, sites.Rows, 3)
	assert.NotEmpty(t, sites.Rows[1].Cells[6].String(), "located site keeps its latitude")
	assert.Empty(t, sites.Rows[2].Cells[6].String(), "unlocated site gets blank coordinates")

	activities := f.Sheets[3]
	require.Len(t, activities.Rows, 3)
	assert.Equal(t, "welding,rigging", activities.Rows[1].Cells[5].String())
	assert.Equal(t, "3", activities.Rows[1].Cells[6].String())
	assert.Equal(t, "1", activities.Rows[2].Cells[6].String(), "missing priority defaults to 1")
	assert.Equal(t, "1", activities.Rows[2].Cells[7].String(), "missing capacity defaults to 1")
}

func TestCapacityWorkbook_SheetsAndRows(t *testing.T) {
	f, err := CapacityWorkbook(testCapacity())
	require.NoError(t, err)

	require.Len(t, f.Sheets, 4)
	assert.Equal(t, "Companies", f.Sheets[0].Name)
	assert.Equal(t, "Crews", f.Sheets[1].Name)
	assert.Equal(t, "Allocations", f.Sheets[2].Name)
	assert.Equal(t, "Capacities", f.Sheets[3].Name)

	companies := f.Sheets[0]
	require.Len(t, companies.Rows, 2)
	assert.Equal(t, "BuildCo", companies.Rows[1].Cells[1].String())
	assert.Equal(t, "80", companies.Rows[1].Cells[2].String())

	allocations := f.Sheets[2]
	require.Len(t, allocations.Rows, 2)
	assert.Equal(t, "100", allocations.Rows[1].Cells[3].String())

	capacities := f.Sheets[3]
	require.Len(t, capacities.Rows, 2)
	assert.Equal(t, "2024-01-01", capacities.Rows[1].Cells[2].String())
	assert.Equal(t, "0.5", capacities.Rows[1].Cells[3].String())
}

func TestCapacityWorkbook_EmptyScopesRenderAsAny(t *testing.T) {
	info := testCapacity()
	info.Allocations[0].Scopes = nil

	f, err := CapacityWorkbook(info)
	require.NoError(t, err)
	assert.Equal(t, "any", f.Sheets[2].Rows[1].Cells[2].String())
}

func TestWriteProgram_SavesFile(t *testing.T) {
	path := t.TempDir() + "/program.xlsx"
	require.NoError(t, WriteProgram(testPlan(), path))

	assert.FileExists(t, path)
}
