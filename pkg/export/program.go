// Package export renders program and capacity documents as xlsx
// workbooks, one sheet per collection with a header row.
package export

import (
	"fmt"
	"strings"

	"github.com/tealeg/xlsx/v2"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
)

// ProgramWorkbook builds a workbook with Program, Sites, Projects and
// Activities sheets.
func ProgramWorkbook(plan *model.ProgramPlan) (*xlsx.File, error) {
	f := xlsx.NewFile()

	program, err := addSheet(f, "Program",
		"Program ID", "Program Title", "Start Date", "End Date", "Customer ID", "Customer Title")
	if err != nil {
		return nil, err
	}
	addStrings(program,
		plan.ProgramID,
		plan.ProgramTitle,
		plan.ProgramStartDate,
		plan.ProgramEndDate,
		plan.CustomerID,
		plan.CustomerTitle)

	sites, err := addSheet(f, "Sites",
		"Site ID", "Site Title", "Country Code", "State", "City", "Address", "Latitude", "Longitude")
	if err != nil {
		return nil, err
	}
	for _, site := range plan.Sites {
		row := addStrings(sites,
			site.SiteID,
			site.SiteTitle,
			site.CountryCode,
			site.State,
			site.City,
			site.Address)
		addCoordinates(row, site.Latitude, site.Longitude)
	}

	projects, err := addSheet(f, "Projects",
		"Project ID", "Site ID", "Project Title", "Start Date", "End Date")
	if err != nil {
		return nil, err
	}
	for _, project := range plan.Projects {
		addStrings(projects,
			project.ProjectID,
			project.SiteID,
			project.ProjectTitle,
			project.ProjectStartDate,
			project.ProjectEndDate)
	}

	activities, err := addSheet(f, "Activities",
		"Activity ID", "Project ID", "Site ID", "Scope", "Certifications", "Skills",
		"Priority", "Capacity", "Start Date", "End Date")
	if err != nil {
		return nil, err
	}
	for _, activity := range plan.Activities {
		row := addStrings(activities,
			activity.ActivityID,
			activity.ProjectID,
			activity.SiteID,
			activity.Scope,
			strings.Join(activity.Certifications, ","),
			strings.Join(activity.Skills, ","))
		row.AddCell().SetInt(defaultOne(activity.Priority))
		row.AddCell().SetInt(defaultOne(activity.Capacity))
		row.AddCell().SetString(activity.ActivityStartDate)
		row.AddCell().SetString(activity.ActivityEndDate)
	}

	return f, nil
}

// WriteProgram writes the program workbook to path.
func WriteProgram(plan *model.ProgramPlan, path string) error {
	f, err := ProgramWorkbook(plan)
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save program workbook: %w", err)
	}
	return nil
}

func addSheet(f *xlsx.File, name string, headers ...string) (*xlsx.Sheet, error) {
	sheet, err := f.AddSheet(name)
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet %s: %w", name, err)
	}
	addStrings(sheet, headers...)
	return sheet, nil
}

func addStrings(sheet *xlsx.Sheet, values ...string) *xlsx.Row {
	row := sheet.AddRow()
	for _, value := range values {
		row.AddCell().SetString(value)
	}
	return row
}

// addCoordinates leaves both cells blank when the point is unset.
func addCoordinates(row *xlsx.Row, lat, lon float64) {
	if lat == 0 && lon == 0 {
		row.AddCell()
		row.AddCell()
		return
	}
	row.AddCell().SetFloat(lat)
	row.AddCell().SetFloat(lon)
}

func defaultOne(value int) int {
	if value == 0 {
		return 1
	}
	return value
}
