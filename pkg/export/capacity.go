package export

import (
	"fmt"
	"strings"

	"github.com/tealeg/xlsx/v2"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
)

// CapacityWorkbook builds a workbook with Companies, Crews, Allocations
// and Capacities sheets.
func CapacityWorkbook(info *model.CapacityInfo) (*xlsx.File, error) {
	f := xlsx.NewFile()

	companies, err := addSheet(f, "Companies",
		"Company ID", "Company Title", "Rating", "Country Code", "State", "City",
		"Address", "Latitude", "Longitude")
	if err != nil {
		return nil, err
	}
	for _, company := range info.Companies {
		row := addStrings(companies, company.CompanyID, company.CompanyTitle)
		row.AddCell().SetInt(company.Rating)
		row.AddCell().SetString(company.CountryCode)
		row.AddCell().SetString(company.State)
		row.AddCell().SetString(company.City)
		row.AddCell().SetString(company.Address)
		addCoordinates(row, company.Latitude, company.Longitude)
	}

	crews, err := addSheet(f, "Crews",
		"Company ID", "Crew ID", "Crew Title", "Country Code", "State", "City",
		"Certifications", "Skills", "Latitude", "Longitude")
	if err != nil {
		return nil, err
	}
	for _, crew := range info.Crews {
		row := addStrings(crews,
			crew.CompanyID,
			crew.CrewID,
			crew.CrewTitle,
			crew.CountryCode,
			crew.State,
			crew.City,
			strings.Join(crew.Certifications, ","),
			strings.Join(crew.Skills, ","))
		addCoordinates(row, crew.Latitude, crew.Longitude)
	}

	allocations, err := addSheet(f, "Allocations",
		"Program ID", "Company ID", "Scopes", "Activities Percentage")
	if err != nil {
		return nil, err
	}
	for _, allocation := range info.Allocations {
		scopes := strings.Join(allocation.Scopes, ",")
		if scopes == "" {
			scopes = model.ScopeAny
		}
		row := addStrings(allocations, allocation.ProgramID, allocation.CompanyID, scopes)
		row.AddCell().SetInt(defaultOne(allocation.ActivitiesPercentage))
	}

	capacities, err := addSheet(f, "Capacities",
		"Company ID", "Crew ID", "Work Date", "Capacity")
	if err != nil {
		return nil, err
	}
	for _, entry := range info.Capacities {
		row := addStrings(capacities, entry.CompanyID, entry.CrewID, entry.WorkDate)
		row.AddCell().SetFloat(entry.Capacity)
	}

	return f, nil
}

// WriteCapacity writes the capacity workbook to path.
func WriteCapacity(info *model.CapacityInfo, path string) error {
	f, err := CapacityWorkbook(info)
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save capacity workbook: %w", err)
	}
	return nil
}
