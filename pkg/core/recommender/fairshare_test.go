package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fairShareCompanies(percentages map[string]int, allocated map[string]float64) map[string]*companyState {
	companies := make(map[string]*companyState, len(percentages))
	for id, pct := range percentages {
		companies[id] = &companyState{
			id:                   id,
			activitiesPercentage: pct,
			allocated:            allocated[id],
		}
	}
	return companies
}

func TestSelectCompany_EmptyCandidates(t *testing.T) {
	assert.Equal(t, "", selectCompany(nil, nil, 100))
}

func TestSelectCompany_PicksLargestRemainder(t *testing.T) {
	companies := fairShareCompanies(
		map[string]int{"a": 70, "b": 30},
		map[string]float64{"a": 60, "b": 0},
	)

	// a: 100*0.70 - 60 = 10; b: 100*0.30 - 0 = 30.
	assert.Equal(t, "b", selectCompany([]string{"a", "b"}, companies, 100))
}

func TestSelectCompany_TieGoesToFirstCandidate(t *testing.T) {
	companies := fairShareCompanies(
		map[string]int{"a": 50, "b": 50},
		map[string]float64{},
	)

	assert.Equal(t, "a", selectCompany([]string{"a", "b"}, companies, 100))
	assert.Equal(t, "b", selectCompany([]string{"b", "a"}, companies, 100))
}

func TestSelectCompany_EarlierWinnersLoseAttractiveness(t *testing.T) {
	companies := fairShareCompanies(
		map[string]int{"a": 70, "b": 30},
		map[string]float64{},
	)

	winner := selectCompany([]string{"a", "b"}, companies, 10)
	assert.Equal(t, "a", winner)

	companies["a"].allocated += 5
	winner = selectCompany([]string{"a", "b"}, companies, 10)
	assert.Equal(t, "b", winner, "a's remainder dropped to 2, below b's 3")
}
