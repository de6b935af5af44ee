package recommender

// selectCompany picks exactly one company from the eligible candidates
// using a largest-remainder apportionment against each company's target
// percentage of total program capacity. Remainders are evaluated fresh
// per job against the running allocated counters, so earlier winners
// become relatively less attractive for subsequent jobs.
//
// Ties resolve to the first maximal candidate; candidates are passed in
// the insertion order of the capacity document, which keeps runs
// reproducible. Returns "" when no candidate is eligible.
func selectCompany(candidates []string, companies map[string]*companyState, requiredCapacity float64) string {
	if len(candidates) == 0 {
		return ""
	}

	best := candidates[0]
	bestRemainder := remainder(companies[best], requiredCapacity)

	for _, id := range candidates[1:] {
		if r := remainder(companies[id], requiredCapacity); r > bestRemainder {
			best = id
			bestRemainder = r
		}
	}

	return best
}

func remainder(company *companyState, requiredCapacity float64) float64 {
	return requiredCapacity*float64(company.activitiesPercentage)/100 - company.allocated
}
