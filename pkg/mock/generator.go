// Package mock generates random but well-formed program plans and
// capacity documents for local testing and demos. Output is
// deterministic for a given seed.
package mock

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
)

// Config controls document sizes and how often optional fields appear.
type Config struct {
	ProgramStartDate string
	ProgramEndDate   string

	MaxSites                          int
	SiteLocationProbability           float64
	MaxProjectsPerSite                int
	ProjectDateFrameProbability       float64
	MaxActivitiesPerProject           int
	ScopePresenceProbability          float64
	SkillsPresenceProbability         float64
	MaxSkillsRequired                 int
	CertificationsPresenceProbability float64
	MaxCertificationsRequired         int

	MaxCompanies                         int
	CompanyLocationProbability           float64
	MaxCrewsPerCompany                   int
	CrewLocationProbability              float64
	AllocationScopeProbability           float64
	MaxScopesPerAllocation               int
	CrewSkillPresenceProbability         float64
	MaxSkillsPerCrew                     int
	CrewCertificationPresenceProbability float64
	MaxCertificationsPerCrew             int
}

// DefaultConfig returns the sizing used by the bundled sample data.
func DefaultConfig() Config {
	return Config{
		ProgramStartDate:                  "2024-01-01",
		ProgramEndDate:                    "2024-04-20",
		MaxSites:                          5,
		SiteLocationProbability:           0.25,
		MaxProjectsPerSite:                5,
		ProjectDateFrameProbability:       0.5,
		MaxActivitiesPerProject:           7,
		ScopePresenceProbability:          0.3,
		SkillsPresenceProbability:         0.3,
		MaxSkillsRequired:                 3,
		CertificationsPresenceProbability: 0.3,
		MaxCertificationsRequired:         2,

		MaxCompanies:                         4,
		CompanyLocationProbability:           0.5,
		MaxCrewsPerCompany:                   5,
		CrewLocationProbability:              0.25,
		AllocationScopeProbability:           0.25,
		MaxScopesPerAllocation:               2,
		CrewSkillPresenceProbability:         0.5,
		MaxSkillsPerCrew:                     3,
		CrewCertificationPresenceProbability: 0.5,
		MaxCertificationsPerCrew:             3,
	}
}

var (
	scopeVocab = []string{
		"civil", "electrical", "mechanical", "plumbing", "roofing",
		"landscaping", "demolition", "scaffolding",
	}
	skillVocab = []string{
		"welding", "rigging", "surveying", "concrete finishing",
		"cable pulling", "pipe fitting", "crane operation", "painting",
	}
	certificationVocab = []string{
		"OSHA-10", "OSHA-30", "first aid", "confined space",
		"working at height", "forklift", "hot works",
	}
	titleVocab = []string{
		"north", "south", "east", "west", "river", "ridge", "summit",
		"harbor", "meadow", "granite", "cedar", "union",
	}
)

// Generator produces random documents from one seeded source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New returns a generator seeded for reproducible output.
func New(cfg Config, seed int64) *Generator {
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// ProgramPlan generates a full demand-side document.
func (g *Generator) ProgramPlan() *model.ProgramPlan {
	plan := &model.ProgramPlan{
		ProgramID:        g.uuid(),
		ProgramTitle:     g.title("program"),
		ProgramStartDate: g.cfg.ProgramStartDate,
		ProgramEndDate:   g.cfg.ProgramEndDate,
		CustomerID:       g.uuid(),
		CustomerTitle:    g.title("customer"),
	}

	plan.Sites = g.sites()
	plan.Projects = g.projects(plan.Sites)
	plan.Activities = g.activities(plan.Projects)

	sort.SliceStable(plan.Activities, func(i, j int) bool {
		return plan.Activities[i].SiteID < plan.Activities[j].SiteID
	})

	return plan
}

// CapacityInfo generates a supply-side document for the given program.
func (g *Generator) CapacityInfo(programID string) *model.CapacityInfo {
	info := &model.CapacityInfo{
		CapacityInfoID: g.uuid(),
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	info.Companies = g.companies()
	info.Crews = g.crews(info.Companies)
	info.Allocations = g.allocations(programID, info.Companies)
	info.Capacities = g.capacities(info.Crews)

	return info
}

func (g *Generator) sites() []model.Site {
	count := g.intBetween(1, g.cfg.MaxSites)
	sites := make([]model.Site, 0, count)
	for i := 0; i < count; i++ {
		site := model.Site{
			SiteID:      g.uuid(),
			SiteTitle:   g.title("site"),
			CountryCode: "US",
			State:       g.word(),
			City:        g.word(),
			Address:     fmt.Sprintf("%d %s street", g.intBetween(1, 999), g.word()),
		}
		if g.maybe(g.cfg.SiteLocationProbability) {
			site.Latitude, site.Longitude = g.coordinates()
		}
		sites = append(sites, site)
	}
	return sites
}

func (g *Generator) projects(sites []model.Site) []model.Project {
	var projects []model.Project
	for _, site := range sites {
		count := g.intBetween(1, g.cfg.MaxProjectsPerSite)
		for i := 0; i < count; i++ {
			project := model.Project{
				ProjectID:    g.uuid(),
				SiteID:       site.SiteID,
				ProjectTitle: g.title("project"),
			}
			if g.maybe(g.cfg.ProjectDateFrameProbability) {
				project.ProjectStartDate, project.ProjectEndDate =
					g.dateRange(g.cfg.ProgramStartDate, g.cfg.ProgramEndDate)
			}
			projects = append(projects, project)
		}
	}
	return projects
}

func (g *Generator) activities(projects []model.Project) []model.Activity {
	var activities []model.Activity
	for _, project := range projects {
		count := g.intBetween(1, g.cfg.MaxActivitiesPerProject)
		for i := 0; i < count; i++ {
			activity := model.Activity{
				ActivityID: g.uuid(),
				ProjectID:  project.ProjectID,
				SiteID:     project.SiteID,
				Priority:   g.intBetween(1, 3),
				Capacity:   g.intBetween(1, 3),
			}
			if g.maybe(g.cfg.ScopePresenceProbability) {
				activity.Scope = g.pick(scopeVocab)
			}
			if g.maybe(g.cfg.SkillsPresenceProbability) {
				activity.Skills = g.pickSome(skillVocab, g.cfg.MaxSkillsRequired)
			}
			if g.maybe(g.cfg.CertificationsPresenceProbability) {
				activity.Certifications = g.pickSome(certificationVocab, g.cfg.MaxCertificationsRequired)
			}

			start, end := g.cfg.ProgramStartDate, g.cfg.ProgramEndDate
			if project.ProjectStartDate != "" {
				start, end = project.ProjectStartDate, project.ProjectEndDate
			}
			activity.ActivityStartDate, activity.ActivityEndDate = g.dateRange(start, end)

			activities = append(activities, activity)
		}
	}
	return activities
}

func (g *Generator) companies() []model.Company {
	count := g.intBetween(1, g.cfg.MaxCompanies)
	companies := make([]model.Company, 0, count)
	for i := 0; i < count; i++ {
		company := model.Company{
			CompanyID:    g.uuid(),
			CompanyTitle: g.title("company"),
			Rating:       g.intBetween(1, 100),
			CountryCode:  "US",
			State:        g.word(),
			City:         g.word(),
			Address:      fmt.Sprintf("%d %s avenue", g.intBetween(1, 999), g.word()),
		}
		if g.maybe(g.cfg.CompanyLocationProbability) {
			company.Latitude, company.Longitude = g.coordinates()
		}
		companies = append(companies, company)
	}
	return companies
}

func (g *Generator) crews(companies []model.Company) []model.Crew {
	var crews []model.Crew
	for _, company := range companies {
		count := g.intBetween(1, g.cfg.MaxCrewsPerCompany)
		for i := 0; i < count; i++ {
			crew := model.Crew{
				CompanyID:   company.CompanyID,
				CrewID:      g.uuid(),
				CrewTitle:   g.title("crew"),
				CountryCode: "US",
				State:       g.word(),
				City:        g.word(),
			}
			if g.maybe(g.cfg.CrewLocationProbability) {
				crew.Latitude, crew.Longitude = g.coordinates()
			}
			if g.maybe(g.cfg.CrewSkillPresenceProbability) {
				crew.Skills = g.pickSome(skillVocab, g.cfg.MaxSkillsPerCrew)
			}
			if g.maybe(g.cfg.CrewCertificationPresenceProbability) {
				crew.Certifications = g.pickSome(certificationVocab, g.cfg.MaxCertificationsPerCrew)
			}
			crews = append(crews, crew)
		}
	}
	return crews
}

// allocations assigns each company a random share, with the last
// company absorbing the remainder so percentages always sum to 100.
func (g *Generator) allocations(programID string, companies []model.Company) []model.Allocation {
	percentages := make([]int, len(companies))
	subtotal := 0
	for i := range companies {
		percentages[i] = g.intBetween(1, 100/len(companies))
		if i < len(companies)-1 {
			subtotal += percentages[i]
		}
	}
	percentages[len(companies)-1] = 100 - subtotal

	allocations := make([]model.Allocation, 0, len(companies))
	for i, company := range companies {
		var scopes []string
		if g.maybe(g.cfg.AllocationScopeProbability) {
			scopes = g.pickSome(scopeVocab, g.cfg.MaxScopesPerAllocation)
		}
		if len(scopes) == 0 {
			scopes = []string{model.ScopeAny}
		}

		allocations = append(allocations, model.Allocation{
			ProgramID:            programID,
			CompanyID:            company.CompanyID,
			Scopes:               scopes,
			ActivitiesPercentage: percentages[i],
		})
	}
	return allocations
}

func (g *Generator) capacities(crews []model.Crew) []model.CapacityEntry {
	start, _ := time.Parse("2006-01-02", g.cfg.ProgramStartDate)
	end, _ := time.Parse("2006-01-02", g.cfg.ProgramEndDate)

	var entries []model.CapacityEntry
	for _, crew := range crews {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			quantity := 1.0
			if g.rng.Intn(10) == 0 {
				quantity = 0.5
			}
			entries = append(entries, model.CapacityEntry{
				CompanyID: crew.CompanyID,
				CrewID:    crew.CrewID,
				WorkDate:  day.Format("2006-01-02"),
				Capacity:  quantity,
			})
		}
	}
	return entries
}

func (g *Generator) uuid() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand.Read never fails.
		panic(err)
	}
	return id.String()
}

func (g *Generator) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}

func (g *Generator) maybe(probability float64) bool {
	return g.rng.Float64() < probability
}

func (g *Generator) pick(vocab []string) string {
	return vocab[g.rng.Intn(len(vocab))]
}

// pickSome draws up to max entries, deduplicated, preserving vocab order.
func (g *Generator) pickSome(vocab []string, max int) []string {
	count := g.rng.Intn(max + 1)
	seen := make(map[string]bool)
	for i := 0; i < count; i++ {
		seen[g.pick(vocab)] = true
	}

	var picked []string
	for _, entry := range vocab {
		if seen[entry] {
			picked = append(picked, entry)
		}
	}
	return picked
}

func (g *Generator) word() string {
	return titleVocab[g.rng.Intn(len(titleVocab))]
}

func (g *Generator) title(kind string) string {
	return fmt.Sprintf("%s-%s-%s", g.word(), kind, g.word())
}

func (g *Generator) coordinates() (lat, lon float64) {
	lat = -80 + g.rng.Float64()*160
	lon = -180 + g.rng.Float64()*360
	return lat, lon
}

// dateRange returns an ordered pair of dates inside [start, end].
func (g *Generator) dateRange(start, end string) (string, string) {
	from, _ := time.Parse("2006-01-02", start)
	to, _ := time.Parse("2006-01-02", end)
	span := int(to.Sub(from).Hours()/24) + 1
	if span < 1 {
		span = 1
	}

	a := from.AddDate(0, 0, g.rng.Intn(span))
	b := from.AddDate(0, 0, g.rng.Intn(span))
	if a.After(b) {
		a, b = b, a
	}
	return a.Format("2006-01-02"), b.Format("2006-01-02")
}
