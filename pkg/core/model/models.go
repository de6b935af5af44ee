package model

// Priority levels for activities. Anything outside the range is
// normalized to PriorityNormal during ingestion.
const (
	PriorityNormal    = 1
	PriorityImportant = 2
	PriorityHigh      = 3
)

// ScopeAny is the wildcard work scope. A company whose allocation
// declares it qualifies for any required scope.
const ScopeAny = "any"

// ProgramPlan is the program-side input document: one program with its
// sites, projects and activities.
type ProgramPlan struct {
	ProgramID        string     `json:"programId"`
	ProgramTitle     string     `json:"programTitle,omitempty"`
	ProgramStartDate string     `json:"programStartDate,omitempty"`
	ProgramEndDate   string     `json:"programEndDate,omitempty"`
	CustomerID       string     `json:"customerId"`
	CustomerTitle    string     `json:"customerTitle,omitempty"`
	Sites            []Site     `json:"sites"`
	Projects         []Project  `json:"projects"`
	Activities       []Activity `json:"activities"`
}

// Site is a physical program location. Latitude/longitude of zero mean
// the site has no usable coordinates.
type Site struct {
	SiteID      string  `json:"siteId"`
	SiteTitle   string  `json:"siteTitle,omitempty"`
	CountryCode string  `json:"countryCode,omitempty"`
	State       string  `json:"state,omitempty"`
	City        string  `json:"city,omitempty"`
	Address     string  `json:"address,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
}

// Project groups activities under a site.
type Project struct {
	ProjectID        string `json:"projectId"`
	SiteID           string `json:"siteId"`
	ProjectTitle     string `json:"projectTitle,omitempty"`
	ProjectStartDate string `json:"projectStartDate,omitempty"`
	ProjectEndDate   string `json:"projectEndDate,omitempty"`
}

// Activity is a time-boxed unit of work (a "job") requiring a daily
// capacity quantity and optional scope/skill/certification constraints.
type Activity struct {
	ActivityID        string   `json:"activityId"`
	ProjectID         string   `json:"projectId"`
	SiteID            string   `json:"siteId"`
	Scope             string   `json:"scope,omitempty"`
	Certifications    []string `json:"certifications,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	Priority          int      `json:"priority,omitempty"`
	Capacity          int      `json:"capacity,omitempty"`
	ActivityStartDate string   `json:"activityStartDate"`
	ActivityEndDate   string   `json:"activityEndDate"`
}

// CapacityInfo is the supply-side input document: companies, their
// crews, program allocations and raw per-day capacity rows.
type CapacityInfo struct {
	CapacityInfoID string          `json:"capacityInfoId"`
	CreatedAt      string          `json:"createdAt"`
	Companies      []Company       `json:"companies"`
	Crews          []Crew          `json:"crews"`
	Allocations    []Allocation    `json:"allocations"`
	Capacities     []CapacityEntry `json:"capacities"`
}

// Company owns crews and supplies capacity to the program.
type Company struct {
	CompanyID    string  `json:"companyId"`
	CompanyTitle string  `json:"companyTitle,omitempty"`
	Rating       int     `json:"rating,omitempty"`
	CountryCode  string  `json:"countryCode,omitempty"`
	State        string  `json:"state,omitempty"`
	City         string  `json:"city,omitempty"`
	Address      string  `json:"address,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}

// Crew is a unit of labor belonging to one company.
type Crew struct {
	CompanyID      string   `json:"companyId"`
	CrewID         string   `json:"crewId"`
	CrewTitle      string   `json:"crewTitle,omitempty"`
	CountryCode    string   `json:"countryCode,omitempty"`
	State          string   `json:"state,omitempty"`
	City           string   `json:"city,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Latitude       float64  `json:"latitude,omitempty"`
	Longitude      float64  `json:"longitude,omitempty"`
}

// Allocation links one company to a program with its work scopes and
// its target share of total program capacity.
type Allocation struct {
	ProgramID            string   `json:"programId"`
	CompanyID            string   `json:"companyId"`
	Scopes               []string `json:"scopes,omitempty"`
	ActivitiesPercentage int      `json:"activitiesPercentage,omitempty"`
}

// CapacityEntry is one raw supply row: a crew offers Capacity units on
// WorkDate. Multiple rows for the same crew and date are summed.
type CapacityEntry struct {
	CompanyID string  `json:"companyId"`
	CrewID    string  `json:"crewId"`
	WorkDate  string  `json:"workDate"`
	Capacity  float64 `json:"capacity"`
}

// Recommendation binds one activity to an assignee for a date window.
// CrewID equals CompanyID when crew-level detail is disabled. The
// window covers the first and last day the assignee contributed
// capacity, not necessarily every day in between.
type Recommendation struct {
	ActivityID string `json:"activityId"`
	CompanyID  string `json:"companyId"`
	CrewID     string `json:"crewId"`
	SiteID     string `json:"siteId"`
	ProjectID  string `json:"projectId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// CompanyAllocation is the per-company slice of the run statistics.
type CompanyAllocation struct {
	CompanyID           string  `json:"companyId"`
	Allocated           float64 `json:"allocated"`
	RequestedPercentage int     `json:"requestedPercentage"`
	ProvidedPercentage  int     `json:"providedPercentage"`
}

// Statistics aggregates supply and allocation totals for one run.
type Statistics struct {
	ProvidedCapacity   float64             `json:"providedCapacity"`
	AllocatedCapacity  float64             `json:"allocatedCapacity"`
	CompanyAllocations []CompanyAllocation `json:"companyAllocations"`
}

// RecommendationResult is the full output of one engine run.
type RecommendationResult struct {
	Recommendations []Recommendation `json:"result"`
	Statistics      Statistics       `json:"stats"`
}
