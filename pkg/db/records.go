// Package db defines the persisted record types and store interfaces
// for finished recommendation runs. The engine never depends on this
// package; persistence is optional surrounding tooling.
package db

import (
	"context"
	"time"
)

// Run is one persisted engine run with its aggregate totals.
type Run struct {
	ID                string
	ProgramID         string
	CapacityInfoID    string
	CreatedAt         time.Time
	ProvidedCapacity  float64
	AllocatedCapacity float64
}

// RecommendationRecord is one persisted recommendation row of a run.
type RecommendationRecord struct {
	ID         string
	RunID      string
	ActivityID string
	CompanyID  string
	CrewID     string
	SiteID     string
	ProjectID  string
	StartDate  string
	EndDate    string
}

// CompanyAllocationRecord is one persisted per-company statistics row.
type CompanyAllocationRecord struct {
	RunID               string
	CompanyID           string
	Allocated           float64
	RequestedPercentage int
	ProvidedPercentage  int
}

// RunStore persists finished runs atomically.
type RunStore interface {
	InsertRun(ctx context.Context, run *Run, recommendations []RecommendationRecord, allocations []CompanyAllocationRecord) error
	GetRuns(ctx context.Context) ([]Run, error)
}
