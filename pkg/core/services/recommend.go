package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
	"github.com/fieldworks/crew-recommender/pkg/core/recommender"
	"github.com/fieldworks/crew-recommender/pkg/db"
)

// Recommend runs one allocation pass over the given program plan and
// capacity info. When store is non-nil the finished run is persisted;
// the engine itself never touches storage.
func Recommend(
	ctx context.Context,
	store db.RunStore,
	logger *zap.Logger,
	cfg recommender.Config,
	plan *model.ProgramPlan,
	info *model.CapacityInfo,
) (*model.RecommendationResult, error) {
	logger.Info("Starting recommendation run",
		zap.String("program_id", plan.ProgramID),
		zap.Int("activities", len(plan.Activities)),
		zap.Int("companies", len(info.Companies)),
		zap.Int("crews", len(info.Crews)))

	engine := recommender.New(cfg)

	if err := engine.FeedProgramPlan(plan); err != nil {
		return nil, fmt.Errorf("failed to ingest program plan: %w", err)
	}
	logger.Debug("Program plan ingested")

	if err := engine.FeedCrewCapacities(info); err != nil {
		return nil, fmt.Errorf("failed to ingest capacity info: %w", err)
	}
	logger.Debug("Capacity info ingested")

	result, err := engine.Recommend()
	if err != nil {
		return nil, fmt.Errorf("recommendation run failed: %w", err)
	}

	logger.Info("Recommendation run finished",
		zap.Int("recommendations", len(result.Recommendations)),
		zap.Float64("provided_capacity", result.Statistics.ProvidedCapacity),
		zap.Float64("allocated_capacity", result.Statistics.AllocatedCapacity))

	if store != nil {
		if err := persistRun(ctx, store, plan, info, result); err != nil {
			return nil, err
		}
		logger.Info("Run persisted")
	}

	return result, nil
}

// persistRun maps a finished run onto store records under a fresh run id.
func persistRun(
	ctx context.Context,
	store db.RunStore,
	plan *model.ProgramPlan,
	info *model.CapacityInfo,
	result *model.RecommendationResult,
) error {
	run := &db.Run{
		ID:                uuid.New().String(),
		ProgramID:         plan.ProgramID,
		CapacityInfoID:    info.CapacityInfoID,
		CreatedAt:         time.Now().UTC(),
		ProvidedCapacity:  result.Statistics.ProvidedCapacity,
		AllocatedCapacity: result.Statistics.AllocatedCapacity,
	}

	recs := make([]db.RecommendationRecord, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		recs = append(recs, db.RecommendationRecord{
			ID:         uuid.New().String(),
			RunID:      run.ID,
			ActivityID: r.ActivityID,
			CompanyID:  r.CompanyID,
			CrewID:     r.CrewID,
			SiteID:     r.SiteID,
			ProjectID:  r.ProjectID,
			StartDate:  r.StartDate,
			EndDate:    r.EndDate,
		})
	}

	allocations := make([]db.CompanyAllocationRecord, 0, len(result.Statistics.CompanyAllocations))
	for _, ca := range result.Statistics.CompanyAllocations {
		allocations = append(allocations, db.CompanyAllocationRecord{
			RunID:               run.ID,
			CompanyID:           ca.CompanyID,
			Allocated:           ca.Allocated,
			RequestedPercentage: ca.RequestedPercentage,
			ProvidedPercentage:  ca.ProvidedPercentage,
		})
	}

	if err := store.InsertRun(ctx, run, recs, allocations); err != nil {
		return fmt.Errorf("failed to persist run: %w", err)
	}
	return nil
}
