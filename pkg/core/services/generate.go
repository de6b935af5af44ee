package services

import (
	"go.uber.org/zap"

	"github.com/fieldworks/crew-recommender/pkg/core/model"
	"github.com/fieldworks/crew-recommender/pkg/mock"
)

// GenerateTestData produces a random but internally consistent program
// plan and matching capacity document for the given seed.
func GenerateTestData(
	logger *zap.Logger,
	cfg mock.Config,
	seed int64,
) (*model.ProgramPlan, *model.CapacityInfo) {
	logger.Info("Generating test data", zap.Int64("seed", seed))

	generator := mock.New(cfg, seed)
	plan := generator.ProgramPlan()
	info := generator.CapacityInfo(plan.ProgramID)

	logger.Info("Test data generated",
		zap.String("program_id", plan.ProgramID),
		zap.Int("sites", len(plan.Sites)),
		zap.Int("projects", len(plan.Projects)),
		zap.Int("activities", len(plan.Activities)),
		zap.Int("companies", len(info.Companies)),
		zap.Int("crews", len(info.Crews)),
		zap.Int("capacity_rows", len(info.Capacities)))

	return plan, info
}
