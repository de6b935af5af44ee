package postgres

import (
	"context"
	"fmt"

	"github.com/fieldworks/crew-recommender/pkg/db"
)

// InsertRun writes a run and all of its rows in a single transaction.
func (d *DB) InsertRun(
	ctx context.Context,
	run *db.Run,
	recommendations []db.RecommendationRecord,
	allocations []db.CompanyAllocationRecord,
) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO runs (id, program_id, capacity_info_id, created_at, provided_capacity, allocated_capacity)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.ProgramID, run.CapacityInfoID, run.CreatedAt, run.ProvidedCapacity, run.AllocatedCapacity,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, rec := range recommendations {
		_, err = tx.Exec(ctx, `
			INSERT INTO recommendations (id, run_id, activity_id, company_id, crew_id, site_id, project_id, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			rec.ID, rec.RunID, rec.ActivityID, rec.CompanyID, rec.CrewID, rec.SiteID, rec.ProjectID, rec.StartDate, rec.EndDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recommendation for activity %s: %w", rec.ActivityID, err)
		}
	}

	for _, alloc := range allocations {
		_, err = tx.Exec(ctx, `
			INSERT INTO company_allocations (run_id, company_id, allocated, requested_percentage, provided_percentage)
			VALUES ($1, $2, $3, $4, $5)`,
			alloc.RunID, alloc.CompanyID, alloc.Allocated, alloc.RequestedPercentage, alloc.ProvidedPercentage,
		)
		if err != nil {
			return fmt.Errorf("failed to insert allocation for company %s: %w", alloc.CompanyID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetRuns returns all persisted runs, newest first.
func (d *DB) GetRuns(ctx context.Context) ([]db.Run, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, program_id, capacity_info_id, created_at, provided_capacity, allocated_capacity
		FROM runs
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []db.Run
	for rows.Next() {
		var run db.Run
		err := rows.Scan(
			&run.ID,
			&run.ProgramID,
			&run.CapacityInfoID,
			&run.CreatedAt,
			&run.ProvidedCapacity,
			&run.AllocatedCapacity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}
