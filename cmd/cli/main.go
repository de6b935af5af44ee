package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fieldworks/crew-recommender/internal/config"
	"github.com/fieldworks/crew-recommender/pkg/core/model"
	"github.com/fieldworks/crew-recommender/pkg/core/services"
	"github.com/fieldworks/crew-recommender/pkg/db"
	"github.com/fieldworks/crew-recommender/pkg/export"
	"github.com/fieldworks/crew-recommender/pkg/mock"
	"github.com/fieldworks/crew-recommender/pkg/postgres"
	"github.com/fieldworks/crew-recommender/pkg/report"
	"github.com/fieldworks/crew-recommender/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	ctx    context.Context
}

var app *App

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Crew recommender - allocate program activities to crews",
		Long:  `A CLI tool for matching program activities against company and crew capacity.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd.Name())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(exportProgramCmd())
	rootCmd.AddCommand(exportCapacityCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger and config
func initApp(command string) error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(command)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded")

	return nil
}

// Command definitions

func recommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <plan.json> <capacity.json>",
		Short: "Run the recommender over a program plan and capacity document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			persist, _ := cmd.Flags().GetBool("store")
			reportPath, _ := cmd.Flags().GetString("report")
			jsonPath, _ := cmd.Flags().GetString("json")

			var plan model.ProgramPlan
			if err := readJSON(args[0], &plan); err != nil {
				return err
			}
			var info model.CapacityInfo
			if err := readJSON(args[1], &info); err != nil {
				return err
			}

			var store db.RunStore
			if persist {
				if app.cfg.PostgresDSN == "" {
					return fmt.Errorf("--store requires postgresDSN in the config file")
				}
				pg, err := postgres.NewDB(app.ctx, app.cfg.PostgresDSN)
				if err != nil {
					return fmt.Errorf("failed to connect to postgres: %w", err)
				}
				defer pg.Close()
				if err := pg.EnsureSchema(app.ctx); err != nil {
					return err
				}
				store = pg
			}

			result, err := services.Recommend(
				app.ctx, store, app.logger, app.cfg.EngineConfig(), &plan, &info)
			if err != nil {
				return err
			}

			fmt.Printf("\nRecommendations: %d\n", len(result.Recommendations))
			for _, rec := range result.Recommendations {
				fmt.Printf("  %s -> %s/%s (%s .. %s)\n",
					rec.ActivityID, rec.CompanyID, rec.CrewID, rec.StartDate, rec.EndDate)
			}
			fmt.Printf("\nProvided capacity:  %g\n", result.Statistics.ProvidedCapacity)
			fmt.Printf("Allocated capacity: %g\n", result.Statistics.AllocatedCapacity)
			for _, ca := range result.Statistics.CompanyAllocations {
				fmt.Printf("  %s: allocated %g (requested %d%%, provided %d%%)\n",
					ca.CompanyID, ca.Allocated, ca.RequestedPercentage, ca.ProvidedPercentage)
			}

			if jsonPath != "" {
				if err := writeJSON(jsonPath, result); err != nil {
					return err
				}
				fmt.Printf("\nResult written to %s\n", jsonPath)
			}

			if reportPath != "" {
				if err := report.WriteFile(reportPath, &plan, result); err != nil {
					return err
				}
				fmt.Printf("Report written to %s\n", reportPath)
			}

			return nil
		},
	}

	cmd.Flags().Bool("store", false, "Persist the run to postgres")
	cmd.Flags().String("report", "", "Write an HTML report to the given path")
	cmd.Flags().String("json", "", "Write the raw result JSON to the given path")

	return cmd
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random program plan and matching capacity document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")
			outDir, _ := cmd.Flags().GetString("out-dir")

			plan, info := services.GenerateTestData(app.logger, mock.DefaultConfig(), seed)

			planPath := filepath.Join(outDir, "program_plan.json")
			infoPath := filepath.Join(outDir, "capacity_info.json")
			if err := writeJSON(planPath, plan); err != nil {
				return err
			}
			if err := writeJSON(infoPath, info); err != nil {
				return err
			}

			fmt.Printf("Program plan written to %s\n", planPath)
			fmt.Printf("Capacity info written to %s\n", infoPath)
			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed for deterministic output")
	cmd.Flags().String("out-dir", ".", "Directory to write the generated documents to")

	return cmd
}

func exportProgramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-program <plan.json> <out.xlsx>",
		Short: "Export a program plan as an xlsx workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var plan model.ProgramPlan
			if err := readJSON(args[0], &plan); err != nil {
				return err
			}

			if err := export.WriteProgram(&plan, args[1]); err != nil {
				return err
			}
			fmt.Printf("Workbook written to %s\n", args[1])
			return nil
		},
	}
}

func exportCapacityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-capacity <capacity.json> <out.xlsx>",
		Short: "Export a capacity document as an xlsx workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var info model.CapacityInfo
			if err := readJSON(args[0], &info); err != nil {
				return err
			}

			if err := export.WriteCapacity(&info, args[1]); err != nil {
				return err
			}
			fmt.Printf("Workbook written to %s\n", args[1])
			return nil
		},
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
