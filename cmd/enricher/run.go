package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"survey-enrichment/internal/config"
	"survey-enrichment/internal/geocoder"
	"survey-enrichment/internal/logger"
	"survey-enrichment/internal/models"
	"survey-enrichment/internal/repository"
	"survey-enrichment/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Geocode every configured data file",
	Long:  "Validate the geocoding API key once, then enrich each target file under the data directory, writing a .backup copy of the original before overwriting it.",
	RunE:  runEnrich,
}

var (
	configDir string
	dataDir   string
	files     []string
)

func init() {
	runCmd.Flags().StringVarP(&configDir, "config", "c", "configs", "Directory containing app.env")
	runCmd.Flags().StringVarP(&dataDir, "data-dir", "d", "", "Directory of the data files (overrides DATA_DIR)")
	runCmd.Flags().StringSliceVarP(&files, "file", "f", nil, "Target file name, repeatable (overrides TARGET_FILES)")

	rootCmd.AddCommand(runCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if len(files) > 0 {
		cfg.TargetFiles = files
	}

	log, err := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := runBatch(ctx, cfg, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Geocoding complete: %d file(s) processed, %d failed, %d missing; %d record(s) geocoded, %d skipped\n",
		report.FilesProcessed, report.FilesFailed, report.FilesMissing, report.Records.Geocoded, report.Records.Skipped)
	return nil
}

// runBatch wires the components from cfg and runs one batch. A panic inside the batch is
// converted into an error so the process still exits non-zero through cobra.
func runBatch(ctx context.Context, cfg config.Config, log zerolog.Logger) (report models.BatchReport, err error) {
	if err := cfg.Validate(); err != nil {
		return report, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("enricher: unexpected failure: %v", r)
		}
	}()

	client := geocoder.NewClient(geocoder.ClientConfig{
		BaseURL: cfg.GeocodeBaseURL,
		APIKey:  cfg.GoogleMapsAPIKey,
		Timeout: cfg.GeocodeTimeout,
	}, log)

	enricher := service.NewEnrichmentService(client, service.NewPacer(cfg.PacingMode, cfg.RequestDelay), log)
	processor := service.NewFileProcessor(repository.NewDocumentStore(), enricher, log)
	runner := service.NewBatchRunner(client, processor, service.BatchOptions{
		DataDir:           cfg.DataDir,
		TargetFiles:       cfg.TargetFiles,
		ValidationAddress: cfg.ValidationAddress,
	}, log)

	return runner.Run(ctx)
}
