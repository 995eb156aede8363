package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"survey-enrichment/internal/models"

	"github.com/rs/zerolog"
)

// ErrValidationFailed is returned when the startup probe lookup yields no result, which usually
// means the API key is missing, invalid or lacks the geocoding permission.
var ErrValidationFailed = errors.New("service: geocoding API validation failed")

// BatchOptions selects the files of a batch run.
type BatchOptions struct {
	DataDir           string
	TargetFiles       []string
	ValidationAddress string
}

// BatchRunner drives a file processor over a fixed list of data files
type BatchRunner struct {
	geocoder  Geocoder
	processor *FileProcessor
	opts      BatchOptions
	logger    zerolog.Logger
}

// NewBatchRunner creates a new batch runner
func NewBatchRunner(geocoder Geocoder, processor *FileProcessor, opts BatchOptions, logger zerolog.Logger) *BatchRunner {
	return &BatchRunner{
		geocoder:  geocoder,
		processor: processor,
		opts:      opts,
		logger:    logger.With().Str("component", "batch").Logger(),
	}
}

// Run validates API access once and then processes every target file in order. A failing file
// is logged and counted; it does not stop the batch. Only a failed validation or a cancelled ctx
// is returned as an error.
func (r *BatchRunner) Run(ctx context.Context) (models.BatchReport, error) {
	var report models.BatchReport

	r.logger.Info().Str("address", r.opts.ValidationAddress).Msg("validating geocoding API access")
	if r.geocoder.Lookup(ctx, r.opts.ValidationAddress) == nil {
		return report, ErrValidationFailed
	}

	for _, name := range r.opts.TargetFiles {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("service: batch interrupted: %w", err)
		}

		path := filepath.Join(r.opts.DataDir, name)
		if _, err := os.Stat(path); err != nil {
			report.FilesMissing++
			r.logger.Error().Err(err).Str("file", path).Msg("target file not found")
			continue
		}

		summary, err := r.processor.ProcessFile(ctx, path)
		if err != nil {
			report.FilesFailed++
			r.logger.Error().Err(err).Str("file", path).Msg("failed to process file")
			continue
		}

		report.FilesProcessed++
		report.Records.Add(summary)
	}

	r.logger.Info().
		Int("files_processed", report.FilesProcessed).
		Int("files_failed", report.FilesFailed).
		Int("files_missing", report.FilesMissing).
		Int("geocoded", report.Records.Geocoded).
		Int("skipped", report.Records.Skipped).
		Msg("geocoding complete")

	return report, nil
}
