package service

import (
	"context"
	"fmt"

	"survey-enrichment/internal/models"
	"survey-enrichment/internal/repository"

	"github.com/rs/zerolog"
)

// DocumentRepository interface for dependency injection
type DocumentRepository interface {
	Load(path string) (*repository.Document, error)
	WriteBackup(path string, doc *repository.Document) (string, error)
	Save(path string, doc *repository.Document) error
}

// FileProcessor enriches the survey responses of a single data file in place
type FileProcessor struct {
	repo     DocumentRepository
	enricher *EnrichmentService
	logger   zerolog.Logger
}

// NewFileProcessor creates a new file processor
func NewFileProcessor(repo DocumentRepository, enricher *EnrichmentService, logger zerolog.Logger) *FileProcessor {
	return &FileProcessor{
		repo:     repo,
		enricher: enricher,
		logger:   logger.With().Str("component", "file_processor").Logger(),
	}
}

// ProcessFile loads path, enriches its responses, writes a backup of the original content and
// then overwrites path. Nothing is written when the document is malformed, and the original is
// left untouched when the backup cannot be written.
func (p *FileProcessor) ProcessFile(ctx context.Context, path string) (models.EnrichmentSummary, error) {
	var summary models.EnrichmentSummary
	logger := p.logger.With().Str("file", path).Logger()

	doc, err := p.repo.Load(path)
	if err != nil {
		return summary, fmt.Errorf("service: failed to load document: %w", err)
	}

	records, err := doc.Records()
	if err != nil {
		return summary, fmt.Errorf("service: %s: %w", path, err)
	}
	logger.Info().Int("responses", len(records)).Msg("processing file")

	enriched, summary, err := p.enricher.Enrich(ctx, records)
	if err != nil {
		return summary, fmt.Errorf("service: enrichment interrupted: %w", err)
	}

	if err := doc.SetRecords(enriched); err != nil {
		return summary, fmt.Errorf("service: failed to update document: %w", err)
	}

	backup, err := p.repo.WriteBackup(path, doc)
	if err != nil {
		return summary, fmt.Errorf("service: backup failed, original left unchanged: %w", err)
	}
	logger.Info().Str("backup", backup).Msg("backup written")

	if err := p.repo.Save(path, doc); err != nil {
		return summary, fmt.Errorf("service: failed to save document: %w", err)
	}

	logger.Info().
		Int("geocoded", summary.Geocoded).
		Int("skipped", summary.Skipped).
		Int("total", summary.Total).
		Msg("file updated")
	return summary, nil
}
