package service

import (
	"context"
	"errors"
	"strings"

	"survey-enrichment/internal/models"

	"github.com/rs/zerolog"
)

// ErrMissingAddress marks a record that has none of the address fields filled in.
var ErrMissingAddress = errors.New("service: record has no address")

// addressFields are concatenated in this order to build the geocoding query.
var addressFields = []string{
	models.FieldPhysicalAddress,
	models.FieldTown,
	models.FieldCity,
	models.FieldCountry,
}

// Geocoder interface for dependency injection
type Geocoder interface {
	Lookup(ctx context.Context, address string) *models.GeocodeResult
}

// EnrichmentService adds coordinates and location metadata to survey responses
type EnrichmentService struct {
	geocoder Geocoder
	pacer    Pacer
	logger   zerolog.Logger
}

// NewEnrichmentService creates a new enrichment service
func NewEnrichmentService(geocoder Geocoder, pacer Pacer, logger zerolog.Logger) *EnrichmentService {
	return &EnrichmentService{
		geocoder: geocoder,
		pacer:    pacer,
		logger:   logger.With().Str("component", "enrichment").Logger(),
	}
}

// BuildCompositeAddress joins the non-blank address fields of r with ", ".
func BuildCompositeAddress(r models.SurveyResponse) string {
	parts := make([]string, 0, len(addressFields))
	for _, field := range addressFields {
		if v := r.Field(field); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

// Enrich geocodes every record that has no coordinates yet. The returned slice has the same
// length and order as records; input records are never modified.
//
// The pacer is awaited after each record, including skipped ones. An error is returned only
// when ctx is cancelled, together with the records handled so far and the rest unchanged.
func (s *EnrichmentService) Enrich(ctx context.Context, records []models.SurveyResponse) ([]models.SurveyResponse, models.EnrichmentSummary, error) {
	out := make([]models.SurveyResponse, len(records))
	copy(out, records)
	summary := models.EnrichmentSummary{Total: len(records)}

	for i, record := range records {
		out[i] = s.enrichRecord(ctx, i, record, &summary)

		if err := s.pacer.Pace(ctx); err != nil {
			return out, summary, err
		}
	}

	s.logger.Info().
		Int("total", summary.Total).
		Int("geocoded", summary.Geocoded).
		Int("skipped", summary.Skipped).
		Int("missing_address", summary.MissingAddress).
		Int("failed", summary.Failed).
		Msg("enrichment finished")

	return out, summary, nil
}

func (s *EnrichmentService) enrichRecord(ctx context.Context, index int, record models.SurveyResponse, summary *models.EnrichmentSummary) models.SurveyResponse {
	if record.HasCoordinates() {
		summary.Skipped++
		return record
	}

	address := BuildCompositeAddress(record)
	if address == "" {
		summary.MissingAddress++
		s.logger.Warn().Err(ErrMissingAddress).Int("record_index", index).Interface("id", record["id"]).Msg("skipping record")
		return record
	}

	result := s.geocoder.Lookup(ctx, address)
	if result == nil {
		summary.Failed++
		s.logger.Warn().Int("record_index", index).Str("address", address).Msg("could not geocode record")
		return record
	}

	summary.Geocoded++
	return mergeResult(record, result)
}

func mergeResult(record models.SurveyResponse, result *models.GeocodeResult) models.SurveyResponse {
	updated := record.Clone()
	updated[models.FieldLatitude] = result.Latitude
	updated[models.FieldLongitude] = result.Longitude
	updated[models.FieldTimezone] = result.Timezone
	updated[models.FieldFormattedAddress] = result.FormattedAddress
	if result.State != "" {
		updated[models.FieldState] = result.State
	}
	return updated
}
