package service

import (
	"context"
	"testing"

	"survey-enrichment/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func nairobiResult() *models.GeocodeResult {
	return &models.GeocodeResult{
		Latitude:         -1.28,
		Longitude:        36.82,
		FormattedAddress: "1 Test Rd, Nairobi, Kenya",
		State:            "Nairobi County",
		Country:          "Kenya",
		Timezone:         "Africa/Nairobi",
	}
}

func TestBuildCompositeAddress(t *testing.T) {
	tests := []struct {
		name     string
		record   models.SurveyResponse
		expected string
	}{
		{
			name:     "empty fields dropped",
			record:   models.SurveyResponse{"physical_address": "12 Main St", "town": "", "city": "Lagos", "country": "Nigeria"},
			expected: "12 Main St, Lagos, Nigeria",
		},
		{
			name:     "fixed order",
			record:   models.SurveyResponse{"country": "Kenya", "city": "Nairobi", "town": "Kilimani", "physical_address": "1 Test Rd"},
			expected: "1 Test Rd, Kilimani, Nairobi, Kenya",
		},
		{
			name:     "blank and non-string values ignored",
			record:   models.SurveyResponse{"physical_address": "   ", "town": 42, "city": nil, "country": "Ghana"},
			expected: "Ghana",
		},
		{
			name:     "no address fields",
			record:   models.SurveyResponse{"id": 1},
			expected: "",
		},
		{
			name:     "nil record",
			record:   nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildCompositeAddress(tt.record))
		})
	}
}

func TestEnrichmentService_Enrich(t *testing.T) {
	tests := []struct {
		name            string
		record          models.SurveyResponse
		address         string
		mockResult      *models.GeocodeResult
		expected        models.SurveyResponse
		expectedSummary models.EnrichmentSummary
	}{
		{
			name:            "already enriched record is skipped",
			record:          models.SurveyResponse{"id": 1, "city": "Lagos", "latitude": 6.5, "longitude": 3.4},
			expected:        models.SurveyResponse{"id": 1, "city": "Lagos", "latitude": 6.5, "longitude": 3.4},
			expectedSummary: models.EnrichmentSummary{Total: 1, Skipped: 1},
		},
		{
			name:            "record without address is left unchanged",
			record:          models.SurveyResponse{"id": 2, "town": " "},
			expected:        models.SurveyResponse{"id": 2, "town": " "},
			expectedSummary: models.EnrichmentSummary{Total: 1, MissingAddress: 1},
		},
		{
			name:       "geocoded record gains location fields",
			record:     models.SurveyResponse{"id": 3, "physical_address": "1 Test Rd", "city": "Nairobi", "country": "Kenya"},
			address:    "1 Test Rd, Nairobi, Kenya",
			mockResult: nairobiResult(),
			expected: models.SurveyResponse{
				"id":                3,
				"physical_address":  "1 Test Rd",
				"city":              "Nairobi",
				"country":           "Kenya",
				"latitude":          -1.28,
				"longitude":         36.82,
				"state":             "Nairobi County",
				"timezone":          "Africa/Nairobi",
				"formatted_address": "1 Test Rd, Nairobi, Kenya",
			},
			expectedSummary: models.EnrichmentSummary{Total: 1, Geocoded: 1},
		},
		{
			name:    "existing state kept when result has none",
			record:  models.SurveyResponse{"id": 4, "city": "Atlantis", "state": "Deep"},
			address: "Atlantis",
			mockResult: &models.GeocodeResult{
				Latitude:         1,
				Longitude:        2,
				FormattedAddress: "Atlantis",
				Timezone:         "UTC",
			},
			expected: models.SurveyResponse{
				"id":                4,
				"city":              "Atlantis",
				"state":             "Deep",
				"latitude":          1.0,
				"longitude":         2.0,
				"timezone":          "UTC",
				"formatted_address": "Atlantis",
			},
			expectedSummary: models.EnrichmentSummary{Total: 1, Geocoded: 1},
		},
		{
			name:            "failed lookup leaves record unchanged",
			record:          models.SurveyResponse{"id": 5, "city": "Nowhere"},
			address:         "Nowhere",
			mockResult:      nil,
			expected:        models.SurveyResponse{"id": 5, "city": "Nowhere"},
			expectedSummary: models.EnrichmentSummary{Total: 1, Failed: 1},
		},
		{
			name:            "null latitude is not enriched yet",
			record:          models.SurveyResponse{"id": 6, "city": "Nowhere", "latitude": nil, "longitude": 1.0},
			address:         "Nowhere",
			mockResult:      nil,
			expected:        models.SurveyResponse{"id": 6, "city": "Nowhere", "latitude": nil, "longitude": 1.0},
			expectedSummary: models.EnrichmentSummary{Total: 1, Failed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockGeo := new(MockGeocoder)
			pacer := &countingPacer{}
			service := NewEnrichmentService(mockGeo, pacer, zerolog.Nop())

			if tt.address != "" {
				mockGeo.On("Lookup", mock.Anything, tt.address).Return(tt.mockResult)
			}

			// Execute
			result, summary, err := service.Enrich(context.Background(), []models.SurveyResponse{tt.record})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, []models.SurveyResponse{tt.expected}, result)
			assert.Equal(t, tt.expectedSummary, summary)
			assert.Equal(t, 1, pacer.calls)

			if tt.address != "" {
				mockGeo.AssertExpectations(t)
			} else {
				mockGeo.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestEnrichmentService_Enrich_PreservesOrderAndInput(t *testing.T) {
	mockGeo := new(MockGeocoder)
	pacer := &countingPacer{}
	service := NewEnrichmentService(mockGeo, pacer, zerolog.Nop())

	records := []models.SurveyResponse{
		{"id": 1, "latitude": 1.0, "longitude": 1.0},
		{"id": 2, "city": "Nairobi", "country": "Kenya"},
		nil,
		{"id": 4},
		{"id": 5, "city": "Nowhere"},
	}
	mockGeo.On("Lookup", mock.Anything, "Nairobi, Kenya").Return(nairobiResult()).Once()
	mockGeo.On("Lookup", mock.Anything, "Nowhere").Return(nil).Once()

	result, summary, err := service.Enrich(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, result, len(records))
	for i := range records {
		if records[i] == nil {
			assert.Nil(t, result[i])
			continue
		}
		assert.Equal(t, records[i]["id"], result[i]["id"], "record %d moved", i)
	}
	assert.Equal(t, -1.28, result[1]["latitude"])
	assert.NotContains(t, records[1], "latitude")

	assert.Equal(t, models.EnrichmentSummary{Total: 5, Geocoded: 1, Skipped: 1, MissingAddress: 2, Failed: 1}, summary)
	assert.Equal(t, len(records), pacer.calls)
	mockGeo.AssertExpectations(t)
}

func TestEnrichmentService_Enrich_Idempotent(t *testing.T) {
	mockGeo := new(MockGeocoder)
	service := NewEnrichmentService(mockGeo, &countingPacer{}, zerolog.Nop())
	mockGeo.On("Lookup", mock.Anything, "Nairobi, Kenya").Return(nairobiResult()).Once()

	first, _, err := service.Enrich(context.Background(), []models.SurveyResponse{{"city": "Nairobi", "country": "Kenya"}})
	require.NoError(t, err)

	second, summary, err := service.Enrich(context.Background(), first)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, models.EnrichmentSummary{Total: 1, Skipped: 1}, summary)
	mockGeo.AssertExpectations(t)
}

func TestEnrichmentService_Enrich_StopsWhenPacerFails(t *testing.T) {
	mockGeo := new(MockGeocoder)
	pacer := &countingPacer{err: context.Canceled}
	service := NewEnrichmentService(mockGeo, pacer, zerolog.Nop())

	records := []models.SurveyResponse{
		{"id": 1, "latitude": 1.0, "longitude": 1.0},
		{"id": 2, "city": "Lagos"},
	}

	result, summary, err := service.Enrich(context.Background(), records)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, records, result)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, pacer.calls)
	mockGeo.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}
