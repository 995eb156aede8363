package models

import "strings"

// Field names of a survey response that take part in enrichment.
const (
	FieldPhysicalAddress  = "physical_address"
	FieldTown             = "town"
	FieldCity             = "city"
	FieldCountry          = "country"
	FieldLatitude         = "latitude"
	FieldLongitude        = "longitude"
	FieldState            = "state"
	FieldTimezone         = "timezone"
	FieldFormattedAddress = "formatted_address"
)

// SurveyResponse is a single survey response record. Unknown fields are kept as decoded so the
// record can be written back without loss.
type SurveyResponse map[string]any

// HasCoordinates reports whether the record already carries both a latitude and a longitude.
func (r SurveyResponse) HasCoordinates() bool {
	lat, ok := r[FieldLatitude]
	if !ok || lat == nil {
		return false
	}
	lng, ok := r[FieldLongitude]
	return ok && lng != nil
}

// Field returns the trimmed string value of name, or "" when it is missing or not a string.
func (r SurveyResponse) Field(name string) string {
	s, ok := r[name].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Clone returns a shallow copy of the record.
func (r SurveyResponse) Clone() SurveyResponse {
	if r == nil {
		return nil
	}
	out := make(SurveyResponse, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
