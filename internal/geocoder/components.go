package geocoder

import (
	"slices"

	"survey-enrichment/internal/models"
)

// Provider address component types.
const (
	TypeAdministrativeAreaLevel1 = "administrative_area_level_1"
	TypeCountry                  = "country"
	TypeLocality                 = "locality"
	TypeSublocalityLevel1        = "sublocality_level_1"
	TypeNeighborhood             = "neighborhood"
)

// ParseAddressComponents flattens provider address components into a ParsedAddress.
// Each component sets at most one field, chosen by the first matching type in the order state,
// country, city, town. When several components map to the same field the later one wins.
func ParseAddressComponents(components []models.AddressComponent) models.ParsedAddress {
	var parsed models.ParsedAddress
	for _, c := range components {
		switch {
		case slices.Contains(c.Types, TypeAdministrativeAreaLevel1):
			parsed.State = c.LongName
		case slices.Contains(c.Types, TypeCountry):
			parsed.Country = c.LongName
		case slices.Contains(c.Types, TypeLocality):
			parsed.City = c.LongName
		case slices.Contains(c.Types, TypeSublocalityLevel1), slices.Contains(c.Types, TypeNeighborhood):
			parsed.Town = c.LongName
		}
	}
	return parsed
}
