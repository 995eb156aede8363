package models

// AddressComponent is a single tagged fragment of a geocoded address as returned by the provider.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name,omitempty"`
	Types     []string `json:"types"`
}

// ParsedAddress is the flat view of an address component list.
type ParsedAddress struct {
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
	Town    string `json:"town,omitempty"`
}

// GeocodeResult represents a single resolved address lookup, containing its precise geographic coordinates and the metadata derived from the provider's address components.
type GeocodeResult struct {
	Latitude          float64            `json:"latitude"`
	Longitude         float64            `json:"longitude"`
	FormattedAddress  string             `json:"formatted_address"`
	State             string             `json:"state,omitempty"`
	Country           string             `json:"country,omitempty"`
	City              string             `json:"city,omitempty"`
	Town              string             `json:"town,omitempty"`
	Timezone          string             `json:"timezone"`
	AddressComponents []AddressComponent `json:"address_components"`
}
