package geocoder

// FallbackTimezone is returned for countries without a mapping.
const FallbackTimezone = "UTC"

var countryTimezones = map[string]string{
	"Nigeria":        "Africa/Lagos",
	"Kenya":          "Africa/Nairobi",
	"Ghana":          "Africa/Accra",
	"South Africa":   "Africa/Johannesburg",
	"Uganda":         "Africa/Kampala",
	"Tanzania":       "Africa/Dar_es_Salaam",
	"Rwanda":         "Africa/Kigali",
	"Ethiopia":       "Africa/Addis_Ababa",
	"Egypt":          "Africa/Cairo",
	"Morocco":        "Africa/Casablanca",
	"Senegal":        "Africa/Dakar",
	"Cameroon":       "Africa/Douala",
	"Zambia":         "Africa/Lusaka",
	"Zimbabwe":       "Africa/Harare",
	"India":          "Asia/Kolkata",
	"United Kingdom": "Europe/London",
	"United States":  "America/New_York",
	"Canada":         "America/Toronto",
}

// ResolveTimezone maps a country name to a fixed IANA timezone, falling back to UTC.
func ResolveTimezone(country string) string {
	if tz, ok := countryTimezones[country]; ok {
		return tz
	}
	return FallbackTimezone
}
