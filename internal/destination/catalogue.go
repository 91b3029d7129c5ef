package destination

import "strings"

// catalogue is the fixed, nearest-first list of dry places. It is never mutated.
var catalogue = []Destination{
	{
		ID:            1,
		Name:          "Whittlesford",
		DistanceLabel: "38.2km",
		WeatherStatus: WeatherDryAllDay,
		Activities:    []string{"attractions", "cafes", "forests", "museums", "nature reserves"},
	},
	{
		ID:            2,
		Name:          "Cambridge",
		DistanceLabel: "42.1km",
		WeatherStatus: WeatherDryAllDay,
		Activities:    []string{"museums", "universities", "punting", "shopping", "dining"},
	},
	{
		ID:            3,
		Name:          "Saffron Walden",
		DistanceLabel: "45.8km",
		WeatherStatus: WeatherDryAllDay,
		Activities:    []string{"gardens", "historic sites", "markets", "cafes", "walks"},
	},
	{
		ID:            4,
		Name:          "Colchester",
		DistanceLabel: "52.3km",
		WeatherStatus: WeatherDryAllDay,
		Activities:    []string{"castle", "zoo", "museums", "parks", "restaurants"},
	},
	{
		ID:            5,
		Name:          "Bury St Edmunds",
		DistanceLabel: "58.7km",
		WeatherStatus: WeatherDryAllDay,
		Activities:    []string{"abbey", "gardens", "theatre", "shopping", "pubs"},
	},
}

// Catalogue returns a copy of the built-in destinations in display order.
func Catalogue() []Destination {
	return cloneAll(catalogue)
}

// Attribution credits a data source named on every screen.
type Attribution struct {
	Prefix string `json:"prefix"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

// Attributions returns the footer credits in display order.
func Attributions() []Attribution {
	return []Attribution{
		{Prefix: "Weather data from", Name: "Open-Meteo", URL: "https://open-meteo.com"},
		{Prefix: "Places from", Name: "OpenTripMap", URL: "https://opentripmap.io"},
		{Prefix: "Maps by", Name: "OpenStreetMap", URL: "https://www.openstreetmap.org"},
	}
}

// CreditsLine joins the attributions into one footer line.
func CreditsLine() string {
	parts := make([]string, 0, 3)
	for _, a := range Attributions() {
		parts = append(parts, a.Prefix+" "+a.Name)
	}

	return strings.Join(parts, " · ")
}
