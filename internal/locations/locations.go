package locations

import (
	"strings"

	"ramadanapp/internal/aladhan"
)

// City is one selectable place with its coordinate.

type City struct {
	NameEn    string
	NameAr    string
	Latitude  float64
	Longitude float64
}

// Country groups cities; the catalogue is static data, swappable without
// touching any logic.

type Country struct {
	NameEn string
	NameAr string
	Cities []City
}

// Find looks a city up by English or Arabic name, case-insensitively.

func Find(query string) (aladhan.Location, bool) {
	query = strings.TrimSpace(query)
	for _, country := range Countries {
		for _, city := range country.Cities {
			if strings.EqualFold(city.NameEn, query) || city.NameAr == query {
				return aladhan.Location{
					Latitude:  city.Latitude,
					Longitude: city.Longitude,
					City:      city.NameEn,
					Country:   country.NameEn,
				}, true
			}
		}
	}
	return aladhan.Location{}, false
}
