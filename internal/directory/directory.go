// Package directory is the static origin/destination lookup used for
// autocomplete. Nothing here is persisted or fetched.
package directory

import "strings"

type City struct {
	ID     int
	Name   string
	Region string
}

var cities = []City{
	{ID: 1, Name: "Harare", Region: "Harare Metropolitan"},
	{ID: 2, Name: "Bulawayo", Region: "Bulawayo Metropolitan"},
	{ID: 3, Name: "Chitungwiza", Region: "Harare Metropolitan"},
	{ID: 4, Name: "Mutare", Region: "Manicaland"},
	{ID: 5, Name: "Gweru", Region: "Midlands"},
	{ID: 6, Name: "Masvingo", Region: "Masvingo"},
	{ID: 7, Name: "Victoria Falls", Region: "Matabeleland North"},
}

func Cities() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// Filter returns the cities whose name contains term, case-insensitively.
// An empty term returns everything.
func Filter(term string) []City {
	if term == "" {
		return Cities()
	}
	term = strings.ToLower(term)
	var out []City
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	return out
}

// Lookup finds a city by exact name, case-insensitively.
func Lookup(name string) (City, bool) {
	for _, c := range cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}
