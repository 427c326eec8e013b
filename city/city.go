package city

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scale converts one coordinate unit into report miles.
const Scale = 100

// City is a named point on the map. It is created once at load time and
// never mutated; Name identifies it within a graph.
type City struct {
	// Name is the unique identifier of the city (exact match as a map key).
	Name string

	// Region is the free-form second field of a city record. Searches ignore it.
	Region string

	// Latitude and Longitude are planar coordinates.
	Latitude  float64
	Longitude float64
}

// New returns a City with the given name and coordinates.
func New(name string, lat, lon float64) City {
	return City{Name: name, Latitude: lat, Longitude: lon}
}

// Distance returns the scaled Euclidean distance between a and b.
// It is pure and symmetric.
func Distance(a, b City) float64 {
	dLat := a.Latitude - b.Latitude
	dLon := a.Longitude - b.Longitude

	return math.Sqrt(dLat*dLat+dLon*dLon) * Scale
}

// DistanceTo is shorthand for Distance(c, other).
func (c City) DistanceTo(other City) float64 {
	return Distance(c, other)
}

// SameName reports whether c and other have the same name, ignoring case.
func (c City) SameName(other City) bool {
	return strings.EqualFold(c.Name, other.Name)
}

// String renders the city as "<name> <lat> <lon>".
func (c City) String() string {
	return fmt.Sprintf("%s %s %s", c.Name, FormatFloat(c.Latitude), FormatFloat(c.Longitude))
}

// FormatFloat renders f in shortest form, always keeping a fractional part
// so that 200 prints as "200.0".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
