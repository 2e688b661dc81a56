// Package maidenhead converts 6-character Maidenhead grid locators to
// geographic coordinates and computes great-circle distances between them.
package maidenhead

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distance.
const EarthRadiusKm = 6371.0

// ErrInvalidLocator reports a malformed grid locator.
var ErrInvalidLocator = eris.New("maidenhead: invalid locator")

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Cell sizes of the three locator precision levels, in degrees.
const (
	fieldLonDeg  = 20.0
	fieldLatDeg  = 10.0
	squareLonDeg = 2.0
	squareLatDeg = 1.0
	subsqLonDeg  = 2.0 / 24.0
	subsqLatDeg  = 1.0 / 24.0
)

// Decode parses a 6-character locator (e.g. "JO90vd") into the coordinate of
// the grid square's center. Field letters are case-insensitive.
func Decode(locator string) (Coordinate, error) {
	if len(locator) != 6 {
		return Coordinate{}, eris.Wrapf(ErrInvalidLocator, "%q: want 6 characters, got %d", locator, len(locator))
	}
	s := strings.ToUpper(locator)

	field := [2]int{int(s[0] - 'A'), int(s[1] - 'A')}
	square := [2]int{int(s[2] - '0'), int(s[3] - '0')}
	subsq := [2]int{int(s[4] - 'A'), int(s[5] - 'A')}

	for i := 0; i < 2; i++ {
		if field[i] < 0 || field[i] > 17 {
			return Coordinate{}, eris.Wrapf(ErrInvalidLocator, "%q: field letter out of range A-R", locator)
		}
		if square[i] < 0 || square[i] > 9 {
			return Coordinate{}, eris.Wrapf(ErrInvalidLocator, "%q: square digit out of range 0-9", locator)
		}
		if subsq[i] < 0 || subsq[i] > 23 {
			return Coordinate{}, eris.Wrapf(ErrInvalidLocator, "%q: subsquare letter out of range a-x", locator)
		}
	}

	lon := -180.0 +
		float64(field[0])*fieldLonDeg +
		float64(square[0])*squareLonDeg +
		float64(subsq[0])*subsqLonDeg +
		subsqLonDeg/2
	lat := -90.0 +
		float64(field[1])*fieldLatDeg +
		float64(square[1])*squareLatDeg +
		float64(subsq[1])*subsqLatDeg +
		subsqLatDeg/2

	return Coordinate{Lat: lat, Lon: lon}, nil
}

// Encode renders a coordinate as a 6-character locator, conventional casing
// (upper field letters, lower subsquare letters). Coordinates outside
// ±90/±180 are rejected.
func Encode(c Coordinate) (string, error) {
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return "", eris.Wrapf(ErrInvalidLocator, "coordinate out of range: lat=%f lon=%f", c.Lat, c.Lon)
	}

	lon := c.Lon + 180
	lat := c.Lat + 90
	// The north pole and the antimeridian fall on the open edge of the last
	// cell; clamp them into it.
	if lon >= 360 {
		lon = math.Nextafter(360, 0)
	}
	if lat >= 180 {
		lat = math.Nextafter(180, 0)
	}

	b := make([]byte, 6)
	b[0] = 'A' + byte(int(lon/fieldLonDeg))
	b[1] = 'A' + byte(int(lat/fieldLatDeg))
	b[2] = '0' + byte(int(math.Mod(lon, fieldLonDeg)/squareLonDeg))
	b[3] = '0' + byte(int(math.Mod(lat, fieldLatDeg)/squareLatDeg))
	b[4] = 'a' + byte(int(math.Mod(lon, squareLonDeg)/subsqLonDeg))
	b[5] = 'a' + byte(int(math.Mod(lat, squareLatDeg)/subsqLatDeg))

	return string(b), nil
}

// DistanceKm returns the great-circle distance between two coordinates via
// the haversine formula.
func DistanceKm(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
