package recommender

import "math"

// DistanceUnit selects the output unit of Distance.
type DistanceUnit string

const (
	// Miles is the default output unit (statute miles).
	Miles DistanceUnit = "M"
	// Kilometers converts the result to kilometers.
	Kilometers DistanceUnit = "K"
	// NauticalMiles converts the result to nautical miles.
	NauticalMiles DistanceUnit = "N"
)

// Distance computes an approximate great-circle distance between two
// coordinates using the spherical law of cosines. It is only used to
// rank crews by proximity to a site, so the approximation is fine.
// Coincident points yield 0.
func Distance(lat1, lon1, lat2, lon2 float64, unit DistanceUnit) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	radLat1 := math.Pi * lat1 / 180
	radLat2 := math.Pi * lat2 / 180
	radTheta := math.Pi * (lon1 - lon2) / 180

	dist := math.Sin(radLat1)*math.Sin(radLat2) +
		math.Cos(radLat1)*math.Cos(radLat2)*math.Cos(radTheta)
	if dist > 1 {
		dist = 1
	}

	dist = math.Acos(dist)
	dist = dist * 180 / math.Pi
	dist = dist * 60 * 1.1515 // statute miles per degree

	switch unit {
	case Kilometers:
		dist *= 1.609344
	case NauticalMiles:
		dist *= 0.8684
	}

	return dist
}
