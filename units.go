package projection

import (
	"strconv"

	"github.com/golang/geo/s1"
)

// Meter is a length in meters.
type Meter float64

func (m Meter) String() string {
	return strconv.FormatFloat(float64(m), 'f', 3, 64) + "m"
}

// Convert degrees to radians
func DegToRad(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// Convert radians to degrees
func RadToDeg(rad float64) float64 {
	return (s1.Angle(rad) * s1.Radian).Degrees()
}
