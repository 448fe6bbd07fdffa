package projection

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"
)

// GeographicCoordinate is a position in the geographic frame, on the
// ellipsoid surface.
type GeographicCoordinate struct {
	Latitude  s1.Angle
	Longitude s1.Angle
}

// NewGeographicCoordinate returns the coordinate for a latitude and
// longitude given in degrees.
func NewGeographicCoordinate(latitude, longitude float64) GeographicCoordinate {
	return GeographicCoordinate{
		Latitude:  s1.Angle(latitude) * s1.Degree,
		Longitude: s1.Angle(longitude) * s1.Degree,
	}
}

func (c GeographicCoordinate) String() string {
	return fmt.Sprintf("(%.7f, %.7f)", c.Latitude.Degrees(), c.Longitude.Degrees())
}

// WorldCoordinate is a position in the projected frame.
type WorldCoordinate struct {
	X Meter
	Y Meter
}

func (w WorldCoordinate) String() string {
	return fmt.Sprintf("(%s, %s)", w.X, w.Y)
}

// The library gets geographic points as x = longitude, y = latitude.
func (c GeographicCoordinate) point() Point3 {
	return Point3{X: c.Longitude.Radians(), Y: c.Latitude.Radians()}
}

func geographicFromPoint(p Point3) GeographicCoordinate {
	return GeographicCoordinate{
		Latitude:  s1.Angle(p.Y) * s1.Radian,
		Longitude: s1.Angle(p.X) * s1.Radian,
	}
}

func (w WorldCoordinate) point() Point3 {
	return Point3{X: float64(w.X), Y: float64(w.Y)}
}

func worldFromPoint(p Point3) WorldCoordinate {
	return WorldCoordinate{X: Meter(p.X), Y: Meter(p.Y)}
}

// ToWorld projects c into the world frame.
func (ctx *Context) ToWorld(c GeographicCoordinate) (WorldCoordinate, error) {
	out, err := ctx.transformOne(c.point(), ctx.geographic, ctx.projected)
	if err != nil {
		return WorldCoordinate{}, errors.Wrapf(err, "to world %s", c)
	}
	return worldFromPoint(out), nil
}

// ToGeographic converts w back into the geographic frame.
func (ctx *Context) ToGeographic(w WorldCoordinate) (GeographicCoordinate, error) {
	out, err := ctx.transformOne(w.point(), ctx.projected, ctx.geographic)
	if err != nil {
		return GeographicCoordinate{}, errors.Wrapf(err, "to geographic %s", w)
	}
	return geographicFromPoint(out), nil
}

// PROJ returns exactly one point for a one-point batch that succeeds. Any
// other count means the library broke that contract, and is reported as an
// assertion failure rather than handled.
func (ctx *Context) transformOne(p Point3, source, target *Definition) (Point3, error) {
	out, err := ctx.Transform([]Point3{p}, source, target)
	if err != nil {
		return Point3{}, err
	}
	if len(out) != 1 {
		return Point3{}, errors.AssertionFailedf("one-point transform returned %d points", len(out))
	}
	return out[0], nil
}

// ToWorldBatch projects all coordinates with a single transform. It fails as
// a whole if any coordinate fails.
func (ctx *Context) ToWorldBatch(coords []GeographicCoordinate) ([]WorldCoordinate, error) {
	points := make([]Point3, len(coords))
	for i, c := range coords {
		points[i] = c.point()
	}
	out, err := ctx.Transform(points, ctx.geographic, ctx.projected)
	if err != nil {
		return nil, errors.Wrapf(err, "to world, %d coordinates", len(coords))
	}
	world := make([]WorldCoordinate, len(out))
	for i, p := range out {
		world[i] = worldFromPoint(p)
	}
	return world, nil
}

// ToGeographicBatch is the inverse of ToWorldBatch.
func (ctx *Context) ToGeographicBatch(world []WorldCoordinate) ([]GeographicCoordinate, error) {
	points := make([]Point3, len(world))
	for i, w := range world {
		points[i] = w.point()
	}
	out, err := ctx.Transform(points, ctx.projected, ctx.geographic)
	if err != nil {
		return nil, errors.Wrapf(err, "to geographic, %d coordinates", len(world))
	}
	coords := make([]GeographicCoordinate, len(out))
	for i, p := range out {
		coords[i] = geographicFromPoint(p)
	}
	return coords, nil
}
