/*
Package projection converts points between a geographic frame (latitude and
longitude on the WGS84 ellipsoid) and a projected planar "world" frame (x and
y in meters), using the Cartographic Projections Library PROJ.

See: https://proj.org/

This package needs PROJ version 8 or above.

A Context holds the two projection definitions for its whole lifetime:

	ctx, err := projection.NewDefaultContext()
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Close()

	w, err := ctx.ToWorld(projection.NewGeographicCoordinate(44.8, 20.45))
	if err != nil {
		// a *TransformError, the coordinate could not be projected
	}

A Context is not safe for concurrent use. PROJ objects keep per-object error
state, so each goroutine that converts coordinates needs its own Context.
*/
package projection
