package projection

/*
#include "proj_go.h"
*/
import "C"

import (
	"runtime"
)

// Point3 is a point in the units of the definition it is interpreted under:
// radians for a geographic definition (X is longitude, Y is latitude),
// meters for a projected one.
type Point3 struct {
	X, Y, Z float64
}

/*
Transform converts points from source to target in a single PROJ call.

Point i of the result corresponds to point i of the input. An empty input
gives an empty result without calling PROJ. If PROJ reports an error for any
point, the whole batch fails with a *TransformError and no points are
returned.

Both definitions must belong to ctx. Each definition is applied on its own:
the source is inverted down to geodetic coordinates and the target applied
forward, so a datum shift between the two (+datum, +towgs84, +nadgrids) is
not performed. Both definitions have to share a datum.
*/
func (ctx *Context) Transform(points []Point3, source, target *Definition) ([]Point3, error) {
	if !ctx.opened {
		return nil, ErrContextClosed
	}
	if source == nil || target == nil || source.owner != ctx.id || target.owner != ctx.id {
		return nil, ErrForeignDefinition
	}

	n := len(points)
	if n == 0 {
		return []Point3{}, nil
	}

	xs := make([]C.double, n)
	ys := make([]C.double, n)
	zs := make([]C.double, n)
	for i, p := range points {
		xs[i] = C.double(p.X)
		ys[i] = C.double(p.Y)
		zs[i] = C.double(p.Z)
	}

	e := C.batch_transform(source.pj, target.pj, C.size_t(n), &xs[0], &ys[0], &zs[0])
	runtime.KeepAlive(ctx)
	if e != 0 {
		return nil, &TransformError{
			Code:    int(e),
			Message: C.GoString(C.errno_string(ctx.pj_context, e)),
		}
	}

	out := make([]Point3, n)
	for i := range out {
		out[i] = Point3{
			X: float64(xs[i]),
			Y: float64(ys[i]),
			Z: float64(zs[i]),
		}
	}
	return out, nil
}
