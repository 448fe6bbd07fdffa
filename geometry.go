package projection

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
)

// ProjectGeometry projects every vertex of g, given as longitude/latitude in
// degrees, into world meters. All vertices go through one batch transform, so
// one bad vertex fails the whole geometry. The structure of g is kept.
//
// Supported types are Point, MultiPoint, LineString, MultiLineString, Ring,
// Polygon, MultiPolygon and Collection of those.
func (ctx *Context) ProjectGeometry(g orb.Geometry) (orb.Geometry, error) {
	return ctx.transformGeometry(g, true)
}

// UnprojectGeometry is the inverse of ProjectGeometry.
func (ctx *Context) UnprojectGeometry(g orb.Geometry) (orb.Geometry, error) {
	return ctx.transformGeometry(g, false)
}

func (ctx *Context) transformGeometry(g orb.Geometry, forward bool) (orb.Geometry, error) {
	var vertices []orb.Point
	if err := collect(g, &vertices); err != nil {
		return nil, err
	}

	points := make([]Point3, len(vertices))
	for i, v := range vertices {
		if forward {
			points[i] = Point3{X: DegToRad(v[0]), Y: DegToRad(v[1])}
		} else {
			points[i] = Point3{X: v[0], Y: v[1]}
		}
	}

	source, target := ctx.geographic, ctx.projected
	if !forward {
		source, target = target, source
	}
	out, err := ctx.Transform(points, source, target)
	if err != nil {
		return nil, errors.Wrapf(err, "%s with %d vertices", g.GeoJSONType(), len(vertices))
	}

	for i, p := range out {
		if forward {
			vertices[i] = orb.Point{p.X, p.Y}
		} else {
			vertices[i] = orb.Point{RadToDeg(p.X), RadToDeg(p.Y)}
		}
	}
	next := 0
	return rebuild(g, vertices, &next), nil
}

// collect appends the vertices of g in walk order.
func collect(g orb.Geometry, vertices *[]orb.Point) error {
	switch g := g.(type) {
	case orb.Point:
		*vertices = append(*vertices, g)
	case orb.MultiPoint:
		*vertices = append(*vertices, g...)
	case orb.LineString:
		*vertices = append(*vertices, g...)
	case orb.Ring:
		*vertices = append(*vertices, g...)
	case orb.MultiLineString:
		for _, ls := range g {
			*vertices = append(*vertices, ls...)
		}
	case orb.Polygon:
		for _, r := range g {
			*vertices = append(*vertices, r...)
		}
	case orb.MultiPolygon:
		for _, p := range g {
			for _, r := range p {
				*vertices = append(*vertices, r...)
			}
		}
	case orb.Collection:
		for _, c := range g {
			if err := collect(c, vertices); err != nil {
				return err
			}
		}
	default:
		if g == nil {
			return errors.Wrap(ErrUnsupportedGeometry, "nil geometry")
		}
		return errors.Wrapf(ErrUnsupportedGeometry, "%T", g)
	}
	return nil
}

// rebuild walks g in the same order as collect, taking vertices from next on.
func rebuild(g orb.Geometry, vertices []orb.Point, next *int) orb.Geometry {
	take := func(n int) []orb.Point {
		s := make([]orb.Point, n)
		copy(s, vertices[*next:*next+n])
		*next += n
		return s
	}

	switch g := g.(type) {
	case orb.Point:
		return take(1)[0]
	case orb.MultiPoint:
		return orb.MultiPoint(take(len(g)))
	case orb.LineString:
		return orb.LineString(take(len(g)))
	case orb.Ring:
		return orb.Ring(take(len(g)))
	case orb.MultiLineString:
		mls := make(orb.MultiLineString, len(g))
		for i, ls := range g {
			mls[i] = take(len(ls))
		}
		return mls
	case orb.Polygon:
		return rebuildPolygon(g, take)
	case orb.MultiPolygon:
		mp := make(orb.MultiPolygon, len(g))
		for i, p := range g {
			mp[i] = rebuildPolygon(p, take)
		}
		return mp
	case orb.Collection:
		c := make(orb.Collection, len(g))
		for i, sub := range g {
			c[i] = rebuild(sub, vertices, next)
		}
		return c
	}
	return nil
}

func rebuildPolygon(p orb.Polygon, take func(int) []orb.Point) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, r := range p {
		out[i] = take(len(r))
	}
	return out
}
