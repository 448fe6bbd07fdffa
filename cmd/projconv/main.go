// Command projconv converts coordinates between the geographic frame and the
// world frame.
//
// In text mode every input line holds "lat lon" (or "x y" with -inverse),
// separated by blanks or a comma. Lines that are empty or start with # are
// copied through. With -geojson the input is a GeoJSON FeatureCollection
// whose geometries are all converted.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/labstack/gommon/log"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/pebbe/projection"
	"github.com/pebbe/projection/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("projconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inverse := fs.Bool("inverse", false, "convert world x y to lat lon")
	geoJSON := fs.Bool("geojson", false, "read and write a GeoJSON FeatureCollection")
	envFile := fs.String("env", ".env", "optional file with PROJCONV_* settings")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New("projconv")
	logger.SetOutput(stderr)
	logger.SetHeader("${time_rfc3339} ${level} ${prefix}")

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.Errorf("config: %v", err)
		return 2
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, err := projection.NewContext(cfg.Geographic, cfg.Projected, projection.WithLogger(logger))
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	defer func() {
		ctx.Close()
		logger.Debugf("live definitions after close: %d", projection.LiveDefinitions())
	}()

	if *geoJSON {
		if err := convertGeoJSON(ctx, stdin, stdout, *inverse); err != nil {
			logger.Errorf("%v", err)
			return 1
		}
		return 0
	}

	failed, err := convertLines(ctx, stdin, stdout, *inverse, cfg.Precision, logger)
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	if failed > 0 {
		logger.Warnf("%d lines could not be converted", failed)
		return 1
	}
	return 0
}

type warner interface {
	Warnf(format string, args ...interface{})
}

// convertLines converts r line by line. A line that fails is reported and
// counted, the remaining lines are still converted.
func convertLines(ctx *projection.Context, r io.Reader, w io.Writer, inverse bool, precision int, logger warner) (int, error) {
	failed := 0
	lineno := 0
	out := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			fmt.Fprintln(out, line)
			continue
		}

		a, b, err := parsePair(line)
		if err == nil {
			if inverse {
				var c projection.GeographicCoordinate
				c, err = ctx.ToGeographic(projection.WorldCoordinate{X: projection.Meter(a), Y: projection.Meter(b)})
				if err == nil {
					fmt.Fprintf(out, "%.*f %.*f\n", precision+6, c.Latitude.Degrees(), precision+6, c.Longitude.Degrees())
				}
			} else {
				var wc projection.WorldCoordinate
				wc, err = ctx.ToWorld(projection.NewGeographicCoordinate(a, b))
				if err == nil {
					fmt.Fprintf(out, "%.*f %.*f\n", precision, float64(wc.X), precision, float64(wc.Y))
				}
			}
		}
		if err != nil {
			failed++
			logger.Warnf("line %d: %v", lineno, err)
			fmt.Fprintln(out, "error")
		}
	}
	flushErr := out.Flush()
	if err := scanner.Err(); err != nil {
		return failed, errors.Wrap(err, "reading input")
	}
	return failed, errors.Wrap(flushErr, "writing output")
}

func parsePair(line string) (float64, float64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, errors.Newf("want two numbers, got %d fields", len(fields))
	}
	a, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "first value")
	}
	b, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "second value")
	}
	return a, b, nil
}

func convertGeoJSON(ctx *projection.Context, r io.Reader, w io.Writer, inverse bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return errors.Wrap(err, "parsing GeoJSON")
	}

	// Bounding boxes present in the input are recomputed in the new frame.
	var bound orb.Bound
	haveBound := false
	for i, f := range fc.Features {
		if f.Geometry == nil {
			f.BBox = nil
			continue
		}
		if inverse {
			f.Geometry, err = ctx.UnprojectGeometry(f.Geometry)
		} else {
			f.Geometry, err = ctx.ProjectGeometry(f.Geometry)
		}
		if err != nil {
			return errors.Wrapf(err, "feature %d", i)
		}

		b := f.Geometry.Bound()
		if f.BBox != nil {
			f.BBox = geojson.NewBBox(b)
		}
		if haveBound {
			bound = bound.Union(b)
		} else {
			bound, haveBound = b, true
		}
	}
	if fc.BBox != nil {
		if haveBound {
			fc.BBox = geojson.NewBBox(bound)
		} else {
			fc.BBox = nil
		}
	}

	out, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding GeoJSON")
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
