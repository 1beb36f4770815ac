package gosiebsp

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
)

// LoadPolygonsFile reads polygons from path. Files ending in .dxf are read as
// 3DFACE entities, anything else as the line-per-polygon text format.
func LoadPolygonsFile(path string) ([]*Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("opening polygon file failed").
			WithTag("path", path).
			Wrap(err)
	}
	defer f.Close()

	var polygons []*Polygon
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dxf":
		polygons, err = LoadPolygonsDXF(f)
	default:
		polygons, err = LoadPolygons(f)
	}
	if err != nil {
		return nil, errors.New("loading polygons failed").
			WithType(errors.Type(err)).
			WithTag("path", path).
			Wrap(err)
	}

	logs.WithTag("path", path).
		WithTag("polygons", len(polygons)).
		Info("polygons loaded")
	return polygons, nil
}

// LoadPolygons reads one polygon per line, written as
//
//	(x, y, z), (x, y, z), (x, y, z)
//
// Lines starting with '#' and blank lines are skipped, and an inline '#'
// starts a comment.
func LoadPolygons(r io.Reader) ([]*Polygon, error) {
	var store PolygonStore
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			continue
		}
		line, _, _ = strings.Cut(line, "#")
		if strings.TrimSpace(line) == "" {
			continue
		}

		points, err := parsePoints(line)
		if err != nil {
			return nil, errors.New("parsing polygon failed").
				WithType(ErrTypeParse).
				WithTag("line", lineNo).
				Wrap(err)
		}

		polygon, err := NewPolygon(points)
		if err != nil {
			return nil, errors.New("invalid polygon").
				WithType(ErrTypeInvalidGeometry).
				WithTag("line", lineNo).
				Wrap(err)
		}
		store.Add(polygon)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.New("reading polygons failed").
			WithType(ErrTypeParse).
			Wrap(err)
	}
	return store.Polygons(), nil
}

var pointSeparator = regexp.MustCompile(`\)\s*,\s*\(`)

func parsePoints(line string) ([]Vector3, error) {
	var points []Vector3
	for _, pointStr := range pointSeparator.Split(line, -1) {
		pointStr = strings.NewReplacer("(", "", ")", "").Replace(pointStr)

		coords := strings.Split(pointStr, ",")
		if len(coords) != 3 {
			return nil, errors.Newf("point %q needs 3 coordinates", strings.TrimSpace(pointStr)).
				WithTag("coordinates", len(coords))
		}

		var xyz [3]float64
		for i, c := range coords {
			v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
			if err != nil {
				return nil, errors.Newf("bad coordinate %q", strings.TrimSpace(c)).Wrap(err)
			}
			xyz[i] = v
		}
		points = append(points, NewVector3(xyz[0], xyz[1], xyz[2]))
	}
	return points, nil
}

// WritePolygons writes polygons in the format LoadPolygons reads.
func WritePolygons(w io.Writer, polygons []*Polygon) error {
	bw := bufio.NewWriter(w)
	for _, p := range polygons {
		for i, v := range p.vertices {
			if i > 0 {
				bw.WriteString(", ")
			}
			bw.WriteString(v.String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DXFPolygonColor is the colour given to faces read from DXF files.
var DXFPolygonColor = DefaultPolygonColor

// LoadPolygonsDXF reads 3DFACE entities. Each face is read as the three lines
// after the marker, then four x/y/z vertices whose values alternate with
// group-code lines. A fourth vertex equal to the third is a triangle.
func LoadPolygonsDXF(r io.Reader) ([]*Polygon, error) {
	var store PolygonStore
	scanner := bufio.NewScanner(r)
	lineNo := 0

	scan := func() bool {
		if scanner.Scan() {
			lineNo++
			return true
		}
		return false
	}

	readFloatLine := func() (float64, error) {
		if !scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
	}

	parseErr := func(msg string, err error) error {
		return errors.New(msg).
			WithType(ErrTypeParse).
			WithTag("line", lineNo).
			Wrap(err)
	}

	for scan() {
		if !strings.HasPrefix(strings.TrimSpace(scanner.Text()), "3DFACE") {
			continue
		}

		for i := 0; i < 3; i++ {
			if !scan() {
				return nil, parseErr("unexpected end of file in 3DFACE header", io.ErrUnexpectedEOF)
			}
		}

		vertices := make([]Vector3, 0, 4)
		for c := 0; c < 4; c++ {
			var xyz [3]float64
			for axis := range xyz {
				v, err := readFloatLine()
				if err != nil {
					return nil, parseErr("reading 3DFACE vertex failed", err)
				}
				xyz[axis] = v
				// group code of the next value, or of the next entity
				scan()
			}
			vertices = append(vertices, NewVector3(xyz[0], xyz[1], xyz[2]))
		}
		if vertices[3] == vertices[2] {
			vertices = vertices[:3]
		}

		polygon, err := NewPolygon(vertices)
		if err != nil {
			return nil, err
		}
		store.Add(polygon.WithColor(DXFPolygonColor))
	}

	if err := scanner.Err(); err != nil {
		return nil, parseErr("reading dxf failed", err)
	}
	return store.Polygons(), nil
}

// WritePolygonsDXF writes polygons as 3DFACE entities. A 3DFACE holds at
// most four corners, so larger polygons are written as a fan of triangles.
func WritePolygonsDXF(w io.Writer, polygons []*Polygon) error {
	bw := bufio.NewWriter(w)

	writePair := func(code int, value string) {
		bw.WriteString(strconv.Itoa(code))
		bw.WriteByte('\n')
		bw.WriteString(value)
		bw.WriteByte('\n')
	}
	formatFloat := func(f float64) string {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	writeFace := func(corners [4]Vector3) {
		writePair(0, "3DFACE")
		writePair(8, "0")
		for i, c := range corners {
			writePair(10+i, formatFloat(c.X))
			writePair(20+i, formatFloat(c.Y))
			writePair(30+i, formatFloat(c.Z))
		}
	}

	writePair(0, "SECTION")
	writePair(2, "HEADER")
	writePair(0, "ENDSEC")
	writePair(0, "SECTION")
	writePair(2, "ENTITIES")

	for _, p := range polygons {
		vs := p.vertices
		switch len(vs) {
		case 3:
			writeFace([4]Vector3{vs[0], vs[1], vs[2], vs[2]})
		case 4:
			writeFace([4]Vector3{vs[0], vs[1], vs[2], vs[3]})
		default:
			for i := 1; i+1 < len(vs); i++ {
				writeFace([4]Vector3{vs[0], vs[i], vs[i+1], vs[i+1]})
			}
		}
	}

	writePair(0, "ENDSEC")
	writePair(0, "EOF")
	return bw.Flush()
}
