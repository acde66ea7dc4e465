// Package chart computes vector geometry for chart widgets. Rendering the
// same rows with the same type and palette is deterministic down to the
// individual coordinates, so builder canvas, preview and published output
// always agree.
package chart

import "encoding/json"

// Type is the chart flavor a chart widget renders.
type Type string

const (
	Bar      Type = "bar"
	Line     Type = "line"
	Pie      Type = "pie"
	Doughnut Type = "doughnut"
)

// DefaultColors is the palette applied when the widget configures none.
var DefaultColors = []string{"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6", "#06b6d4"}

// Point is one chart datum after field mapping.
type Point struct {
	Label string
	Value float64
}

// BarGeom is one bar, height as a fraction of the tallest value.
type BarGeom struct {
	Label          string
	Value          float64
	HeightFraction float64
	Color          string
}

// LinePoint is one vertex of a line chart in a 0-100 coordinate space with
// the y axis growing downward.
type LinePoint struct {
	Label string
	X     float64
	Y     float64
}

// SliceGeom is one pie or doughnut slice. Angles are degrees; StartAngle
// accumulates in input order beginning at zero.
type SliceGeom struct {
	Label       string
	Value       float64
	StartAngle  float64
	Angle       float64
	LargeArc    bool
	Color       string
	InnerRadius float64
	OuterRadius float64
}

// Geometry is the full output for one chart widget; exactly one of the
// shape slices is populated, matching Type.
type Geometry struct {
	Type   Type
	Bars   []BarGeom
	Points []LinePoint
	Slices []SliceGeom
}

// PointsFromRows maps resolved binding rows (maps with "label" and "value"
// keys) into chart points. Non-numeric values count as zero.
func PointsFromRows(rows []any) []Point {
	points := make([]Point, 0, len(rows))

	for _, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			continue
		}

		label, _ := m["label"].(string)
		points = append(points, Point{Label: label, Value: toFloat(m["value"])})
	}

	return points
}

// Build computes geometry for the given points. An empty or nil color
// palette falls back to DefaultColors; colors cycle when there are more
// points than colors.
func Build(points []Point, chartType Type, colors []string) Geometry {
	if len(colors) == 0 {
		colors = DefaultColors
	}

	switch chartType {
	case Line:
		return Geometry{Type: Line, Points: linePoints(points)}
	case Pie, Doughnut:
		return Geometry{Type: chartType, Slices: slices(points, chartType, colors)}
	default:
		return Geometry{Type: Bar, Bars: bars(points, colors)}
	}
}

func bars(points []Point, colors []string) []BarGeom {
	maxValue := 0.0
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	out := make([]BarGeom, len(points))

	for i, p := range points {
		fraction := 0.0
		if maxValue > 0 {
			fraction = p.Value / maxValue
		}

		out[i] = BarGeom{
			Label:          p.Label,
			Value:          p.Value,
			HeightFraction: fraction,
			Color:          colors[i%len(colors)],
		}
	}

	return out
}

func linePoints(points []Point) []LinePoint {
	maxValue := 0.0
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	out := make([]LinePoint, len(points))

	for i, p := range points {
		x := 0.0
		if len(points) > 1 {
			x = float64(i) / float64(len(points)-1) * 100
		}

		y := 100.0
		if maxValue > 0 {
			y = 100 - p.Value/maxValue*100
		}

		out[i] = LinePoint{Label: p.Label, X: x, Y: y}
	}

	return out
}

func slices(points []Point, chartType Type, colors []string) []SliceGeom {
	total := 0.0
	for _, p := range points {
		total += p.Value
	}

	outer, inner := 50.0, 0.0
	if chartType == Doughnut {
		outer, inner = 40.0, 20.0
	}

	out := make([]SliceGeom, 0, len(points))
	currentAngle := 0.0

	for i, p := range points {
		angle := 0.0
		if total > 0 {
			angle = p.Value / total * 360
		}

		out = append(out, SliceGeom{
			Label:       p.Label,
			Value:       p.Value,
			StartAngle:  currentAngle,
			Angle:       angle,
			LargeArc:    angle > 180,
			Color:       colors[i%len(colors)],
			InnerRadius: inner,
			OuterRadius: outer,
		})
		currentAngle += angle
	}

	return out
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()

		return f
	default:
		return 0
	}
}
