package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsFromRows(t *testing.T) {
	rows := []any{
		map[string]any{"label": "Jan", "value": 10.0},
		map[string]any{"label": "Feb", "value": 20},
		"not a map",
		map[string]any{"label": "Mar", "value": "bad"},
	}

	points := PointsFromRows(rows)

	require.Len(t, points, 3)
	assert.Equal(t, Point{Label: "Jan", Value: 10}, points[0])
	assert.Equal(t, Point{Label: "Feb", Value: 20}, points[1])
	assert.Equal(t, Point{Label: "Mar", Value: 0}, points[2])
}

func TestBuild_Bars(t *testing.T) {
	points := []Point{
		{Label: "A", Value: 50},
		{Label: "B", Value: 100},
	}

	geom := Build(points, Bar, nil)

	require.Len(t, geom.Bars, 2)
	assert.Equal(t, 0.5, geom.Bars[0].HeightFraction)
	assert.Equal(t, 1.0, geom.Bars[1].HeightFraction)
	assert.Equal(t, DefaultColors[0], geom.Bars[0].Color)
	assert.Equal(t, DefaultColors[1], geom.Bars[1].Color)
}

func TestBuild_Bars_AllZero(t *testing.T) {
	geom := Build([]Point{{Label: "A"}, {Label: "B"}}, Bar, nil)

	for _, bar := range geom.Bars {
		assert.Equal(t, 0.0, bar.HeightFraction)
	}
}

func TestBuild_Line(t *testing.T) {
	points := []Point{
		{Label: "A", Value: 0},
		{Label: "B", Value: 50},
		{Label: "C", Value: 100},
	}

	geom := Build(points, Line, nil)

	require.Len(t, geom.Points, 3)
	assert.Equal(t, 0.0, geom.Points[0].X)
	assert.Equal(t, 50.0, geom.Points[1].X)
	assert.Equal(t, 100.0, geom.Points[2].X)

	// y grows downward: the max value sits at the top.
	assert.Equal(t, 100.0, geom.Points[0].Y)
	assert.Equal(t, 50.0, geom.Points[1].Y)
	assert.Equal(t, 0.0, geom.Points[2].Y)
}

func TestBuild_Line_SinglePoint(t *testing.T) {
	geom := Build([]Point{{Label: "only", Value: 5}}, Line, nil)

	require.Len(t, geom.Points, 1)
	assert.Equal(t, 0.0, geom.Points[0].X)
}

func TestBuild_Pie_AnglesSumTo360(t *testing.T) {
	points := []Point{
		{Label: "A", Value: 1},
		{Label: "B", Value: 2},
		{Label: "C", Value: 3},
		{Label: "D", Value: 4},
	}

	geom := Build(points, Pie, nil)
	require.Len(t, geom.Slices, 4)

	total := 0.0
	for i, slice := range geom.Slices {
		total += slice.Angle

		if i > 0 {
			prev := geom.Slices[i-1]
			assert.InDelta(t, prev.StartAngle+prev.Angle, slice.StartAngle, 1e-9)
		}
	}

	assert.InDelta(t, 360.0, total, 1e-9)
}

func TestBuild_Pie_LargeArc(t *testing.T) {
	geom := Build([]Point{{Label: "big", Value: 3}, {Label: "small", Value: 1}}, Pie, nil)

	require.Len(t, geom.Slices, 2)
	assert.True(t, geom.Slices[0].LargeArc)
	assert.False(t, geom.Slices[1].LargeArc)
}

func TestBuild_DoughnutRadii(t *testing.T) {
	pie := Build([]Point{{Label: "A", Value: 1}}, Pie, nil)
	doughnut := Build([]Point{{Label: "A", Value: 1}}, Doughnut, nil)

	assert.Equal(t, 50.0, pie.Slices[0].OuterRadius)
	assert.Equal(t, 0.0, pie.Slices[0].InnerRadius)
	assert.Equal(t, 40.0, doughnut.Slices[0].OuterRadius)
	assert.Equal(t, 20.0, doughnut.Slices[0].InnerRadius)
}

func TestBuild_ColorsCycle(t *testing.T) {
	points := make([]Point, len(DefaultColors)+2)
	for i := range points {
		points[i] = Point{Label: "p", Value: 1}
	}

	geom := Build(points, Bar, nil)

	assert.Equal(t, DefaultColors[0], geom.Bars[len(DefaultColors)].Color)
	assert.Equal(t, DefaultColors[1], geom.Bars[len(DefaultColors)+1].Color)
}

func TestBuild_CustomColors(t *testing.T) {
	geom := Build([]Point{{Label: "A", Value: 1}}, Bar, []string{"#123456"})

	assert.Equal(t, "#123456", geom.Bars[0].Color)
}

func TestBuild_UnknownTypeFallsBackToBar(t *testing.T) {
	geom := Build([]Point{{Label: "A", Value: 1}}, Type("sparkline"), nil)

	assert.Equal(t, Bar, geom.Type)
	assert.Len(t, geom.Bars, 1)
}
