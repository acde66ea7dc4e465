// Package layout implements the grid layout engine: snap-to-grid,
// collision-free default drop placement, keyboard nudges, drag clamping and
// the pixel/grid conversions used at serialization boundaries.
//
// Interactive positioning stays in pixel space; grid quantization happens
// only when a page is saved or loaded.
package layout

import (
	"math"

	"github.com/pageforge/pageforge/pkg/models"
)

const (
	// CanvasGridSize is the snap grid used while editing.
	CanvasGridSize = 20

	// Stacking defaults for palette drops on a non-empty canvas.
	firstDropX   = 50
	firstDropY   = 100
	verticalGap  = 80
	nudgeStep    = 1
	nudgeStepBig = 10
)

// SnapToGrid rounds both coordinates to the nearest multiple of gridSize.
// Disabled or non-positive grids return the input unchanged.
func SnapToGrid(x, y float64, gridSize int, enabled bool) (float64, float64) {
	if !enabled || gridSize <= 0 {
		return x, y
	}

	g := float64(gridSize)

	return math.Round(x/g) * g, math.Round(y/g) * g
}

// NextDropPosition picks the pixel position for a widget dropped from the
// palette. Navbars anchor at the top-left corner; everything else stacks
// below the lowest widget with a fixed gap, starting at (50,100) on an
// empty canvas.
func NextDropPosition(widgets []*models.Widget, widgetType models.WidgetType) (float64, float64) {
	if widgetType == models.WidgetNavbar {
		return 0, 0
	}

	x, y := float64(firstDropX), float64(firstDropY)

	if len(widgets) > 0 {
		lowest := widgets[0].Position.Y
		for _, w := range widgets[1:] {
			if w.Position.Y > lowest {
				lowest = w.Position.Y
			}
		}

		y = lowest + verticalGap
	}

	return SnapToGrid(x, y, CanvasGridSize, true)
}

// Direction is an arrow-key nudge direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Nudge moves a position by one step (ten with the large modifier),
// clamping both coordinates at zero so widgets never leave the canvas at
// the top or left edge.
func Nudge(pos models.Position, dir Direction, large bool) models.Position {
	step := float64(nudgeStep)
	if large {
		step = nudgeStepBig
	}

	switch dir {
	case Up:
		pos.Y -= step
	case Down:
		pos.Y += step
	case Left:
		pos.X -= step
	case Right:
		pos.X += step
	}

	pos.X = math.Max(0, pos.X)
	pos.Y = math.Max(0, pos.Y)

	return pos
}

// ClampToCanvas constrains a dragged position: the left edge stays on
// canvas and the widget stays within the visible width; the vertical
// coordinate only clamps at zero (the canvas grows downward).
func ClampToCanvas(pos models.Position, canvasWidth, widgetWidth float64) models.Position {
	maxX := canvasWidth - widgetWidth
	if maxX < 0 {
		maxX = 0
	}

	pos.X = math.Max(0, math.Min(pos.X, maxX))
	pos.Y = math.Max(0, pos.Y)

	return pos
}

// PixelToGrid converts a pixel coordinate to grid units (floor division by
// the fixed cell size). Used only when serializing.
func PixelToGrid(px float64) int {
	return int(math.Floor(px / models.CellSize))
}

// GridToPixel converts grid units back to pixels.
func GridToPixel(units int) float64 {
	return float64(units * models.CellSize)
}

// RectFromPixels derives the persisted grid rectangle from an edit-time
// pixel placement. Width and height are at least one cell.
func RectFromPixels(pos models.Position, size models.Size) models.LayoutRect {
	one := 1

	w := PixelToGrid(size.Width)
	if w < 1 {
		w = 1
	}

	h := PixelToGrid(size.Height)
	if h < 1 {
		h = 1
	}

	return models.LayoutRect{
		X:    PixelToGrid(pos.X),
		Y:    PixelToGrid(pos.Y),
		W:    w,
		H:    h,
		MinW: &one,
		MinH: &one,
	}
}

// PixelsFromRect reconstructs the edit-time pixel placement from a
// persisted grid rectangle.
func PixelsFromRect(rect models.LayoutRect) (models.Position, models.Size) {
	w := rect.W
	if w < 1 {
		w = 1
	}

	h := rect.H
	if h < 1 {
		h = 1
	}

	pos := models.Position{X: GridToPixel(rect.X), Y: GridToPixel(rect.Y)}
	size := models.Size{Width: GridToPixel(w), Height: GridToPixel(h)}

	return pos, size
}
