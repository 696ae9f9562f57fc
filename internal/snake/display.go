package snake

import (
	"image/color"

	"gridsnake/internal/core"
)

// Display values written by Rasterize. They index Palette.
const (
	DisplayEmpty uint8 = iota
	DisplayWall
	DisplayBody
	DisplayHead
	DisplayApple
	DisplayCrash
)

var snakePalette = []color.RGBA{
	DisplayEmpty: {R: 24, G: 24, B: 28, A: 255},
	DisplayWall:  {R: 90, G: 90, B: 96, A: 255},
	DisplayBody:  {R: 60, G: 180, B: 100, A: 255},
	DisplayHead:  {R: 80, G: 220, B: 120, A: 255},
	DisplayApple: {R: 230, G: 70, B: 70, A: 255},
	DisplayCrash: {R: 255, G: 200, B: 40, A: 255},
}

// Palette returns the colours for each display value.
func Palette() []color.RGBA { return snakePalette }

// DisplaySize returns the grid dimensions Rasterize expects: the playfield
// plus its wall ring.
func DisplaySize(s core.Size) (int, int) { return s.W + 2, s.H + 2 }

// Rasterize paints snap into grid, which must be DisplaySize(snap.Size).
// The apple is drawn first so a head or body on top of it stays visible.
// A frozen game marks the head as DisplayCrash, even when it sits on a wall.
func Rasterize(snap Snapshot, grid *core.ByteGrid) {
	grid.Clear()
	w, h := DisplaySize(snap.Size)
	for x := 0; x < w; x++ {
		grid.Set(x, 0, DisplayWall)
		grid.Set(x, h-1, DisplayWall)
	}
	for y := 0; y < h; y++ {
		grid.Set(0, y, DisplayWall)
		grid.Set(w-1, y, DisplayWall)
	}

	grid.Set(snap.Apple.X, snap.Apple.Y, DisplayApple)
	for _, c := range snap.Body {
		grid.Set(c.X, c.Y, DisplayBody)
	}
	head := DisplayHead
	if snap.Frozen {
		head = DisplayCrash
	}
	grid.Set(snap.Head.X, snap.Head.Y, head)
}
