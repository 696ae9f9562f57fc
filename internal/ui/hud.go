//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const lineHeight = 16

// Source is what the HUD reads from the game each frame.
type Source interface {
	Snapshot() snake.Snapshot
	Parameters() core.ParameterSnapshot
}

// HUD renders the status panel to the right of the playfield and the game
// over banner on top of it.
type HUD struct {
	src        Source
	width      int
	panel      *ebiten.Image
	lastHeight int

	lines  []string
	frozen bool
	paused bool
}

// NewHUD constructs a HUD for the provided game and panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached text from the game.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	snap := h.src.Snapshot()
	h.frozen = snap.Frozen
	h.paused = paused

	h.lines = h.lines[:0]
	h.lines = append(h.lines,
		"snake",
		fmt.Sprintf("length %d", len(snap.Body)+1),
		fmt.Sprintf("heading %s", snap.Direction),
		"",
	)
	for _, group := range h.src.Parameters().Groups {
		h.lines = append(h.lines, group.Name)
		for _, p := range group.Params {
			h.lines = append(h.lines, fmt.Sprintf(" %s: %s", p.Label, p.Value))
		}
	}
}

// Draw paints the panel at offsetX and, when the game is frozen or paused, a
// banner over the playfield.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil {
		return
	}
	switch {
	case h.frozen:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", 8, 8)
	case h.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - space to resume", 8, 8)
	}

	if h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for i, line := range h.lines {
		ebitenutil.DebugPrintAt(h.panel, line, 8, 8+i*lineHeight)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
