//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"log"

	"dmscreen/internal/core"
	"dmscreen/internal/dice"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders the dice controls, the result and the dice listing to the right
// of the tray.
type HUD struct {
	tray       *dice.Tray
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.Snapshot

	buttons      []Button
	contentTop   int
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided tray and panel width.
func NewHUD(tray *dice.Tray, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{tray: tray, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
		h.buttons = LayoutButtons(width)
		h.contentTop = ContentTop(h.buttons)
	}
	return h
}

// Update handles panel clicks and refreshes the cached snapshot.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.handleInput()
	h.snapshot = h.tray.Snapshot()
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	b, ok := HitTest(h.buttons, mx-h.panelOffsetX, my)
	if !ok {
		return
	}
	if err := Press(h.tray, b); err != nil {
		log.Printf("[ui] %v", err)
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, "Dice Tray", face, panelPadding, panelPadding+headerBaseline, titleColor)
	for _, b := range h.buttons {
		h.drawButton(b.Rect, b.Label, h.enabled(b))
	}

	y := h.contentTop + lineHeight
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y, titleColor)
		y += lineHeight
		for _, st := range g.Stats {
			text.Draw(h.panel, st.Label, face, panelPadding, y, mutedColor)
			value := st.Value
			bounds := text.BoundString(face, value)
			x := h.width - panelPadding - bounds.Dx()
			if x < panelPadding+60 {
				x = panelPadding + 60
			}
			text.Draw(h.panel, value, face, x, y, labelColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}
	h.drawListing(y, height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) enabled(b Button) bool { return Enabled(b, h.tray.Len()) }

// drawListing prints one row per die with its colour swatch until the panel
// runs out of room.
func (h *HUD) drawListing(top, height int) {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Dice", face, panelPadding, top, titleColor)
	y := top + lineHeight
	list := h.tray.Dice()
	if len(list) == 0 {
		text.Draw(h.panel, "Tray is empty", face, panelPadding, y, mutedColor)
		return
	}
	hovered := h.tray.Hovered()
	for i, d := range list {
		if y > height-panelPadding {
			text.Draw(h.panel, "...", face, panelPadding, y-lineHeight/2, mutedColor)
			return
		}
		vector.DrawFilledRect(h.panel, panelPadding, float32(y-swatchSize), swatchSize, swatchSize, d.Color, false)
		if d == hovered {
			vector.StrokeRect(h.panel, panelPadding-1, float32(y-swatchSize-1), swatchSize+2, swatchSize+2, 1, labelColor, false)
		}
		col := labelColor
		if i%2 == 1 {
			col = mutedColor
		}
		text.Draw(h.panel, d.Label(), face, panelPadding+swatchSize+buttonGap, y, col)
		y += lineHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
