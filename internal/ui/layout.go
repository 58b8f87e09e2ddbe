package ui

import (
	"fmt"
	"image"
	"strings"

	"dmscreen/internal/dice"
)

// Action is what a panel button does when pressed.
type Action int

const (
	ActionSpawn Action = iota
	ActionRoll
	ActionClear
)

// Button is a clickable panel rectangle in panel-local pixels.
type Button struct {
	Label  string
	Action Action
	Rect   image.Rectangle
}

// Tray is the part of the dice tray the panel drives.
type Tray interface {
	Spawn(name string) (*dice.Die, error)
	Roll()
	Clear()
	Len() int
}

const (
	panelPadding   = 12
	headerBaseline = 18
	buttonHeight   = 24
	buttonGap      = 6
	dieColumns     = 4
	lineHeight     = 16
	swatchSize     = 10
	buttonsTop     = panelPadding + headerBaseline + 14
)

// LayoutButtons arranges one button per die type in a grid followed by a
// full-width Roll and Clear row, for a panel of the given width.
func LayoutButtons(width int) []Button {
	inner := width - 2*panelPadding
	if inner < dieColumns {
		return nil
	}
	cell := (inner - (dieColumns-1)*buttonGap) / dieColumns

	var out []Button
	y := buttonsTop
	for i, typ := range dice.Types() {
		col := i % dieColumns
		if i > 0 && col == 0 {
			y += buttonHeight + buttonGap
		}
		x := panelPadding + col*(cell+buttonGap)
		out = append(out, Button{
			Label:  strings.ToUpper(typ.String()[:1]) + typ.String()[1:],
			Action: ActionSpawn,
			Rect:   image.Rect(x, y, x+cell, y+buttonHeight),
		})
	}

	y += buttonHeight + 2*buttonGap
	half := (inner - buttonGap) / 2
	out = append(out,
		Button{Label: "Roll", Action: ActionRoll, Rect: image.Rect(panelPadding, y, panelPadding+half, y+buttonHeight)},
		Button{Label: "Clear", Action: ActionClear, Rect: image.Rect(width-panelPadding-half, y, width-panelPadding, y+buttonHeight)},
	)
	return out
}

// ContentTop is the first free row below the buttons.
func ContentTop(buttons []Button) int {
	top := buttonsTop
	for _, b := range buttons {
		if b.Rect.Max.Y > top {
			top = b.Rect.Max.Y
		}
	}
	return top + 2*buttonGap
}

// HitTest finds the button under a panel-local point.
func HitTest(buttons []Button, x, y int) (Button, bool) {
	for _, b := range buttons {
		if pointInRect(x, y, b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// Enabled reports whether b does anything with n dice on the tray. Roll and
// Clear need at least one die.
func Enabled(b Button, n int) bool {
	switch b.Action {
	case ActionRoll, ActionClear:
		return n > 0
	}
	return true
}

// Press applies a button to the tray. Die buttons spawn the type named by
// their lower-cased label. Disabled buttons are ignored.
func Press(t Tray, b Button) error {
	if !Enabled(b, t.Len()) {
		return nil
	}
	switch b.Action {
	case ActionSpawn:
		if _, err := t.Spawn(strings.ToLower(b.Label)); err != nil {
			return fmt.Errorf("press %s: %w", b.Label, err)
		}
	case ActionRoll:
		t.Roll()
	case ActionClear:
		t.Clear()
	}
	return nil
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
