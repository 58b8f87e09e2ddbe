package dice

import (
	"fmt"
	"strconv"
	"strings"

	"dmscreen/internal/core"
)

// Snapshot summarises the tray for the HUD.
func (t *Tray) Snapshot() core.Snapshot {
	tray := core.StatGroup{
		Name: "Tray",
		Stats: []core.Stat{
			{Key: "dice", Label: "Dice", Value: strconv.Itoa(len(t.dice))},
			{Key: "bodies", Label: "Bodies", Value: strconv.Itoa(t.world.Len())},
			{Key: "time", Label: "Time", Value: fmt.Sprintf("%.1fs", t.sched.Now().Seconds())},
		},
	}
	if t.hovered != nil {
		tray.Stats = append(tray.Stats, core.Stat{
			Key: "hover", Label: "Hover", Value: t.hovered.Label(),
		})
	}

	roll := core.StatGroup{Name: "Roll"}
	switch {
	case t.Rolling():
		roll.Stats = append(roll.Stats, core.Stat{Key: "total", Label: "Total", Value: "rolling"})
	case t.result.Shown:
		roll.Stats = append(roll.Stats,
			core.Stat{Key: "total", Label: "Total", Value: strconv.Itoa(t.result.Total)},
			core.Stat{Key: "rolls", Label: "Rolls", Value: t.result.String()},
		)
	default:
		roll.Stats = append(roll.Stats, core.Stat{Key: "total", Label: "Total", Value: "-"})
	}
	return core.Snapshot{Groups: []core.StatGroup{tray, roll}}
}

// Label renders a die as "#id dN".
func (d *Die) Label() string {
	return fmt.Sprintf("#%d %s", d.ID, d.Type)
}

// String lists each roll as "dN=v" separated by spaces.
func (r Result) String() string {
	parts := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		parts[i] = fmt.Sprintf("%s=%d", roll.Type, roll.Value)
	}
	return strings.Join(parts, " ")
}
