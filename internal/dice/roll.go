package dice

import "github.com/go-gl/mathgl/mgl64"

const (
	// rollForce is the span of the horizontal launch speed.
	rollForce = 20.0
	rollLift  = 3.0
	// rollTorque is the span of the spin on each axis.
	rollTorque = 30.0
)

// Roll is one die's contribution to a result.
type Roll struct {
	DieID int
	Type  Type
	Value int
}

// Result is the outcome of the most recent settled roll.
type Result struct {
	Total int
	Rolls []Roll
	// Shown is false until a roll settles and again after Clear.
	Shown bool
}

// Roll launches every die with a fresh random velocity and spin and schedules
// the result for SettleDelay later. A roll issued before the previous one
// settled supersedes it.
func (t *Tray) Roll() {
	for _, d := range t.dice {
		d.Body.Stop()
		d.Body.Velocity = mgl64.Vec3{
			t.rng.Centered(rollForce),
			rollLift,
			t.rng.Centered(rollForce),
		}
		d.Body.AngularVelocity = mgl64.Vec3{
			t.rng.Centered(rollTorque),
			t.rng.Centered(rollTorque),
			t.rng.Centered(rollTorque),
		}
	}
	t.cancelSettle()
	gen := t.generation
	t.settle = t.sched.After(SettleDelay, func() { t.resolve(gen) })
}

// Rolling reports whether a roll is waiting to settle.
func (t *Tray) Rolling() bool { return t.settle != 0 }

// Result reports the last settled roll.
func (t *Tray) Result() Result {
	r := t.result
	r.Rolls = append([]Roll(nil), t.result.Rolls...)
	return r
}

// resolve draws an independent value for every die still in the tray, freezes
// them and publishes the sum. Results for superseded rolls are dropped.
func (t *Tray) resolve(gen uint64) {
	if gen != t.generation {
		return
	}
	t.settle = 0
	res := Result{Shown: true, Rolls: make([]Roll, 0, len(t.dice))}
	for _, d := range t.dice {
		v := t.sample(d)
		res.Rolls = append(res.Rolls, Roll{DieID: d.ID, Type: d.Type, Value: v})
		res.Total += v
		d.Body.Stop()
	}
	t.result = res
	t.logger.Printf("[dice] rolled %d with %d dice", res.Total, len(res.Rolls))
}

// sample draws a uniform face value for d. The settled pose is not consulted.
func (t *Tray) sample(d *Die) int {
	return t.rng.Roll(d.Type.Faces())
}

func (t *Tray) cancelSettle() {
	t.sched.Cancel(t.settle)
	t.settle = 0
	t.generation++
}
