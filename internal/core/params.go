package core

// Stat is a single labelled value shown on the HUD.
type Stat struct {
	Key   string
	Label string
	Value string
}

// StatGroup clusters related stats for presentation purposes.
type StatGroup struct {
	Name  string
	Stats []Stat
}

// Snapshot captures what the HUD should display for one frame.
type Snapshot struct {
	Groups []StatGroup
}

// Lookup finds a stat by key across all groups.
func (s Snapshot) Lookup(key string) (Stat, bool) {
	for _, g := range s.Groups {
		for _, st := range g.Stats {
			if st.Key == key {
				return st, true
			}
		}
	}
	return Stat{}, false
}
