package timer

// PresetID identifies a catalog entry. PresetNone means a custom duration is in
// effect.
type PresetID int

const (
	PresetNone PresetID = iota
	PresetPopcorn
	PresetBeverage
	PresetVegetable
	PresetDumplings
	PresetFish
	PresetStirFry
)

// Preset is an immutable catalog entry.
type Preset struct {
	ID      PresetID
	Name    string
	Seconds int
	Icon    string
}

var catalog = [...]Preset{
	{ID: PresetPopcorn, Name: "Popcorn", Seconds: 120, Icon: "🍿"},
	{ID: PresetBeverage, Name: "Beverage", Seconds: 60, Icon: "☕"},
	{ID: PresetVegetable, Name: "Vegetable", Seconds: 180, Icon: "🥦"},
	{ID: PresetDumplings, Name: "Dumplings", Seconds: 150, Icon: "🥟"},
	{ID: PresetFish, Name: "Fish", Seconds: 200, Icon: "🐟"},
	{ID: PresetStirFry, Name: "Stir Fry", Seconds: 180, Icon: "🍳"},
}

// Presets returns a copy of the catalog in display order.
func Presets() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog[:])
	return out
}

// LookupPreset resolves an id to its catalog entry.
func LookupPreset(id PresetID) (Preset, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

func (id PresetID) String() string {
	if p, ok := LookupPreset(id); ok {
		return p.Name
	}
	if id == PresetNone {
		return "none"
	}
	return "unknown"
}
