package event

// defaultColorCode is used when the operator picks a name outside the palette.
const defaultColorCode = 1

// PaletteEntry pairs a Google Calendar color name with its numeric event color ID.
type PaletteEntry struct {
	Name string
	Code int
}

// Palette is the fixed set of event colors Google Calendar accepts, in its
// documented order. Membership never changes at runtime.
var Palette = []PaletteEntry{
	{"lavender", 1},
	{"sage", 2},
	{"grape", 3},
	{"flamingo", 4},
	{"banana", 5},
	{"tangerine", 6},
	{"peacock", 7},
	{"graphite", 8},
	{"blueberry", 9},
	{"basil", 10},
	{"tomato", 11},
}

var colorCodes = func() map[string]int {
	m := make(map[string]int, len(Palette))
	for _, p := range Palette {
		m[p.Name] = p.Code
	}
	return m
}()

// ColorCode resolves a color name to its event color ID, falling back to
// lavender (1) for names outside the palette.
func ColorCode(name string) int {
	if code, ok := colorCodes[name]; ok {
		return code
	}
	return defaultColorCode
}
