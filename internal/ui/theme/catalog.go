package theme

import (
	"sort"
	"strings"
)

// Catalog maps theme names to themes.
var Catalog = map[string]Theme{}

func init() {
	register(CatppuccinMocha)
	register(CatppuccinLatte)
	register(Nord)
	register(Dracula)
	register(GruvboxDark)
	register(TokyoNight)
}

func register(t Theme) {
	Catalog[normalizeKey(t.Name)] = t
}

// Get returns a theme by name.
func Get(name string) (Theme, bool) {
	t, ok := Catalog[normalizeKey(name)]
	return t, ok
}

// Names returns all registered theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for _, t := range Catalog {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// Next returns the built-in theme after name in Names order, wrapping
// around. Unknown names start from the first theme.
func Next(name string) Theme {
	names := Names()
	key := normalizeKey(name)
	for i, n := range names {
		if normalizeKey(n) == key {
			t, _ := Get(names[(i+1)%len(names)])
			return t
		}
	}
	t, _ := Get(names[0])
	return t
}
