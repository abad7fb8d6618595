package robber

import (
	"fmt"
	"sort"
)

// Well-known places of the scenario.
const (
	PlaceStart     = "start"
	PlaceDiamond   = "diamond"
	PlaceVan       = "van"
	PlacePizzaShop = "pizza shop"
)

// World is a toy map: travelling to a place takes a fixed number of ticks.
type World struct {
	distances map[string]int
}

// NewWorld creates a world with the default distances.
func NewWorld() *World {
	return &World{distances: map[string]int{
		PlaceDiamond:   3,
		PlaceVan:       2,
		PlacePizzaShop: 4,
	}}
}

// SetDistance sets how many ticks travelling to place takes.
func (w *World) SetDistance(place string, ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	w.distances[place] = ticks
}

func (w *World) Distance(place string) (int, error) {
	d, ok := w.distances[place]
	if !ok {
		return 0, fmt.Errorf("unknown place %q", place)
	}
	return d, nil
}

func (w *World) Places() []string {
	out := make([]string, 0, len(w.distances))
	for p := range w.distances {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
