package robber

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/zeusync/behaviourtree/internal/core/bt"
	"github.com/zeusync/behaviourtree/internal/core/bt/loader"
)

//go:embed tree.yaml
var defaultTree []byte

const DefaultPizzaPrice = 10

// DefaultDefinition returns the bundled robber tree definition.
func DefaultDefinition() (*loader.Definition, error) {
	return loader.LoadYAML(bytes.NewReader(defaultTree))
}

// Register binds the robber actions into reg:
//
//	go_to  params: place (string)
//	buy    params: price (int)
func Register(reg loader.Registry, r *Robber) {
	reg.Register("go_to", func(params map[string]any) (bt.TickFunc, error) {
		place := loader.StringParam(params, "place", "")
		if place == "" {
			return nil, fmt.Errorf("go_to: place is required")
		}
		return r.GoTo(place), nil
	})
	reg.Register("buy", func(params map[string]any) (bt.TickFunc, error) {
		return r.Buy(loader.IntParam(params, "price", DefaultPizzaPrice)), nil
	})
}

// Build assembles def with the robber's actions bound. A nil def uses the
// bundled tree.
func Build(def *loader.Definition, r *Robber, opts ...bt.Option) (*bt.BehaviourTree, error) {
	if def == nil {
		var err error
		if def, err = DefaultDefinition(); err != nil {
			return nil, err
		}
	}
	reg := loader.NewRegistry()
	Register(reg, r)
	return def.Build(reg, opts...)
}

// NewTree builds the bundled tree in code.
func NewTree(r *Robber, opts ...bt.Option) *bt.BehaviourTree {
	tree := bt.NewTree("Robber", opts...)
	day := bt.NewSequence("Day", opts...)

	steal := bt.NewSequence("Steal something", opts...)
	steal.AddChild(bt.NewLeaf("Go to diamond", r.GoTo(PlaceDiamond), opts...))
	steal.AddChild(bt.NewLeaf("Go to van", r.GoTo(PlaceVan), opts...))
	day.AddChild(steal)

	eat := bt.NewSequence("Eat something", opts...)
	eat.AddChild(bt.NewLeaf("Go to pizza shop", r.GoTo(PlacePizzaShop), opts...))
	eat.AddChild(bt.NewLeaf("Buy pizza", r.Buy(DefaultPizzaPrice), opts...))
	day.AddChild(eat)

	tree.AddChild(day)
	return tree
}
