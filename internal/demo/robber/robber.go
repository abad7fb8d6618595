package robber

import (
	"github.com/zeusync/behaviourtree/internal/core/bt"
	"github.com/zeusync/behaviourtree/internal/core/observability/log"
)

// Robber is the host-side state the leaf behaviours act on.
type Robber struct {
	world  *World
	logger log.Log

	Location   string
	Money      int
	HasDiamond bool
	Stolen     int
	Fed        bool

	target    string
	remaining int
}

func New(world *World, money int, logger log.Log) *Robber {
	if world == nil {
		world = NewWorld()
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Robber{world: world, logger: logger, Location: PlaceStart, Money: money}
}

// GoTo returns a behaviour that walks to place, one step per tick. It
// reports Running while walking and Success on arrival; an unknown place
// fails.
func (r *Robber) GoTo(place string) bt.TickFunc {
	return func() bt.Status {
		if r.Location == place {
			return bt.StatusSuccess
		}
		if r.target != place {
			d, err := r.world.Distance(place)
			if err != nil {
				r.logger.Warn("cannot travel", log.String("place", place), log.Error(err))
				return bt.StatusFailure
			}
			r.target = place
			r.remaining = d
		}
		if r.remaining > 0 {
			r.remaining--
			return bt.StatusRunning
		}
		r.arrive(place)
		return bt.StatusSuccess
	}
}

// Buy spends price if the robber can afford it.
func (r *Robber) Buy(price int) bt.TickFunc {
	return func() bt.Status {
		if r.Location != PlacePizzaShop {
			return bt.StatusFailure
		}
		if r.Money < price {
			r.logger.Info("not enough money", log.Int("money", r.Money), log.Int("price", price))
			return bt.StatusFailure
		}
		r.Money -= price
		r.Fed = true
		return bt.StatusSuccess
	}
}

func (r *Robber) arrive(place string) {
	r.Location = place
	r.target = ""
	switch place {
	case PlaceDiamond:
		r.HasDiamond = true
	case PlaceVan:
		if r.HasDiamond {
			r.HasDiamond = false
			r.Stolen++
		}
	}
	r.logger.Debug("arrived", log.String("place", place))
}
