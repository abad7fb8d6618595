package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/behaviourtree/internal/core/bt"
	"github.com/zeusync/behaviourtree/internal/core/events/bus"
	"github.com/zeusync/behaviourtree/internal/core/observability/log"
)

// Event types published after every tick.
const (
	EventTickCompleted = "tick.completed"
	EventTickTerminal  = "tick.terminal"
)

var ErrNoTree = errors.New("agent requires a behaviour tree")

// DecisionRecord is one entry of an agent's tick history.
type DecisionRecord struct {
	Tick      uint64        `json:"tick"`
	// Node is the deepest node under the cursors when the tick started,
	// usually the leaf that ran.
	Node      string        `json:"node"`
	Status    bt.Status     `json:"status"`
	Cursor    int           `json:"cursor"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"ts"`
}

// TickEvent is the payload of tick events.
type TickEvent struct {
	AgentID string
	Agent   string
	Record  DecisionRecord
}

// Agent owns one behaviour tree and ticks it once per scheduling interval.
// Step calls are serialized, so the tree only ever sees one tick in flight.
type Agent struct {
	id     string
	cfg    Config
	tree   *bt.BehaviourTree
	events bus.EventBus
	logger log.Log
	clock  func() time.Time

	mu      sync.Mutex
	ticks   uint64
	history []DecisionRecord
	next    int
}

type Option func(*Agent)

func WithID(id string) Option {
	return func(a *Agent) { a.id = id }
}

func WithEvents(eb bus.EventBus) Option {
	return func(a *Agent) { a.events = eb }
}

func WithLogger(l log.Log) Option {
	return func(a *Agent) { a.logger = l }
}

func WithClock(clock func() time.Time) Option {
	return func(a *Agent) { a.clock = clock }
}

// New creates an agent around tree. The tree's diagnostics are routed to
// the agent logger.
func New(cfg Config, tree *bt.BehaviourTree, opts ...Option) (*Agent, error) {
	if tree == nil {
		return nil, ErrNoTree
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agent config: %w", err)
	}

	a := &Agent{
		cfg:   cfg.withDefaults(),
		tree:  tree,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.id == "" {
		a.id = uuid.NewString()
	}
	if a.events == nil {
		a.events = bus.New()
	}
	if a.logger == nil {
		a.logger = log.NewNop()
	}
	a.logger = a.logger.With(log.String("agent", a.cfg.Name), log.String("agent_id", a.id))
	a.history = make([]DecisionRecord, 0, a.cfg.HistorySize)

	tree.SetLogger(a.logger)
	a.logger.Info("agent created",
		log.String("tree", tree.Name()),
		log.Uint64("fingerprint", tree.Fingerprint()),
	)
	return a, nil
}

func (a *Agent) ID() string              { return a.id }
func (a *Agent) Name() string            { return a.cfg.Name }
func (a *Agent) Config() Config          { return a.cfg }
func (a *Agent) Tree() *bt.BehaviourTree { return a.tree }
func (a *Agent) Events() bus.EventBus    { return a.events }
func (a *Agent) Dump() string            { return a.tree.Dump() }

func (a *Agent) Ticks() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticks
}

// Step ticks the tree once, records the decision and publishes tick events.
// The returned error only reports a cancelled context or failed event
// delivery; the tree outcome is always in the Status.
func (a *Agent) Step(ctx context.Context) (bt.Status, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	a.mu.Lock()
	node := a.activeNodeName()
	start := a.clock()
	st := a.tree.Tick()
	a.ticks++
	rec := DecisionRecord{
		Tick:      a.ticks,
		Node:      node,
		Status:    st,
		Cursor:    a.tree.CurrentChild(),
		Duration:  a.clock().Sub(start),
		Timestamp: start,
	}
	a.record(rec)
	a.mu.Unlock()

	a.logger.Debug("tick",
		log.Uint64("tick", rec.Tick),
		log.String("status", st.String()),
		log.String("node", rec.Node),
	)

	payload := TickEvent{AgentID: a.id, Agent: a.cfg.Name, Record: rec}
	events := []bus.Event{bus.NewEvent(EventTickCompleted, a.id, payload)}
	if st.Terminal() {
		events = append(events, bus.NewEvent(EventTickTerminal, a.id, payload))
	}
	if err := a.events.PublishBatch(events...); err != nil {
		return st, fmt.Errorf("publish tick events: %w", err)
	}
	return st, nil
}

// Run ticks the tree every Interval until ctx is cancelled, MaxTicks is
// reached or, with StopOnTerminal, the root concludes. Event delivery
// failures are logged and do not stop the agent.
func (a *Agent) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.Interval)
	defer ticker.Stop()

	a.logger.Info("agent started", log.Duration("interval", a.cfg.Interval))
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("agent stopped", log.Uint64("ticks", a.Ticks()))
			return nil
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			continue
		}

		st, err := a.Step(ctx)
		if err != nil {
			a.logger.Warn("tick event delivery failed", log.Error(err))
		}
		if a.cfg.StopOnTerminal && st.Terminal() {
			a.logger.Info("tree concluded", log.String("status", st.String()), log.Uint64("ticks", a.Ticks()))
			return nil
		}
		if a.cfg.MaxTicks > 0 && a.Ticks() >= uint64(a.cfg.MaxTicks) {
			a.logger.Info("tick budget exhausted", log.Uint64("ticks", a.Ticks()))
			return nil
		}
	}
}

// History returns the recorded decisions, oldest first.
func (a *Agent) History() []DecisionRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]DecisionRecord, 0, len(a.history))
	if len(a.history) < a.cfg.HistorySize {
		return append(out, a.history...)
	}
	out = append(out, a.history[a.next:]...)
	return append(out, a.history[:a.next]...)
}

// Reset starts a new episode: every cursor in the tree goes back to 0 and
// the history is cleared.
func (a *Agent) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tree.Reset()
	a.ticks = 0
	a.history = a.history[:0]
	a.next = 0
	a.logger.Info("agent reset")
}

func (a *Agent) record(rec DecisionRecord) {
	if len(a.history) < a.cfg.HistorySize {
		a.history = append(a.history, rec)
		return
	}
	a.history[a.next] = rec
	a.next = (a.next + 1) % a.cfg.HistorySize
}

// activeNodeName follows the cursors from the root down to the deepest node
// the next tick will reach.
func (a *Agent) activeNodeName() string {
	var n bt.Node = a.tree
	for {
		children := n.Children()
		cur := n.CurrentChild()
		if cur < 0 || cur >= len(children) {
			return n.Name()
		}
		n = children[cur]
	}
}
