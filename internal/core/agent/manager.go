package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/behaviourtree/internal/core/bt"
	"github.com/zeusync/behaviourtree/internal/core/events/bus"
	"github.com/zeusync/behaviourtree/internal/core/observability/log"
)

var (
	ErrAgentExists   = errors.New("agent already exists")
	ErrAgentNotFound = errors.New("agent not found")
)

// Manager runs many agents. Each agent gets its own goroutine and its own
// tree, so no state is shared between trees.
type Manager struct {
	mu     sync.RWMutex
	agents map[string]*Agent
	order  []string

	events bus.EventBus
	logger log.Log
}

// NewManager creates a manager whose agents share events and logger.
func NewManager(events bus.EventBus, logger log.Log) *Manager {
	if events == nil {
		events = bus.New()
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Manager{
		agents: make(map[string]*Agent),
		events: events,
		logger: logger,
	}
}

func (m *Manager) Events() bus.EventBus { return m.events }
func (m *Manager) Logger() log.Log      { return m.logger }

// Spawn creates an agent wired to the manager's bus and logger and adds it.
func (m *Manager) Spawn(cfg Config, tree *bt.BehaviourTree, opts ...Option) (*Agent, error) {
	opts = append([]Option{WithEvents(m.events), WithLogger(m.logger)}, opts...)
	a, err := New(cfg, tree, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (m *Manager) Add(a *Agent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.agents[a.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrAgentExists, a.ID())
	}
	m.agents[a.ID()] = a
	m.order = append(m.order, a.ID())
	return nil
}

func (m *Manager) Get(id string) (*Agent, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.agents[id]
	return a, ok
}

// Remove forgets an agent. An agent already running under Run keeps running
// until that Run returns.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.agents[id]; !ok {
		return fmt.Errorf("%w: %s", ErrAgentNotFound, id)
	}
	delete(m.agents, id)
	for i, cur := range m.order {
		if cur == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns agents in the order they were added.
func (m *Manager) List() []*Agent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Agent, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.agents[id])
	}
	return out
}

// Run starts every registered agent and blocks until all of them return.
func (m *Manager) Run(ctx context.Context) error {
	agents := m.List()
	m.logger.Info("starting agents", log.Int("count", len(agents)))

	g, gctx := errgroup.WithContext(ctx)
	for _, a := range agents {
		g.Go(func() error {
			if err := a.Run(gctx); err != nil {
				return fmt.Errorf("agent %s: %w", a.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Dump renders every agent's tree, one block per agent.
func (m *Manager) Dump() string {
	agents := m.List()
	blocks := make([]string, 0, len(agents))
	for _, a := range agents {
		blocks = append(blocks, fmt.Sprintf("# %s (%s)\n%s", a.Name(), a.ID(), a.Dump()))
	}
	return strings.Join(blocks, "\n\n")
}
