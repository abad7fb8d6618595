package agent

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/behaviourtree/internal/core/bt"
	"github.com/zeusync/behaviourtree/internal/core/events/bus"
)

func TestManagerRegistry(t *testing.T) {
	m := NewManager(nil, nil)

	a, err := m.Spawn(Config{Name: "first"}, twoStepTree(), WithID("a"))
	require.NoError(t, err)
	_, err = m.Spawn(Config{Name: "second"}, twoStepTree(), WithID("b"))
	require.NoError(t, err)

	_, err = m.Spawn(Config{Name: "dup"}, twoStepTree(), WithID("a"))
	require.ErrorIs(t, err, ErrAgentExists)

	_, err = m.Spawn(Config{Name: "no tree"}, nil)
	require.ErrorIs(t, err, ErrNoTree)

	got, ok := m.Get("a")
	require.True(t, ok)
	require.Same(t, a, got)
	require.Same(t, m.Events(), a.Events())

	names := func() []string {
		var out []string
		for _, ag := range m.List() {
			out = append(out, ag.Name())
		}
		return out
	}
	require.Equal(t, []string{"first", "second"}, names())

	require.NoError(t, m.Remove("a"))
	require.ErrorIs(t, m.Remove("a"), ErrAgentNotFound)
	_, ok = m.Get("a")
	require.False(t, ok)
	require.Equal(t, []string{"second"}, names())
}

func TestManagerRunsAgentsIndependently(t *testing.T) {
	eb := bus.New()
	var mu sync.Mutex
	perAgent := map[string]int{}
	_, err := eb.Subscribe(EventTickCompleted, func(e bus.Event) error {
		mu.Lock()
		perAgent[e.Source()]++
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	m := NewManager(eb, nil)
	for _, id := range []string{"a", "b", "c"} {
		_, err = m.Spawn(Config{Name: id, Interval: time.Millisecond, MaxTicks: 4}, twoStepTree(), WithID(id))
		require.NoError(t, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, m.Run(ctx))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, map[string]int{"a": 4, "b": 4, "c": 4}, perAgent)
	for _, ag := range m.List() {
		require.Equal(t, uint64(4), ag.Ticks())
	}
}

func TestManagerDump(t *testing.T) {
	m := NewManager(nil, nil)
	_, err := m.Spawn(Config{Name: "robber"}, twoStepTree(), WithID("r1"))
	require.NoError(t, err)

	tree := bt.NewTree("solo")
	tree.AddChild(bt.NewNode("idle"))
	_, err = m.Spawn(Config{Name: "guard"}, tree, WithID("g1"))
	require.NoError(t, err)

	want := strings.Join([]string{
		"# robber (r1)",
		"two-step",
		"-steps",
		"--first",
		"--second",
		"",
		"# guard (g1)",
		"solo",
		"-idle",
	}, "\n")
	require.Equal(t, want, m.Dump())
}
