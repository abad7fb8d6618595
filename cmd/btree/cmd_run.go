package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeusync/behaviourtree/internal/core/agent"
	"github.com/zeusync/behaviourtree/internal/core/events/bus"
	"github.com/zeusync/behaviourtree/internal/demo/robber"
	"github.com/zeusync/behaviourtree/internal/injector"
)

var runFlags struct {
	agents         int
	ticks          int
	interval       time.Duration
	stopOnTerminal bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Tick robber agents until they conclude, run out of ticks or are interrupted",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.IntVar(&runFlags.agents, "agents", 1, "Number of robber agents")
	f.IntVar(&runFlags.ticks, "ticks", 0, "Stop each agent after this many ticks (0 = no limit)")
	f.DurationVar(&runFlags.interval, "interval", 100*time.Millisecond, "Scheduling interval between ticks")
	f.BoolVar(&runFlags.stopOnTerminal, "stop-on-terminal", true, "Stop an agent once its tree reports Success or Failure")
}

func runRun(cmd *cobra.Command, _ []string) error {
	if runFlags.agents < 1 {
		return errors.New("--agents must be at least 1")
	}
	lc, err := loggerConfig(cmd)
	if err != nil {
		return err
	}
	def, err := loadDefinition()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := injector.InitializeManager(lc)
	defer func() { _ = m.Logger().Sync() }()
	out := cmd.OutOrStdout()

	var mu sync.Mutex
	sub, err := m.Events().Subscribe(agent.EventTickCompleted, func(e bus.Event) error {
		ev, ok := e.Data().(agent.TickEvent)
		if !ok {
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		_, err := fmt.Fprintf(out, "%-10s tick=%-4d %-8s %s\n", ev.Agent, ev.Record.Tick, ev.Record.Status, ev.Record.Node)
		return err
	})
	if err != nil {
		return err
	}
	defer func() { _ = m.Events().Unsubscribe(sub) }()

	robbers := make([]*robber.Robber, runFlags.agents)
	for i := range robbers {
		r := robber.New(robber.NewWorld(), rootFlags.money, m.Logger())
		tree, err := robber.Build(def, r)
		if err != nil {
			return err
		}
		cfg := agent.Config{
			Name:           fmt.Sprintf("robber-%d", i+1),
			Interval:       runFlags.interval,
			MaxTicks:       runFlags.ticks,
			StopOnTerminal: runFlags.stopOnTerminal,
		}
		if _, err = m.Spawn(cfg, tree); err != nil {
			return err
		}
		robbers[i] = r
	}

	fmt.Fprintln(out, m.Dump())
	fmt.Fprintln(out)

	if err = m.Run(ctx); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out)
	for i, a := range m.List() {
		r := robbers[i]
		last := "none"
		if h := a.History(); len(h) > 0 {
			last = h[len(h)-1].Status.String()
		}
		fmt.Fprintf(out, "%s: ticks=%d last=%s stolen=%d fed=%t money=%d at=%q\n",
			a.Name(), a.Ticks(), last, r.Stolen, r.Fed, r.Money, r.Location)
	}
	return nil
}
