package agent

import (
	"fmt"
	"time"
)

const (
	DefaultInterval    = 50 * time.Millisecond
	DefaultHistorySize = 256
)

// Config controls how an agent drives its tree.
type Config struct {
	Name string `json:"name" yaml:"name"`
	// Interval is the scheduling interval between ticks in Run.
	Interval time.Duration `json:"interval,omitempty" yaml:"interval,omitempty"`
	// HistorySize bounds the number of decision records kept.
	HistorySize int `json:"history_size,omitempty" yaml:"history_size,omitempty"`
	// MaxTicks stops Run after that many ticks. Zero means no limit.
	MaxTicks int `json:"max_ticks,omitempty" yaml:"max_ticks,omitempty"`
	// StopOnTerminal stops Run as soon as the root reports Success or Failure.
	StopOnTerminal bool `json:"stop_on_terminal,omitempty" yaml:"stop_on_terminal,omitempty"`
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Interval <= 0 {
		out.Interval = DefaultInterval
	}
	if out.HistorySize <= 0 {
		out.HistorySize = DefaultHistorySize
	}
	return out
}

// Validate validates the agent configuration
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("agent name is required")
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max ticks must not be negative: %d", c.MaxTicks)
	}
	return nil
}
