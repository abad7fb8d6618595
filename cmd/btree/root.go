package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/behaviourtree/internal/core/bt/loader"
	"github.com/zeusync/behaviourtree/internal/core/observability/log"
	"github.com/zeusync/behaviourtree/internal/demo/robber"
	"github.com/zeusync/behaviourtree/internal/injector"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	config    string
	money     int
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "btree",
	Short: "Behaviour tree runner",
	Long:  "btree loads a behaviour tree definition, binds the robber demo actions\nand either prints the tree outline or ticks it.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.config, "config", "", "Tree definition (.yaml or .json); defaults to the bundled robber tree")
	f.IntVar(&rootFlags.money, "money", 20, "Money each robber starts with")
	f.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.StringVar(&rootFlags.logFormat, "log-format", "console", "Log encoding: console or json")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.Version = version
}

func loadDefinition() (*loader.Definition, error) {
	if rootFlags.config == "" {
		return robber.DefaultDefinition()
	}
	def, err := loader.LoadFile(rootFlags.config)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", rootFlags.config, err)
	}
	return def, nil
}

func loggerConfig(cmd *cobra.Command) (injector.LoggerConfig, error) {
	level, ok := log.ParseLevel(rootFlags.logLevel)
	if !ok {
		return injector.LoggerConfig{}, fmt.Errorf("unknown log level %q", rootFlags.logLevel)
	}
	return injector.LoggerConfig{
		Level:    level,
		Encoding: rootFlags.logFormat,
		Writer:   cmd.ErrOrStderr(),
	}, nil
}
