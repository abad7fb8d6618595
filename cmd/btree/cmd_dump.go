package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/behaviourtree/internal/demo/robber"
	"github.com/zeusync/behaviourtree/internal/injector"
)

var dumpFlags struct {
	fingerprint bool
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the tree outline",
	Args:  cobra.NoArgs,
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpFlags.fingerprint, "fingerprint", false, "Also print the outline fingerprint")
}

func runDump(cmd *cobra.Command, _ []string) error {
	lc, err := loggerConfig(cmd)
	if err != nil {
		return err
	}
	def, err := loadDefinition()
	if err != nil {
		return err
	}
	logger := injector.ProvideLogger(lc)
	defer func() { _ = logger.Sync() }()

	r := robber.New(robber.NewWorld(), rootFlags.money, logger)
	tree, err := robber.Build(def, r)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tree.Dump())
	if dumpFlags.fingerprint {
		fmt.Fprintf(out, "fingerprint: %016x\n", tree.Fingerprint())
	}
	return nil
}
