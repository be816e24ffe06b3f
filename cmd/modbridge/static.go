package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bft-labs/modbridge/internal/demo"
	"github.com/bft-labs/modbridge/pkg/common"
	"github.com/bft-labs/modbridge/pkg/mathlib"
	"github.com/bft-labs/modbridge/pkg/stringlib"
)

func (a *app) staticCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "static",
		Short: "Run the demo against the linked Go packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			calc := mathlib.NewWithLogger(common.NewLoggerTo(out, mathlib.LogPrefix))
			proc := stringlib.NewWithLogger(common.NewLoggerTo(out, stringlib.LogPrefix))
			events := demo.StaticLogger{L: common.NewLoggerTo(os.Stderr, "App")}

			r := demo.NewRunner(out, demo.WithEvents(events))
			_, err := r.Run("static linking", calc, demo.StaticStrings{P: proc})
			return err
		},
	}
}
