package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bft-labs/modbridge/internal/cliconfig"
	"github.com/bft-labs/modbridge/internal/demo"
	"github.com/bft-labs/modbridge/internal/shell"
	"github.com/bft-labs/modbridge/pkg/common"
	"github.com/bft-labs/modbridge/pkg/loader"
	"github.com/bft-labs/modbridge/pkg/log"
	"github.com/bft-labs/modbridge/pkg/mathlib"
	"github.com/bft-labs/modbridge/pkg/stringlib"
)

const historyFile = "history"

func (a *app) shellCmd() *cobra.Command {
	var dynamic bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Call module operations interactively",
		Long: `Start an interactive prompt. Each line names one operation, for example
"add 2 3" or "reverse hello". With --dynamic the operations go through the
shared libraries instead of the linked packages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			history := a.historyPath()

			if !dynamic {
				calc := mathlib.NewWithLogger(common.NewLoggerTo(out, mathlib.LogPrefix))
				proc := stringlib.NewWithLogger(common.NewLoggerTo(out, stringlib.LogPrefix))
				return shell.New(calc, demo.StaticStrings{P: proc}, out).Run(history)
			}

			logger := log.NewZerologAdapterWithLogger(a.log)
			cache := loader.NewCache(logger)
			defer cache.Close()

			paths := demo.Paths{Math: a.cfg.MathLib, String: a.cfg.StringLib}
			mods, err := demo.LoadModules(cache, paths, "Shell", loader.WithLogger(logger))
			if err != nil {
				return err
			}
			defer mods.Close()
			return shell.New(mods.Calc, mods.Strings, out).Run(history)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&dynamic, "dynamic", false, "call the shared libraries instead of the linked packages")
	f.StringVar(&a.cfg.LibDir, "lib-dir", a.cfg.LibDir, "directory holding the shared libraries")
	f.StringVar(&a.cfg.Library, "library", a.cfg.Library, "library every module is loaded from unless overridden")
	return cmd
}

// historyPath places the prompt history next to the config file.
func (a *app) historyPath() string {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(cfgFile), historyFile)
}
