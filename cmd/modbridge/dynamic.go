package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/modbridge/internal/demo"
	"github.com/bft-labs/modbridge/internal/reload"
	"github.com/bft-labs/modbridge/pkg/loader"
	"github.com/bft-labs/modbridge/pkg/log"
)

func (a *app) dynamicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dynamic",
		Short: "Load the modules from shared libraries and run the demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewZerologAdapterWithLogger(a.log)
			paths := demo.Paths{Math: a.cfg.MathLib, String: a.cfg.StringLib, Common: a.cfg.CommonLib}

			if err := a.runDynamic(cmd, paths, logger); err != nil {
				return err
			}
			if !a.cfg.Watch {
				return nil
			}
			return a.watch(cmd, paths, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.cfg.LibDir, "lib-dir", a.cfg.LibDir, "directory holding the shared libraries (default: <executable dir>/lib)")
	f.StringVar(&a.cfg.Library, "library", a.cfg.Library, "library every module is loaded from unless overridden")
	f.StringVar(&a.cfg.MathLib, "math-lib", a.cfg.MathLib, "library providing mathlib_* symbols")
	f.StringVar(&a.cfg.StringLib, "string-lib", a.cfg.StringLib, "library providing stringlib_* symbols")
	f.StringVar(&a.cfg.CommonLib, "common-lib", a.cfg.CommonLib, "library providing common_* symbols")
	f.BoolVar(&a.cfg.Watch, "watch", a.cfg.Watch, "rerun the demo whenever a library file changes")
	f.DurationVar(&a.cfg.DebounceDelay, "debounce", a.cfg.DebounceDelay, "wait for file events to settle before rerunning")
	return cmd
}

// runDynamic loads fresh clients, runs the demo once and frees them.
// The cache is per run so a rebuilt library is opened again.
func (a *app) runDynamic(cmd *cobra.Command, paths demo.Paths, logger log.Logger) error {
	cache := loader.NewCache(logger)
	defer func() {
		if err := cache.Close(); err != nil {
			a.log.Warn().Err(err).Msg("close libraries")
		}
	}()

	mods, err := demo.LoadModules(cache, paths, "App", loader.WithLogger(logger))
	if err != nil {
		return err
	}
	defer mods.Close()

	opts := []demo.Option{}
	if mods.Logger != nil {
		opts = append(opts, demo.WithEvents(mods.Logger))
	}
	_, err = demo.NewRunner(cmd.OutOrStdout(), opts...).Run("dynamic linking", mods.Calc, mods.Strings)
	return err
}

func (a *app) watch(cmd *cobra.Command, paths demo.Paths, logger log.Logger) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rerun := make(chan string, 1)
	w := reload.New(a.cfg.Paths(), func(path string) {
		select {
		case rerun <- path:
		default:
		}
	}, reload.WithLogger(logger), reload.WithDebounceDelay(a.cfg.DebounceDelay))

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("watch libraries: %w", err)
	}
	defer w.Stop()

	a.log.Info().Strs("paths", a.cfg.Paths()).Msg("watching libraries, press Ctrl+C to stop")
	for {
		select {
		case <-ctx.Done():
			a.log.Info().Msg("received signal, stopping...")
			return nil
		case path := <-rerun:
			a.log.Info().Str("path", path).Msg("library changed, rerunning")
			if err := a.runDynamic(cmd, paths, logger); err != nil {
				a.log.Error().Err(err).Msg("dynamic run failed")
			}
		}
	}
}
