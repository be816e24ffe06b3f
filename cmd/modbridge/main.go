// Command modbridge runs the multi-module demo either against statically
// linked packages or against shared libraries loaded at runtime.
package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/modbridge/internal/cliconfig"
)

const longHelp = `
Run the same module demo through two linkage models.

  static   calls the Go packages linked into this binary
  dynamic  loads libmodbridge (or any library exporting the same C symbols)
           at runtime and calls through the C ABI
  shell    calls single operations interactively through either model

Configuration is read from $HOME/.modbridge/config.toml, then MODBRIDGE_*
environment variables, then flags; later sources win.
`

var exampleUsage = strings.TrimSpace(`
  modbridge static
  modbridge dynamic --lib-dir ./target/lib
  modbridge dynamic --math-lib mathlib --string-lib stringlib --watch
  modbridge symbols --library ./lib/libmodbridge.so
  modbridge shell --dynamic
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries state shared by every subcommand.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger
}

func main() {
	a := &app{cfg: cliconfig.DefaultConfig()}
	a.log = cliconfig.Logger(os.Stderr, a.cfg.LogLevel, false)

	if err := newRootCmd(a).Execute(); err != nil {
		a.log.Error().Err(err).Msg("modbridge")
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "modbridge",
		Short:         "Demonstrate static and dynamic linkage of handle-based modules",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.modbridge/config.toml)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&a.cfg.NoColor, "no-color", a.cfg.NoColor, "disable colored log output")

	root.AddCommand(a.staticCmd(), a.dynamicCmd(), a.symbolsCmd(), a.shellCmd())
	return root
}

// loadConfig applies file, env and flag values in that order of increasing
// precedence, then validates.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = cliconfig.Logger(os.Stderr, a.cfg.LogLevel, a.cfg.NoColor)
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")
	return nil
}
