package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bft-labs/modbridge/pkg/cabi"
	"github.com/bft-labs/modbridge/pkg/loader"
)

func (a *app) symbolsCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List the C entry points and whether a library exports them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !check {
				printSymbols(out, nil)
				return nil
			}

			lib, err := loader.Open(a.cfg.Library)
			if err != nil {
				return err
			}
			defer lib.Close()

			fmt.Fprintf(out, "library: %s\n", lib.Path())
			if v, ok, err := loader.ABIVersion(lib); err != nil {
				return err
			} else if ok {
				fmt.Fprintf(out, "abi version: %d (host %d)\n\n", v, cabi.ABIVersion)
			} else {
				fmt.Fprintf(out, "abi version: not exported (host %d)\n\n", cabi.ABIVersion)
			}

			missing := printSymbols(out, lib)
			if missing > 0 {
				return fmt.Errorf("%d required symbols missing from %s", missing, lib.Path())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&check, "check", false, "open the configured library and report which symbols it exports")
	f.StringVar(&a.cfg.LibDir, "lib-dir", a.cfg.LibDir, "directory holding the shared libraries")
	f.StringVar(&a.cfg.Library, "library", a.cfg.Library, "library to inspect")
	return cmd
}

// printSymbols writes one row per entry point and returns how many required
// symbols tab lacks. A nil tab prints the list without a status column.
func printSymbols(w io.Writer, tab loader.SymbolTable) int {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	missing := 0
	for _, m := range loader.Modules {
		for _, group := range []struct {
			names    []string
			required bool
		}{{m.Required, true}, {m.Optional, false}} {
			for _, name := range group.names {
				kind := "optional"
				if group.required {
					kind = "required"
				}
				if tab == nil {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, name, kind)
					continue
				}

				status := "ok"
				if _, err := tab.Symbol(name); err != nil {
					if !errors.Is(err, loader.ErrSymbolNotFound) {
						status = err.Error()
					} else {
						status = "missing"
					}
					if group.required {
						missing++
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Name, name, kind, status)
			}
		}
	}
	return missing
}
