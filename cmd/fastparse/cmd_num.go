package main

import (
	"fmt"

	"github.com/BLAZED-sh/fastparse/pkg/diag"
	"github.com/BLAZED-sh/fastparse/pkg/scan"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newNumCmd() *cobra.Command {
	var asFloat bool

	cmd := &cobra.Command{
		Use:   "num <text>...",
		Short: "Parse each argument as a 64-bit integer, or as a float with --float",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := diag.NewReporter(log.Logger.With().Str("component", "num").Logger())

			failed := 0
			for _, arg := range args {
				c := scan.NewString(arg)
				var (
					i  int64
					f  float64
					ch scan.Chain
				)
				if asFloat {
					ch = scan.Begin(c).Float64(&f)
				} else {
					ch = scan.Begin(c).Int64(&i)
				}
				ch = ch.SkipWhitespace().Then(expectEnd)

				if !ch.OK() {
					reporter.ReportCursor(c, arg)
					failed++
					continue
				}
				if asFloat {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", arg, f)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", arg, i)
				}
			}

			// An empty argument is only a warning for the reporter but still a failure here
			if failed > 0 {
				return fmt.Errorf("%d of %d arguments failed to parse", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asFloat, "float", false, "parse as floating point")

	return cmd
}

func expectEnd(c *scan.Cursor) bool {
	if c.AtEnd() {
		return true
	}
	c.SetErrorByte(scan.Custom, "Unexpected trailing ", c.Peek())
	return false
}
