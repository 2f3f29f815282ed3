package main

import (
	"bufio"
	"fmt"

	"github.com/BLAZED-sh/fastparse/pkg/diag"
	"github.com/BLAZED-sh/fastparse/pkg/json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newJSONCmd(opts *options) *cobra.Command {
	var maxDepth int
	var printFrames bool

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Validate a stream of JSON values and optionally print one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, source, err := openInput(inputArg(args))
			if err != nil {
				return err
			}
			defer in.Close()

			cfg := opts.cfg
			if cmd.Flags().Changed("max-depth") {
				cfg.JSON.MaxDepth = maxDepth
			}

			lexer := json.NewStreamLexer(cmd.Context(), in, cfg.Stream.BufferSize, cfg.Stream.MaxRead)
			lexer.SetMaxDepth(cfg.JSON.MaxDepth)
			lexer.SetMaxFrame(cfg.Stream.MaxFrame)

			reporter := diag.NewReporter(log.Logger.With().Str("component", "json").Logger())
			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			var failed error
			lexer.DecodeAll(func(frame []byte) {
				if printFrames {
					out.Write(frame)
					out.WriteByte('\n')
				}
			}, func(err error) {
				reporter.Report(err, source)
				failed = err
			})

			log.Info().
				Str("source", source).
				Int("values", lexer.Frames()).
				Int64("errors", reporter.Summary().Errors).
				Msg("JSON scan finished")

			if failed != nil {
				return fmt.Errorf("%s: %w", source, failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", json.DefaultMaxDepth, "maximum object/array nesting")
	cmd.Flags().BoolVarP(&printFrames, "print", "p", false, "print every value on its own line")

	return cmd
}
