package cmd

import (
	"context"
	"math"

	"github.com/mhr3/fixstr/strarray"
	"github.com/spf13/cobra"
)

// span holds the slice offsets of the search commands.
type span struct {
	start, end int64
}

func (s *span) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&s.start, "start", 0, "first character of the searched range; negative counts from the end")
	cmd.Flags().Int64Var(&s.end, "end", math.MaxInt64, "end of the searched range; negative counts from the end")
}

type findFunc func(*strarray.Runner, context.Context, *strarray.Array, string, int64, int64) ([]int64, error)

func newFindCmd(o *options, name string, fn findFunc) *cobra.Command {
	var s span
	cmd := &cobra.Command{
		Use:   name + " <pattern>",
		Short: "Prints the result of " + name + " of pattern for every line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.readArray(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := fn(o.runner(), cmd.Context(), a, args[0], s.start, s.end)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), res)
		},
	}
	s.register(cmd)
	return cmd
}

type matchFunc func(*strarray.Runner, context.Context, *strarray.Array, string, int64, int64) ([]bool, error)

func newMatchCmd(o *options, name string, fn matchFunc) *cobra.Command {
	var s span
	cmd := &cobra.Command{
		Use:   name + " <pattern>",
		Short: "Prints whether every line " + name[:len(name)-4] + " with pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.readArray(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := fn(o.runner(), cmd.Context(), a, args[0], s.start, s.end)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), res)
		},
	}
	s.register(cmd)
	return cmd
}
