package cmd

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/mhr3/fixstr/strarray"
	"github.com/mhr3/fixstr/strbuf"
	"github.com/spf13/cobra"
)

func parseSide(s string) (strbuf.StripType, error) {
	switch s {
	case "left":
		return strbuf.LeftStrip, nil
	case "right":
		return strbuf.RightStrip, nil
	case "both":
		return strbuf.BothStrip, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

func newStripCmd(o *options) *cobra.Command {
	var side string
	cmd := &cobra.Command{
		Use:   "strip [chars]",
		Short: "Removes leading and trailing whitespace or chars from every line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseSide(side)
			if err != nil {
				return err
			}
			return o.transform(cmd, func(ctx context.Context, r *strarray.Runner, a *strarray.Array) (*strarray.Array, error) {
				if len(args) == 0 {
					return r.Strip(ctx, a, st)
				}
				return r.StripChars(ctx, a, args[0], st)
			})
		},
	}
	cmd.Flags().StringVar(&side, "side", "both", "side to strip (left, right, both)")
	return cmd
}

func newReplaceCmd(o *options) *cobra.Command {
	var count int64
	cmd := &cobra.Command{
		Use:   "replace <old> <new>",
		Short: "Replaces occurrences of old with new in every line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.transform(cmd, func(ctx context.Context, r *strarray.Runner, a *strarray.Array) (*strarray.Array, error) {
				return r.Replace(ctx, a, args[0], args[1], count)
			})
		},
	}
	cmd.Flags().Int64VarP(&count, "count", "n", -1, "maximum number of replacements per line; negative replaces all")
	return cmd
}

func newExpandTabsCmd(o *options) *cobra.Command {
	var tabSize int64
	cmd := &cobra.Command{
		Use:   "expandtabs",
		Short: "Replaces tabs with spaces in every line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.transform(cmd, func(ctx context.Context, r *strarray.Runner, a *strarray.Array) (*strarray.Array, error) {
				return r.ExpandTabs(ctx, a, tabSize)
			})
		},
	}
	cmd.Flags().Int64VarP(&tabSize, "tabsize", "t", 8, "distance between tab stops")
	return cmd
}

var justifications = map[string]strbuf.Justify{
	"ljust":  strbuf.Left,
	"rjust":  strbuf.Right,
	"center": strbuf.Center,
}

func parseWidth(s string) (int64, error) {
	w, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q: %w", s, err)
	}
	return w, nil
}

func newPadCmd(o *options, name, short string) *cobra.Command {
	var fill string
	cmd := &cobra.Command{
		Use:   name + " <width>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseWidth(args[0])
			if err != nil {
				return err
			}
			if utf8.RuneCountInString(fill) != 1 {
				return fmt.Errorf("fill must be a single character, got %q", fill)
			}
			c, _ := utf8.DecodeRuneInString(fill)
			return o.transform(cmd, func(ctx context.Context, r *strarray.Runner, a *strarray.Array) (*strarray.Array, error) {
				return r.Pad(ctx, a, width, c, justifications[name])
			})
		},
	}
	cmd.Flags().StringVarP(&fill, "fill", "f", " ", "fill character")
	return cmd
}

func newZFillCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "zfill <width>",
		Short: "Pads every line on the left with zeros, keeping a leading sign in front",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseWidth(args[0])
			if err != nil {
				return err
			}
			return o.transform(cmd, func(ctx context.Context, r *strarray.Runner, a *strarray.Array) (*strarray.Array, error) {
				return r.ZFill(ctx, a, width)
			})
		},
	}
}
