package cmd

import (
	"bufio"
	"fmt"

	"github.com/mhr3/fixstr/strarray"
	"github.com/mhr3/fixstr/strbuf"
	"github.com/spf13/cobra"
)

func newLenCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "len",
		Short: "Prints the number of characters of every line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.readArray(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := o.runner().StrLen(cmd.Context(), a)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), res)
		},
	}
}

func newIsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "is <class>",
		Short: "Prints whether every line is non-empty and belongs to a character class",
		Long: `Prints whether every line is non-empty and belongs to a character class.

Classes: alpha, digit, space, alnum, numeric, decimal, lower, upper, title`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := strarray.ParseClass(args[0])
			if err != nil {
				return err
			}
			a, err := o.readArray(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := o.runner().Is(cmd.Context(), a, class)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), res)
		},
	}
}

func newPartitionCmd(o *options) *cobra.Command {
	var last bool
	cmd := &cobra.Command{
		Use:   "partition <sep>",
		Short: "Splits every line around sep into three tab separated parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.readArray(cmd.InOrStdin())
			if err != nil {
				return err
			}
			side := strbuf.Front
			if last {
				side = strbuf.Back
			}
			parts, err := o.runner().Partition(cmd.Context(), a, args[0], side)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for i := range a.Len() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", parts[0].String(i), parts[1].String(i), parts[2].String(i))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&last, "last", "l", false, "split at the last occurrence of sep")
	return cmd
}

func newSortCmd(o *options) *cobra.Command {
	var withPerm bool
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sorts the lines by code point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.readArray(cmd.InOrStdin())
			if err != nil {
				return err
			}
			sorted, perm := strarray.Sort(a)
			w := bufio.NewWriter(cmd.OutOrStdout())
			for k := range sorted.Len() {
				if withPerm {
					fmt.Fprintf(w, "%d\t", perm[k])
				}
				fmt.Fprintln(w, sorted.String(k))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&withPerm, "perm", "p", false, "prefix every line with its input position")
	return cmd
}
